package components

import (
	"strings"

	"macrotoggle/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// NoticeKind selects the dialog styling
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// maxDetailLines caps the diff lines shown in a success notice
const maxDetailLines = 6

// NoticeDialog is a modal acknowledging an update.
// While visible it takes all input until dismissed.
type NoticeDialog struct {
	Kind    NoticeKind
	Title   string
	Message string
	Details []string // Pre-rendered lines shown under the message
	Width   int
	Visible bool
}

// NewNoticeDialog creates a hidden dialog
func NewNoticeDialog() *NoticeDialog {
	return &NoticeDialog{
		Width: ui.PanelWidth,
	}
}

// ShowSuccess shows a confirmation notice
func (d *NoticeDialog) ShowSuccess(title, message string, details []string) {
	d.Kind = NoticeSuccess
	d.Title = title
	d.Message = message
	d.Details = details
	d.Visible = true
}

// ShowError shows a failure notice. Only the generic message is displayed.
func (d *NoticeDialog) ShowError(title, message string) {
	d.Kind = NoticeError
	d.Title = title
	d.Message = message
	d.Details = nil
	d.Visible = true
}

// Hide hides the dialog
func (d *NoticeDialog) Hide() {
	d.Visible = false
}

// IsVisible returns whether the dialog is visible
func (d *NoticeDialog) IsVisible() bool {
	return d.Visible
}

// View renders the dialog
func (d *NoticeDialog) View() string {
	if !d.Visible {
		return ""
	}

	style := ui.DialogStyle
	titleColor := ui.Success
	notifyType := "success"
	if d.Kind == NoticeError {
		style = ui.ErrorDialogStyle
		titleColor = ui.Error
		notifyType = "error"
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(titleColor).Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(ui.RenderNotification(notifyType, d.Message))
	b.WriteString("\n")

	if len(d.Details) > 0 {
		b.WriteString("\n")
		for i, line := range d.Details {
			if i >= maxDetailLines {
				b.WriteString(ui.MutedStyle.Render("  ..."))
				b.WriteString("\n")
				break
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(d.Width-6, lipgloss.Center, ui.RenderButton("OK")))

	return style.Width(d.Width).Render(b.String())
}
