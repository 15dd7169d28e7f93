package components

import (
	"fmt"
	"strings"

	"macrotoggle/internal/models"
	"macrotoggle/internal/ui"

	"github.com/charmbracelet/x/ansi"
)

// TogglePanel renders mutually exclusive radio options.
// Exactly one option is selected at any time; the first one at start.
type TogglePanel struct {
	Title    string
	Options  models.OptionSet
	Cursor   int
	Selected int
	Width    int
}

// NewTogglePanel creates a panel with the first option selected
func NewTogglePanel(options models.OptionSet) *TogglePanel {
	return &TogglePanel{
		Title:    "Exec command",
		Options:  options,
		Cursor:   0,
		Selected: 0,
		Width:    ui.PanelWidth,
	}
}

// MoveUp moves cursor up
func (p *TogglePanel) MoveUp() {
	if p.Cursor > 0 {
		p.Cursor--
	}
}

// MoveDown moves cursor down
func (p *TogglePanel) MoveDown() {
	if p.Cursor < p.Options.Len()-1 {
		p.Cursor++
	}
}

// SelectCursor selects the option under the cursor and returns it
func (p *TogglePanel) SelectCursor() (models.Option, bool) {
	return p.SelectIndex(p.Cursor)
}

// SelectIndex selects option i and moves the cursor onto it.
// Selecting the already selected option is allowed and returns it again.
func (p *TogglePanel) SelectIndex(i int) (models.Option, bool) {
	opt, ok := p.Options.At(i)
	if !ok {
		return models.Option{}, false
	}
	p.Selected = i
	p.Cursor = i
	return opt, true
}

// SelectedOption returns the currently selected option
func (p *TogglePanel) SelectedOption() models.Option {
	opt, _ := p.Options.At(p.Selected)
	return opt
}

// View renders the panel
func (p *TogglePanel) View() string {
	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", p.innerWidth())))
	b.WriteString("\n")

	for i, opt := range p.Options.All() {
		b.WriteString(p.renderItem(opt, i))
		b.WriteString("\n")
	}

	return ui.PanelStyle.Width(p.Width).Render(strings.TrimSuffix(b.String(), "\n"))
}

// renderItem renders one radio row and its command
func (p *TogglePanel) renderItem(opt models.Option, i int) string {
	cursor := "  "
	style := ui.ItemStyle
	if i == p.Cursor {
		cursor = ui.CursorStyle.Render("> ")
		style = ui.SelectedItemStyle
	}

	label := fmt.Sprintf("%s [%s] %s", ui.RenderRadio(i == p.Selected), opt.Key, opt.Label)
	command := ui.CommandStyle.Render("      " + truncate(opt.DisplayCommand(), p.innerWidth()-6))

	return cursor + style.Render(label) + "\n" + command
}

func (p *TogglePanel) innerWidth() int {
	// Border and horizontal padding of PanelStyle
	w := p.Width - 6
	if w < 10 {
		w = 10
	}
	return w
}

// truncate cuts s to n terminal cells, ellipsis included
func truncate(s string, n int) string {
	if n <= 3 {
		return s
	}
	return ansi.Truncate(s, n, "...")
}
