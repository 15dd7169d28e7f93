package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColors(t *testing.T) {
	colors := []lipgloss.Color{
		Primary, Secondary, Success, Warning, Error,
		Muted, Foreground, Border, Selected,
	}

	for _, c := range colors {
		if c == "" {
			t.Error("Color should not be empty")
		}
	}
}

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"HeaderStyle", HeaderStyle},
		{"TitleStyle", TitleStyle},
		{"VersionStyle", VersionStyle},
		{"PanelStyle", PanelStyle},
		{"PanelTitleStyle", PanelTitleStyle},
		{"ItemStyle", ItemStyle},
		{"SelectedItemStyle", SelectedItemStyle},
		{"CommandStyle", CommandStyle},
		{"DialogStyle", DialogStyle},
		{"ErrorDialogStyle", ErrorDialogStyle},
		{"AddedLineStyle", AddedLineStyle},
		{"RemovedLineStyle", RemovedLineStyle},
	}

	for _, s := range styles {
		t.Run(s.name, func(t *testing.T) {
			if rendered := s.style.Render("content"); !strings.Contains(rendered, "content") {
				t.Errorf("%s should render its content, got %q", s.name, rendered)
			}
		})
	}
}

func TestPanelWidthFixed(t *testing.T) {
	short := lipgloss.Width(PanelStyle.Render("a"))
	long := lipgloss.Width(PanelStyle.Render(strings.Repeat("b", 20)))

	if short != long {
		t.Errorf("Panel width should not depend on content: %d vs %d", short, long)
	}
}

func TestRenderRadio(t *testing.T) {
	on := RenderRadio(true)
	off := RenderRadio(false)

	if on == off {
		t.Error("Selected and unselected radios should differ")
	}
	if !strings.Contains(on, "●") {
		t.Error("Selected radio should contain a filled marker")
	}
	if strings.Contains(off, "●") {
		t.Error("Unselected radio should not contain a filled marker")
	}
}

func TestRenderHelpItem(t *testing.T) {
	result := RenderHelpItem("q", "quit")

	if !strings.Contains(result, "q") || !strings.Contains(result, "quit") {
		t.Errorf("Help item should contain key and description, got %q", result)
	}
}

func TestRenderNotification(t *testing.T) {
	tests := []struct {
		msgType string
		icon    string
	}{
		{"success", "✓"},
		{"error", "✗"},
		{"warning", "⚠"},
		{"other", "•"},
	}

	for _, tt := range tests {
		t.Run(tt.msgType, func(t *testing.T) {
			result := RenderNotification(tt.msgType, "message")
			if !strings.Contains(result, tt.icon) {
				t.Errorf("Expected icon %s in %q", tt.icon, result)
			}
			if !strings.Contains(result, "message") {
				t.Errorf("Expected message in %q", result)
			}
		})
	}
}

func TestRenderButton(t *testing.T) {
	if result := RenderButton("OK"); !strings.Contains(result, "OK") {
		t.Errorf("Button should contain label, got %q", result)
	}
}
