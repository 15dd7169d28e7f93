package components

import (
	"strings"
	"testing"
	"unicode/utf8"

	"macrotoggle/internal/models"
)

func TestNewTogglePanel(t *testing.T) {
	panel := NewTogglePanel(models.DefaultOptions())

	if panel == nil {
		t.Fatal("NewTogglePanel should return a TogglePanel")
	}
	if panel.Selected != 0 {
		t.Errorf("Expected first option pre-selected, got %d", panel.Selected)
	}
	if panel.Cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", panel.Cursor)
	}
	if panel.Title == "" {
		t.Error("Expected Title to be set")
	}
}

func TestTogglePanel_MoveCursor(t *testing.T) {
	panel := NewTogglePanel(models.DefaultOptions())

	panel.MoveUp()
	if panel.Cursor != 0 {
		t.Errorf("Cursor should stay at 0, got %d", panel.Cursor)
	}

	panel.MoveDown()
	if panel.Cursor != 1 {
		t.Errorf("Expected cursor at 1, got %d", panel.Cursor)
	}

	panel.MoveDown()
	if panel.Cursor != 1 {
		t.Errorf("Cursor should stay at last option, got %d", panel.Cursor)
	}

	if panel.Selected != 0 {
		t.Error("Moving the cursor should not change the selection")
	}
}

func TestTogglePanel_SelectCursor(t *testing.T) {
	panel := NewTogglePanel(models.DefaultOptions())
	panel.MoveDown()

	opt, ok := panel.SelectCursor()
	if !ok {
		t.Fatal("SelectCursor should succeed")
	}
	if opt.Command != models.QuPathCommand {
		t.Errorf("Expected second option, got %q", opt.Command)
	}
	if panel.Selected != 1 {
		t.Errorf("Expected selection 1, got %d", panel.Selected)
	}
}

func TestTogglePanel_SelectIndexExclusive(t *testing.T) {
	panel := NewTogglePanel(models.DefaultOptions())

	panel.SelectIndex(1)
	if panel.Selected != 1 || panel.Cursor != 1 {
		t.Errorf("Expected selection and cursor at 1, got %d/%d", panel.Selected, panel.Cursor)
	}
	if panel.SelectedOption().Command != models.QuPathCommand {
		t.Error("SelectedOption should follow the selection")
	}

	panel.SelectIndex(0)
	if panel.Selected != 0 {
		t.Errorf("Expected selection 0, got %d", panel.Selected)
	}
}

func TestTogglePanel_ReselectReturnsSameOption(t *testing.T) {
	panel := NewTogglePanel(models.DefaultOptions())

	first, ok1 := panel.SelectIndex(0)
	again, ok2 := panel.SelectIndex(0)

	if !ok1 || !ok2 {
		t.Fatal("Reselecting should succeed")
	}
	if first != again {
		t.Error("Reselecting should return the same option")
	}
}

func TestTogglePanel_SelectIndexOutOfRange(t *testing.T) {
	panel := NewTogglePanel(models.DefaultOptions())

	if _, ok := panel.SelectIndex(5); ok {
		t.Error("Out of range selection should fail")
	}
	if panel.Selected != 0 {
		t.Error("Failed selection should not change the selection")
	}
}

func TestTogglePanel_View(t *testing.T) {
	panel := NewTogglePanel(models.DefaultOptions())

	view := panel.View()

	if !strings.Contains(view, "Fiji") {
		t.Error("View should contain first label")
	}
	if !strings.Contains(view, "QuPath") {
		t.Error("View should contain second label")
	}
	if !strings.Contains(view, "/fiji_macro.sh %F") {
		t.Error("View should show the first command")
	}
	if strings.Count(view, "●") != 1 {
		t.Errorf("Exactly one radio should be filled, got %d", strings.Count(view, "●"))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"tiny", 3, "tiny"},
		{"/opt/Fiji.app/ÄÖÜäöü", 18, "/opt/Fiji.app/Ä..."},
		{"ÄÖÜäöüßÄÖÜ", 6, "ÄÖÜ..."},
	}

	for _, tt := range tests {
		got := truncate(tt.input, tt.n)
		if got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.expected)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) split a character: %q", tt.input, tt.n, got)
		}
	}
}
