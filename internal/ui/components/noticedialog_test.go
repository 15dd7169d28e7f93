package components

import (
	"strings"
	"testing"
)

func TestNewNoticeDialog(t *testing.T) {
	d := NewNoticeDialog()

	if d.IsVisible() {
		t.Error("New dialog should be hidden")
	}
	if d.View() != "" {
		t.Error("Hidden dialog should render nothing")
	}
}

func TestNoticeDialog_ShowSuccess(t *testing.T) {
	d := NewNoticeDialog()
	d.ShowSuccess("Done", "Exec command updated successfully.", []string{"+Exec=qupath %F"})

	if !d.IsVisible() {
		t.Fatal("Dialog should be visible")
	}
	if d.Kind != NoticeSuccess {
		t.Error("Expected success kind")
	}

	view := d.View()
	for _, want := range []string{"Done", "Exec command updated successfully.", "+Exec=qupath %F", "OK"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestNoticeDialog_ShowErrorClearsDetails(t *testing.T) {
	d := NewNoticeDialog()
	d.ShowSuccess("Done", "ok", []string{"detail"})
	d.ShowError("Failed", "Error updating Exec command.")

	if d.Kind != NoticeError {
		t.Error("Expected error kind")
	}
	if len(d.Details) != 0 {
		t.Error("Error notice should not carry details")
	}

	view := d.View()
	if !strings.Contains(view, "Error updating Exec command.") {
		t.Error("View should contain the generic message")
	}
	if strings.Contains(view, "detail") {
		t.Error("View should not contain details from the previous notice")
	}
}

func TestNoticeDialog_DetailsCapped(t *testing.T) {
	d := NewNoticeDialog()

	var details []string
	for i := 0; i < maxDetailLines+3; i++ {
		details = append(details, "line")
	}
	d.ShowSuccess("Done", "ok", details)

	view := d.View()
	if got := strings.Count(view, "line"); got != maxDetailLines {
		t.Errorf("Expected %d detail lines, got %d", maxDetailLines, got)
	}
	if !strings.Contains(view, "...") {
		t.Error("Expected an overflow marker")
	}
}

func TestNoticeDialog_Hide(t *testing.T) {
	d := NewNoticeDialog()
	d.ShowError("Failed", "x")
	d.Hide()

	if d.IsVisible() {
		t.Error("Dialog should be hidden")
	}
}

func TestNoticeDialog_StylesDiffer(t *testing.T) {
	ok := NewNoticeDialog()
	ok.ShowSuccess("Title", "message", nil)

	bad := NewNoticeDialog()
	bad.ShowError("Title", "message")

	if ok.View() == bad.View() {
		t.Error("Success and error notices should render differently")
	}
}
