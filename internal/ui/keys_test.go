package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"Select", km.Select},
		{"First", km.First},
		{"Second", km.Second},
		{"Dismiss", km.Dismiss},
		{"Help", km.Help},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		if len(b.binding.Keys()) == 0 {
			t.Errorf("%s binding should have keys", b.name)
		}
		if b.binding.Help().Key == "" {
			t.Errorf("%s binding should have help key", b.name)
		}
		if b.binding.Help().Desc == "" {
			t.Errorf("%s binding should have help description", b.name)
		}
	}
}

func TestDefaultKeyMap_OptionShortcuts(t *testing.T) {
	km := DefaultKeyMap()

	if km.First.Keys()[0] != "1" {
		t.Errorf("First should be bound to '1', got %q", km.First.Keys()[0])
	}
	if km.Second.Keys()[0] != "2" {
		t.Errorf("Second should be bound to '2', got %q", km.Second.Keys()[0])
	}
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should return bindings")
	}
}

func TestFullHelp_ContainsQuit(t *testing.T) {
	km := DefaultKeyMap()

	found := false
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if b.Help().Desc == "quit" {
				found = true
			}
		}
	}
	if !found {
		t.Error("FullHelp should include the quit binding")
	}
}
