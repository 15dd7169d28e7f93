package models

import "strings"

// Option is one selectable launcher command
type Option struct {
	Key     string // Shortcut key shown in the panel
	Label   string // Display name
	Command string // Literal replacement for the matched Exec line
}

// OptionSet holds the fixed options shown by the toggle panel
type OptionSet struct {
	options []Option
}

// Preset commands. They carry no trailing space, so a line they produced is
// matched again only up to the space before the placeholder.
const (
	MacroScriptCommand = "Exec=/fiji_macro.sh %F"
	QuPathCommand      = "Exec=qupath %F"
)

// DefaultOptions returns the two options the panel offers.
// The first one is pre-selected at startup.
func DefaultOptions() OptionSet {
	return NewOptionSet(
		Option{Key: "1", Label: "Fiji", Command: MacroScriptCommand},
		Option{Key: "2", Label: "QuPath", Command: QuPathCommand},
	)
}

// NewOptionSet creates an option set; the slice is copied
func NewOptionSet(opts ...Option) OptionSet {
	cp := make([]Option, len(opts))
	copy(cp, opts)
	return OptionSet{options: cp}
}

// Len returns the number of options
func (s OptionSet) Len() int {
	return len(s.options)
}

// At returns the option at index i
func (s OptionSet) At(i int) (Option, bool) {
	if i < 0 || i >= len(s.options) {
		return Option{}, false
	}
	return s.options[i], true
}

// All returns a copy of the options
func (s OptionSet) All() []Option {
	cp := make([]Option, len(s.options))
	copy(cp, s.options)
	return cp
}

// IndexOfKey returns the index of the option bound to key, or -1
func (s OptionSet) IndexOfKey(key string) int {
	for i, opt := range s.options {
		if opt.Key == key {
			return i
		}
	}
	return -1
}

// Match returns the index of the option whose command an Exec line starts
// with, or -1 when the line belongs to neither option. Placeholders left
// behind by earlier rewrites (%F%F) still count as a match.
func (s OptionSet) Match(execLine string) int {
	for i, opt := range s.options {
		if opt.Command != "" && strings.HasPrefix(execLine, opt.Command) {
			return i
		}
	}
	return -1
}

// DisplayCommand returns the command without the Exec= key, for display
func (o Option) DisplayCommand() string {
	return strings.TrimSpace(strings.TrimPrefix(o.Command, "Exec="))
}
