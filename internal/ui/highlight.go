package ui

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter provides syntax highlighting for desktop entry lines
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a new syntax highlighter
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
	}
}

// HighlightLine highlights a single line based on the file name
func (h *Highlighter) HighlightLine(line, filename string) string {
	return h.render(getLexerForFile(filename), line)
}

// HighlightLines highlights the lines of one file, resolving the lexer once.
// Unknown file types come back unchanged.
func (h *Highlighter) HighlightLines(lines []string, filename string) []string {
	lexer := getLexerForFile(filename)

	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = h.render(lexer, line)
	}
	return result
}

func (h *Highlighter) render(lexer chroma.Lexer, line string) string {
	if lexer == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := h.style.Get(token.Type)
		if !entry.Colour.IsSet() {
			result.WriteString(token.Value)
			continue
		}

		styled := lipgloss.NewStyle().
			Foreground(lipgloss.Color(entry.Colour.String())).
			Bold(entry.Bold == chroma.Yes).
			Italic(entry.Italic == chroma.Yes)
		result.WriteString(styled.Render(token.Value))
	}

	return result.String()
}

// getLexerForFile returns the lexer for a filename.
// Desktop entries are key=value files under [group] headers, which the
// ini lexer covers.
func getLexerForFile(filename string) chroma.Lexer {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".desktop", ".directory", ".ini", ".conf":
		return lexers.Get("ini")
	case ".sh", ".bash":
		return lexers.Get("bash")
	}
	return lexers.Match(filename)
}
