package desktopentry

import (
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ChangeType represents the kind of a changed line
type ChangeType int

const (
	ChangeRemoved ChangeType = iota
	ChangeAdded
)

// ChangeLine is one removed or added line
type ChangeLine struct {
	Type    ChangeType
	Content string
	LineNum int // Line number in the old (removed) or new (added) content
}

// Change lists the lines that differ between two versions of the file
type Change struct {
	Lines   []ChangeLine
	Added   int
	Removed int
}

// Diff computes the line changes of a rewrite
func (r Result) Diff() *Change {
	return ComputeChange(r.Before, r.After)
}

// ComputeChange diffs two contents line by line
func ComputeChange(before, after string) *Change {
	change := &Change{}
	if before == after {
		return change
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	oldLineNum := 1
	newLineNum := 1
	for _, d := range diffs {
		lines := splitDiffText(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldLineNum += len(lines)
			newLineNum += len(lines)

		case diffmatchpatch.DiffDelete:
			for i, line := range lines {
				change.Lines = append(change.Lines, ChangeLine{
					Type:    ChangeRemoved,
					Content: line,
					LineNum: oldLineNum + i,
				})
			}
			change.Removed += len(lines)
			oldLineNum += len(lines)

		case diffmatchpatch.DiffInsert:
			for i, line := range lines {
				change.Lines = append(change.Lines, ChangeLine{
					Type:    ChangeAdded,
					Content: line,
					LineNum: newLineNum + i,
				})
			}
			change.Added += len(lines)
			newLineNum += len(lines)
		}
	}

	return change
}

// splitDiffText splits a line-mode diff chunk; a chunk always ends at a
// line boundary except at the end of the content.
func splitDiffText(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// IsEmpty reports whether nothing changed
func (c *Change) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Summary returns a brief summary of changes
func (c *Change) Summary() string {
	if c.IsEmpty() {
		return "No changes"
	}

	var parts []string
	if c.Added > 0 {
		parts = append(parts, "+"+strconv.Itoa(c.Added))
	}
	if c.Removed > 0 {
		parts = append(parts, "-"+strconv.Itoa(c.Removed))
	}
	return strings.Join(parts, " ")
}
