// Package desktopentry rewrites the Exec line of a desktop entry file.
//
// The file is reached through a billy.Filesystem so the same code runs
// against the real disk (osfs) and an in-memory stand-in (memfs) in tests.
package desktopentry

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// ExecPattern matches an Exec key up to and including the last space on
// its line. The trailing space is part of the match.
var ExecPattern = regexp.MustCompile(`Exec=[^\n]+ `)

// Rewriter updates one desktop entry file
type Rewriter struct {
	FS   billy.Filesystem
	Path string
}

// Result describes one UpdateExecLine call
type Result struct {
	Path    string
	Value   string // Replacement that was applied
	Before  string // Content read from disk
	After   string // Content written back
	Matches int    // Number of replaced occurrences
	Err     *FileAccessError
}

// OK reports whether the file was read and written back
func (r Result) OK() bool {
	return r.Err == nil
}

// Changed reports whether the written content differs from what was read
func (r Result) Changed() bool {
	return r.OK() && r.Before != r.After
}

// New creates a rewriter over an arbitrary filesystem
func New(fs billy.Filesystem, path string) *Rewriter {
	return &Rewriter{FS: fs, Path: path}
}

// NewOS creates a rewriter for an absolute path on the local disk
func NewOS(path string) *Rewriter {
	return New(osfs.New("/"), path)
}

// Replace substitutes every Exec match in content with value, literally
func Replace(content, value string) (string, int) {
	matches := len(ExecPattern.FindAllStringIndex(content, -1))
	if matches == 0 {
		return content, 0
	}
	return ExecPattern.ReplaceAllLiteralString(content, value), matches
}

// UpdateExecLine reads the file, replaces every Exec match with value and
// writes the content back, truncating the previous contents.
// The file is never created: a missing file is a read failure.
func (r *Rewriter) UpdateExecLine(value string) Result {
	res := Result{Path: r.Path, Value: value}

	before, err := r.read()
	if err != nil {
		res.Err = err
		return res
	}
	res.Before = before

	after, matches := Replace(before, value)
	res.After = after
	res.Matches = matches

	if err := r.write(after); err != nil {
		res.Err = err
		return res
	}

	return res
}

// Content returns the current file content
func (r *Rewriter) Content() (string, error) {
	content, err := r.read()
	if err != nil {
		return "", err
	}
	return content, nil
}

// ExecLines returns the current Exec lines of the file
func (r *Rewriter) ExecLines() ([]string, error) {
	content, err := r.Content()
	if err != nil {
		return nil, err
	}
	return ExecLines(content), nil
}

// ExecLines returns every line of content that starts with the Exec key
func ExecLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "Exec=") {
			lines = append(lines, line)
		}
	}
	return lines
}

func (r *Rewriter) read() (string, *FileAccessError) {
	f, err := r.FS.Open(r.Path)
	if err != nil {
		return "", newFileAccessError("read", r.Path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", newFileAccessError("read", r.Path, err)
	}
	return string(data), nil
}

func (r *Rewriter) write(content string) (ferr *FileAccessError) {
	f, err := r.FS.OpenFile(r.Path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return newFileAccessError("write", r.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && ferr == nil {
			ferr = newFileAccessError("write", r.Path, cerr)
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return newFileAccessError("write", r.Path, err)
	}
	return nil
}
