package desktopentry

import (
	"fmt"
	"runtime/debug"
)

// FileAccessError is returned for every failure touching the target file:
// missing file, permission denied, or a read/write error.
type FileAccessError struct {
	Op    string // "read" or "write"
	Path  string
	Err   error
	Stack []byte // Captured where the failure happened, for the diagnostic log
}

func newFileAccessError(op, path string, err error) *FileAccessError {
	return &FileAccessError{
		Op:    op,
		Path:  path,
		Err:   err,
		Stack: debug.Stack(),
	}
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
