package dataset

import (
	"errors"
	"fmt"
)

// Domain errors for dataset loading.
var (
	// ErrEmptyDataset indicates a dataset with zero usable samples.
	ErrEmptyDataset = errors.New("dataset: no samples")

	// ErrBadHeader indicates a missing or malformed header row.
	ErrBadHeader = errors.New("dataset: header must be t,absZ,spacing")

	// ErrUnsorted indicates rows not strictly ordered by ascending t.
	ErrUnsorted = errors.New("dataset: rows must be ordered by strictly increasing t")
)

// ParseError wraps a row-level parse failure with its position in the file.
type ParseError struct {
	Path    string
	Line    int
	Field   string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: bad %s: %v", e.Path, e.Line, e.Field, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
