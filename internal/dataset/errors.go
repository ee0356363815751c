package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the dataset path does not resolve to a file.
	ErrFileNotFound = errors.New("dataset file not found")
	// ErrParse indicates the dataset could not be parsed into equal-length columns.
	ErrParse = errors.New("dataset parse error")
)

// ParseError describes where a dataset failed to parse. It matches ErrParse via errors.Is.
type ParseError struct {
	Path string
	Line int // 1-based; 0 when not tied to a line
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
