package model

import (
	"errors"
	"fmt"
)

var (
	ErrUsage             = errors.New("usage error")
	ErrParse             = errors.New("parse error")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDivisionUndefined = errors.New("division undefined")
)

// ParseError describes a malformed field in the input table. Row is the
// 1-based data row, not counting the header.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("row %d, column %q, value %q: %v", e.Row, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("row %d, column %q, value %q: malformed", e.Row, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
