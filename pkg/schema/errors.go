package schema

import (
	"errors"
	"fmt"
)

// ParseError reports a syntactically malformed document.
type ParseError struct {
	Source string // document the error came from, when known
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a required field with no key in the document.
type MissingFieldError struct {
	Source string
	Path   string // path of the enclosing record
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field '%s'", joinPath(e.Path, e.Field))
}

// TypeMismatchError reports a value whose runtime type does not match its
// declared shape.
type TypeMismatchError struct {
	Source   string
	Path     string
	Expected string
	Actual   any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field '%s' expected type '%s' but got '%v' instead", e.Path, e.Expected, e.Actual)
}

// attribute stamps the source document onto a load error.
func attribute(err error, source string) error {
	switch e := err.(type) {
	case *ParseError:
		e.Source = source
	case *MissingFieldError:
		e.Source = source
	case *TypeMismatchError:
		e.Source = source
	}
	return err
}

// Source reports the document a load error came from, or "" when the error
// is not a load error or was not attributed.
func Source(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Source
	}
	var me *MissingFieldError
	if errors.As(err, &me) {
		return me.Source
	}
	var te *TypeMismatchError
	if errors.As(err, &te) {
		return te.Source
	}
	return ""
}
