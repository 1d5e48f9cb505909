package cli

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/postfix"
)

// ErrorKind is a coarse-grained categorization for run failures.
type ErrorKind string

const (
	KindUsage           ErrorKind = "usage"
	KindInputIO         ErrorKind = "input_io"
	KindOutputIO        ErrorKind = "output_io"
	KindEmptyInput      ErrorKind = "empty_input"
	KindUnknownOperator ErrorKind = "unknown_operator"
	KindMalformed       ErrorKind = "malformed_expression"
	KindConfig          ErrorKind = "config"
)

// Error wraps an underlying error with operation context and a kind.
type Error struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf returns the kind of a run failure, or the empty kind if err did not
// come from a run.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// batchKind classifies an error from postfix.ReadBatch.
func batchKind(err error) ErrorKind {
	var (
		oe *postfix.OperatorError
		me *postfix.MalformedError
	)
	switch {
	case errors.Is(err, postfix.ErrEmptyInput):
		return KindEmptyInput
	case errors.As(err, &oe):
		return KindUnknownOperator
	case errors.As(err, &me):
		return KindMalformed
	default:
		return KindInputIO
	}
}
