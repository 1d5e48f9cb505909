package postfix

import (
	"errors"
	"strconv"
)

// ErrEmptyInput is the error from ReadBatch when the input has no lines which
// contain an expression.
var ErrEmptyInput = errors.New("empty or blank input")

// OperatorError is an error indicating a single-character token that is
// neither a number nor a known operator. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// Reason describes why an expression is malformed.
type Reason int8

const (
	// ReasonToken is a token which is neither a number nor an operator.
	ReasonToken Reason = iota + 1
	// ReasonOperands is an operator with fewer than two operands available.
	ReasonOperands
	// ReasonUnused is an expression which leaves more than one value after
	// all operators are applied.
	ReasonUnused
	// ReasonEmpty is an expression with no tokens.
	ReasonEmpty
	// ReasonEncoding is a token which is not valid UTF-8.
	ReasonEncoding
)

func (r Reason) String() string {
	switch r {
	case ReasonToken:
		return "invalid token"
	case ReasonOperands:
		return "not enough operands for operator"
	case ReasonUnused:
		return "unused operands"
	case ReasonEmpty:
		return "no expression"
	case ReasonEncoding:
		return "invalid UTF-8 in token"
	default:
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}
}

// MalformedError is an error indicating an expression whose tokens do not
// form exactly one value. It implements InputError.
type MalformedError struct {
	// Col is the position of the offending token. For ReasonUnused and
	// ReasonEmpty, it is the position of the end of the expression.
	Col int
	// Token is the offending token. It is empty for ReasonUnused and
	// ReasonEmpty.
	Token string
	// Reason is the way in which the expression is malformed.
	Reason Reason
	// Left is the number of values on the stack when the error occurred.
	Left int
}

func (err *MalformedError) Error() string {
	msg := "malformed expression: " + err.Reason.String()
	switch err.Reason {
	case ReasonToken, ReasonOperands, ReasonEncoding:
		msg += " " + strconv.Quote(err.Token)
	case ReasonUnused:
		msg += " (" + strconv.Itoa(err.Left) + " values left)"
	}
	return errpos(err.Col, msg)
}

func (err *MalformedError) Pos() int {
	return err.Col
}

// LineError attaches the line number of a batch input to an error.
type LineError struct {
	// Line is the 1-based line number.
	Line int
	// Err is the error evaluating the line.
	Err error
}

func (err *LineError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *LineError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*MalformedError)(nil)
)
