// Package verify checks infix renderings by evaluating them again with an
// ordinary infix evaluator.
package verify

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"github.com/zephyrtronium/postfix"
)

// Tolerance is the relative difference allowed between the postfix value and
// the value of its infix rendering.
const Tolerance = 1e-9

// MismatchError reports an infix rendering whose value differs from the
// value of its postfix source.
type MismatchError struct {
	Infix string
	Want  float64
	Got   float64
}

func (err *MismatchError) Error() string {
	return fmt.Sprintf("infix %q evaluates to %v, postfix evaluates to %v", err.Infix, err.Got, err.Want)
}

// RoundTrip evaluates the infix text of e with standard precedence and
// compares the result to e.Value. Renderings of subtraction or division with
// a right operand of the same precedence are not regrouped, so those report a
// MismatchError whenever the grouping changes the value.
func RoundTrip(e *postfix.Expr) error {
	ev, err := govaluate.NewEvaluableExpression(e.Infix.Text)
	if err != nil {
		return fmt.Errorf("parsing infix %q: %w", e.Infix.Text, err)
	}
	r, err := ev.Evaluate(nil)
	if err != nil {
		return fmt.Errorf("evaluating infix %q: %w", e.Infix.Text, err)
	}
	got, ok := r.(float64)
	if !ok {
		return fmt.Errorf("infix %q evaluated to %T, not a number", e.Infix.Text, r)
	}
	if !Close(e.Value, got) {
		return &MismatchError{Infix: e.Infix.Text, Want: e.Value, Got: got}
	}
	return nil
}

// Close reports whether a and b are equal within Tolerance. NaN is close to
// NaN, and infinities are close only to themselves.
func Close(a, b float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}
	d := math.Abs(a - b)
	return d <= Tolerance || d <= Tolerance*math.Max(math.Abs(a), math.Abs(b))
}
