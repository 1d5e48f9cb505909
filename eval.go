package postfix

import (
	"io"
	"strings"
)

// Expr is a successfully evaluated postfix expression. Exprs are only created
// by evaluation, so every Expr has both a value and an infix rendering.
type Expr struct {
	// Source is the postfix text of the expression.
	Source string
	// Value is the result of the expression.
	Value float64
	// Infix is the infix rendering of the expression.
	Infix Fragment
}

// String formats the expression as "infix = value".
func (e *Expr) String() string {
	return e.Infix.Text + " = " + FormatNumber(e.Value)
}

// Eval reads a postfix expression to EOF and evaluates it. If the expression
// is invalid, the error is an InputError and the result is nil.
func Eval(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	toks, err := scan.tokens()
	if err != nil {
		return nil, err
	}
	v, f, err := evaluate(toks, scan.rune)
	if err != nil {
		return nil, err
	}
	return &Expr{Source: scan.raw.String(), Value: v, Infix: f}, nil
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (*Expr, error) {
	return Eval(strings.NewReader(src))
}

// evaluate runs the tokens through a value stack and a parallel fragment
// stack. end is the position used for errors detected after the last token.
func evaluate(toks []lexToken, end int) (float64, Fragment, error) {
	vals := make([]float64, 0, len(toks)/2+1)
	frags := make([]Fragment, 0, len(toks)/2+1)
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			vals = append(vals, tok.val)
			frags = append(frags, Num(tok.val))
		case tokenOp:
			k := len(vals)
			if k < 2 {
				return 0, Fragment{}, &MalformedError{Col: tok.pos, Token: tok.text, Reason: ReasonOperands, Left: k}
			}
			// The operand popped second is on the left.
			a, b := vals[k-2], vals[k-1]
			fa, fb := frags[k-2], frags[k-1]
			vals = vals[:k-1]
			frags = frags[:k-1]
			op := tok.text[0]
			vals[k-2] = apply(op, a, b)
			frags[k-2] = Combine(fa, op, fb)
		default:
			panic("postfix: unexpected token " + tok.String())
		}
	}
	switch len(vals) {
	case 0:
		return 0, Fragment{}, &MalformedError{Col: end, Reason: ReasonEmpty}
	case 1:
		return vals[0], frags[0], nil
	default:
		return 0, Fragment{}, &MalformedError{Col: end, Reason: ReasonUnused, Left: len(vals)}
	}
}

// apply computes a op b. Division by zero follows IEEE 754.
func apply(op byte, a, b float64) float64 {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	default:
		panic("postfix: invalid operator " + string(op))
	}
}
