package postfix

import (
	"strconv"
	"strings"
)

// FragmentKind classifies the root operation of a Fragment.
type FragmentKind int8

const (
	// Atomic is a single number.
	Atomic FragmentKind = iota
	// Additive is a fragment whose root operator is + or -.
	Additive
	// Multiplicative is a fragment whose root operator is * or /.
	Multiplicative
)

func (k FragmentKind) String() string {
	switch k {
	case Atomic:
		return "Atomic"
	case Additive:
		return "Additive"
	case Multiplicative:
		return "Multiplicative"
	default:
		return "FragmentKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Fragment is the infix text of a subexpression along with the kind of its
// root operation. The kind, rather than the text, decides whether the fragment
// needs parentheses when it becomes an operand.
type Fragment struct {
	Text string
	Kind FragmentKind
}

// Num creates an atomic fragment for a number.
func Num(v float64) Fragment {
	return Fragment{Text: FormatNumber(v), Kind: Atomic}
}

func (f Fragment) String() string {
	return f.Text
}

// Combine creates the fragment for left op right. Under * or /, an additive
// operand is wrapped in parentheses. Under + or -, neither operand is ever
// wrapped. Panics if op is not one of Operators.
func Combine(left Fragment, op byte, right Fragment) Fragment {
	var b strings.Builder
	b.Grow(len(left.Text) + len(right.Text) + 11)
	var kind FragmentKind
	switch op {
	case '+', '-':
		kind = Additive
		b.WriteString(left.Text)
		b.WriteByte(' ')
		b.WriteByte(op)
		b.WriteByte(' ')
		b.WriteString(right.Text)
	case '*', '/':
		kind = Multiplicative
		left.fmt(&b)
		b.WriteByte(' ')
		b.WriteByte(op)
		b.WriteByte(' ')
		right.fmt(&b)
	default:
		panic("postfix: invalid operator " + strconv.QuoteRune(rune(op)))
	}
	return Fragment{Text: b.String(), Kind: kind}
}

// fmt writes the fragment as an operand of * or /.
func (f Fragment) fmt(b *strings.Builder) {
	if f.Kind != Additive {
		b.WriteString(f.Text)
		return
	}
	b.WriteString("( ")
	b.WriteString(f.Text)
	b.WriteString(" )")
}
