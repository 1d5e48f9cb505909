package postfix

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1, val: 0}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1, val: 9876543210}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1, val: 1}, {text: "0", kind: tokenNum, pos: 3, val: 0}}, 0},
		{"  1", []lexToken{{text: "1", kind: tokenNum, pos: 3, val: 1}}, 0},
		{"1.5", []lexToken{{text: "1.5", kind: tokenNum, pos: 1, val: 1.5}}, 0},
		{"-1", []lexToken{{text: "-1", kind: tokenNum, pos: 1, val: -1}}, 0},
		{"+1", []lexToken{{text: "+1", kind: tokenNum, pos: 1, val: 1}}, 0},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1, val: 10}}, 0},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenNum, pos: 1, val: 0.1}}, 0},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 1, val: 0.5}}, 0},
		{"1e", []lexToken{{pos: 1}}, 1},
		{"1.1.1", []lexToken{{pos: 1}}, 1},
		{"0x10p0", []lexToken{{pos: 1}}, 1},
		{"1a", []lexToken{{pos: 1}}, 1},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"-", []lexToken{{text: "-", kind: tokenOp, pos: 1}}, 0},
		{"*", []lexToken{{text: "*", kind: tokenOp, pos: 1}}, 0},
		{"/", []lexToken{{text: "/", kind: tokenOp, pos: 1}}, 0},
		{"1 2 +", []lexToken{{text: "1", kind: tokenNum, pos: 1, val: 1}, {text: "2", kind: tokenNum, pos: 3, val: 2}, {text: "+", kind: tokenOp, pos: 5}}, 0},
		{"++", []lexToken{{pos: 1}}, 1},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"1 $ 2", []lexToken{{text: "1", kind: tokenNum, pos: 1, val: 1}, {pos: 3}, {text: "2", kind: tokenNum, pos: 5, val: 2}}, 1},
		{"× ÷", []lexToken{{pos: 1}, {pos: 3}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		if got, err := scan.next(); err != nil || got.kind != tokenEOF {
			t.Errorf("scanning %q: expected EOF token, got %v with error %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestClassifyErrors(t *testing.T) {
	cases := []struct {
		text string
		op   bool
	}{
		{"$", true},
		{"%", true},
		{"x", true},
		{"^", true},
		{"×", true},
		{"ab", false},
		{"**", false},
		{"1..2", false},
		{"0x1p4", false},
		{"-0X1p4", false},
	}
	for _, c := range cases {
		_, err := classify(c.text, 7)
		if err == nil {
			t.Errorf("classifying %q: no error", c.text)
			continue
		}
		var oe *OperatorError
		var me *MalformedError
		switch {
		case errors.As(err, &oe):
			if !c.op {
				t.Errorf("classifying %q: wanted malformed expression, got %v", c.text, err)
			}
			if oe.Operator != c.text || oe.Col != 7 {
				t.Errorf("classifying %q: wrong error details %+v", c.text, oe)
			}
		case errors.As(err, &me):
			if c.op {
				t.Errorf("classifying %q: wanted unknown operator, got %v", c.text, err)
			}
			if me.Token != c.text || me.Reason != ReasonToken || me.Col != 7 {
				t.Errorf("classifying %q: wrong error details %+v", c.text, me)
			}
		default:
			t.Errorf("classifying %q: unexpected error type %T", c.text, err)
		}
	}
}

func TestClassifyNumbers(t *testing.T) {
	cases := []struct {
		text string
		val  float64
	}{
		{"1e400", math.Inf(1)},
		{"-1e400", math.Inf(-1)},
		{"inf", math.Inf(1)},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
		{"0.1", 0.1},
		{"-0", math.Copysign(0, -1)},
	}
	for _, c := range cases {
		tok, err := classify(c.text, 1)
		if err != nil {
			t.Errorf("classifying %q: %v", c.text, err)
			continue
		}
		if tok.kind != tokenNum {
			t.Errorf("classifying %q: wanted number, got %v", c.text, tok)
		}
		if tok.val != c.val || math.Signbit(tok.val) != math.Signbit(c.val) {
			t.Errorf("classifying %q: wanted %v, got %v", c.text, c.val, tok.val)
		}
	}
	tok, err := classify("NaN", 1)
	if err != nil || tok.kind != tokenNum || !math.IsNaN(tok.val) {
		t.Errorf("classifying NaN: got %v (%v) with error %v", tok, tok.val, err)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{7, "7"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{1e21, "1000000000000000000000"},
		{1.0 / 3, "0.3333333333333333"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		got := FormatNumber(c.v)
		if got != c.want {
			t.Errorf("FormatNumber(%v): want %q, got %q", c.v, c.want, got)
		}
		// The rendering must be accepted back as a number token.
		tok, err := classify(got, 1)
		if err != nil || tok.kind != tokenNum {
			t.Errorf("FormatNumber(%v) = %q does not classify as a number: %v", c.v, got, err)
			continue
		}
		if !math.IsNaN(c.v) && tok.val != c.v {
			t.Errorf("FormatNumber(%v) = %q parses back as %v", c.v, got, tok.val)
		}
	}
}
