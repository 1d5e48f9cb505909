package postfix

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// val is the value of a tokenNum.
	val float64
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal floating-point literal.
	tokenNum
	// tokenOp is one of the operators.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	raw  strings.Builder
	rune int
	eof  bool
	// bad is whether the token being scanned contains invalid UTF-8.
	bad bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
		l.raw.WriteRune(r)
	}
	if r == utf8.RuneError && sz == 1 {
		l.bad = true
	}
	return r, err
}

// next scans and classifies the next whitespace-delimited token. The first
// time EOF is encountered, the result is an EOF token with a nil error.
// Subsequent times, the result is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	pos := l.rune
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if l.buf.Len() > 0 {
					// Leave the EOF for the next call.
					return l.token(pos)
				}
				l.eof = true
				return lexToken{kind: tokenEOF, pos: pos}, nil
			}
			return lexToken{pos: pos}, err
		}
		if unicode.IsSpace(r) {
			if l.buf.Len() == 0 {
				pos = l.rune
				continue
			}
			return l.token(pos)
		}
		l.buf.WriteRune(r)
	}
}

// token classifies the scanned text. Text containing invalid UTF-8 is always
// malformed.
func (l *lexer) token(pos int) (lexToken, error) {
	if l.bad {
		l.bad = false
		return lexToken{pos: pos}, &MalformedError{Col: pos, Token: l.buf.String(), Reason: ReasonEncoding}
	}
	return classify(l.buf.String(), pos)
}

// tokens scans all remaining tokens, not including the EOF token.
func (l *lexer) tokens() ([]lexToken, error) {
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// classify decides whether text is a number or an operator. Numbers are
// checked first. A single rune which is neither is an unknown operator;
// anything else is a malformed token.
func classify(text string, pos int) (lexToken, error) {
	if v, ok := parseNum(text); ok {
		return lexToken{text: text, kind: tokenNum, pos: pos, val: v}, nil
	}
	if utf8.RuneCountInString(text) == 1 {
		if strings.Contains(Operators, text) {
			return lexToken{text: text, kind: tokenOp, pos: pos}, nil
		}
		return lexToken{pos: pos}, &OperatorError{Col: pos, Operator: text}
	}
	return lexToken{pos: pos}, &MalformedError{Col: pos, Token: text, Reason: ReasonToken}
}

// parseNum parses a decimal floating-point literal. Literals too large in
// magnitude become infinities.
func parseNum(s string) (float64, bool) {
	t := strings.TrimLeft(s, "+-")
	if len(t) > 1 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// There isn't any other way to learn about overflow.
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// FormatNumber renders a value as the shortest decimal that parses back to
// the same float64. The result never uses an exponent. Infinities and NaN are
// rendered as +Inf, -Inf, and NaN, which are also valid number tokens.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
