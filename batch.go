package postfix

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ReadBatch evaluates each line of r as a separate expression. Lines which are
// empty or contain only whitespace are skipped. Evaluation stops at the first
// invalid expression; the error is a *LineError wrapping an InputError. If
// there are no expressions at all, the error is ErrEmptyInput.
func ReadBatch(r io.Reader) ([]*Expr, error) {
	var batch []*Expr
	br := bufio.NewReader(r)
	line := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if text == "" && err != nil {
			break
		}
		line++
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		if strings.TrimSpace(text) != "" {
			e, eerr := EvalString(text)
			if eerr != nil {
				return nil, &LineError{Line: line, Err: eerr}
			}
			batch = append(batch, e)
		}
		if err != nil {
			break
		}
	}
	if len(batch) == 0 {
		return nil, ErrEmptyInput
	}
	return batch, nil
}

// WriteBatch writes each expression in "infix = value" form on its own line.
func WriteBatch(w io.Writer, batch []*Expr) error {
	bw := bufio.NewWriter(w)
	for _, e := range batch {
		bw.WriteString(e.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
