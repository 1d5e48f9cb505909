// Package postfix evaluates arithmetic expressions written in postfix
// (reverse Polish) notation and renders each one back in infix notation with
// as few parentheses as the usual precedence of * and / over + and - allows.
//
// "5 1 2 + 4 * +" evaluates to 17 and renders as "5 + ( 1 + 2 ) * 4". Tokens
// are separated by whitespace. A token is either a decimal floating-point
// literal or one of the operators + - * /.
//
// A batch of expressions, one per line, can be read with ReadBatch, ordered by
// value with Rank, and written as "infix = value" lines with WriteBatch.
//
package postfix
