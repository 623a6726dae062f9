// Package paleval implements the small stack-based expression language
// used by palcomp's `eval=`/`eval@...=` commands and their bare shorthand:
// registers r,g,b,l,c,h,x,y,z (s aliasing c), arithmetic with conventional
// precedence, and a scope selector restricting evaluation to a subset of
// palette entries.
package paleval

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNum
	tokReg
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int
	num  float64
	reg  byte
	op   byte
}

// lexError is raised by the lexer and carries the offending position so
// the caller can render a caret under the source expression.
type lexError struct {
	pos int
	msg string
}

func (e *lexError) Error() string { return e.msg }

// registers is the set of single-letter register names recognized by the
// language. "s" is accepted by the lexer as a distinct register and
// resolved to an alias for "c" at evaluation time, per the spec's note
// that s is merely a spelling of c.
const registers = "rgblchxyzs"

func isRegisterLetter(b byte) bool {
	for i := 0; i < len(registers); i++ {
		if registers[i] == b {
			return true
		}
	}
	return false
}

func lex(expr string) ([]token, error) {
	var toks []token
	i := 0
	n := len(expr)
	for i < n {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < n && (expr[i] >= '0' && expr[i] <= '9' || expr[i] == '.' || expr[i] == 'e' || expr[i] == 'E' ||
				((expr[i] == '+' || expr[i] == '-') && i > start && (expr[i-1] == 'e' || expr[i-1] == 'E'))) {
				i++
			}
			v, err := strconv.ParseFloat(expr[start:i], 64)
			if err != nil {
				return nil, &lexError{pos: start, msg: fmt.Sprintf("invalid number %q", expr[start:i])}
			}
			toks = append(toks, token{kind: tokNum, pos: start, num: v})
		case isRegisterLetter(c):
			toks = append(toks, token{kind: tokReg, pos: i, reg: c})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		case c == ',' || c == '=' || c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
			toks = append(toks, token{kind: tokOp, pos: i, op: c})
			i++
		default:
			return nil, &lexError{pos: i, msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: n})
	return toks, nil
}
