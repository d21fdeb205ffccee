// Package clif: the CLIF lexer.
package clif

import (
	"fmt"
	"strings"
)

// isSymbolDelim reports whether r terminates a bare symbol.
func isSymbolDelim(r byte) bool {
	switch r {
	case '(', ')', '"':
		return true
	}

	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// lex tokenizes the whole input up front, tracking 1-based line/column
// and byte offsets (header forms are re-emitted by byte span).
// Complexity: O(len(src)).
func lex(src string) ([]token, error) {
	var toks []token
	line, col := 1, 1
	i := 0

	advance := func(n int) {
		for ; n > 0; n-- {
			if src[i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			i++
		}
	}

	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			advance(1)
		case c == '(':
			toks = append(toks, token{tLParen, "(", line, col, i, i + 1})
			advance(1)
		case c == ')':
			toks = append(toks, token{tRParen, ")", line, col, i, i + 1})
			advance(1)
		case c == '"':
			l, cpos, start := line, col, i
			advance(1)
			rel := strings.IndexByte(src[i:], '"')
			if rel < 0 {
				return nil, fmt.Errorf("clif: %d:%d: unterminated string: %w", l, cpos, ErrSyntax)
			}
			name := src[i : i+rel]
			advance(rel + 1)
			toks = append(toks, token{tString, name, l, cpos, start, i})
		default:
			l, cpos, start := line, col, i
			for i < len(src) && !isSymbolDelim(src[i]) {
				advance(1)
			}
			toks = append(toks, token{tSymbol, src[start:i], l, cpos, start, i})
		}
	}
	toks = append(toks, token{tEOF, "", line, col, len(src), len(src)})

	return toks, nil
}
