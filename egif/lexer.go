// Package egif: the EGIF lexer.
package egif

import (
	"fmt"
	"strings"
)

// isDelim reports whether r terminates a bare identifier.
func isDelim(r byte) bool {
	switch r {
	case '(', ')', '[', ']', '~', '"', ';', '*':
		return true
	}

	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// lex tokenizes the whole input up front, tracking 1-based positions.
// Line comments (; to end of line) are skipped.
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

	// readIdent consumes a bare identifier starting at i; empty is a
	// caller-side syntax error.
	readIdent := func() string {
		start := i
		for i < len(src) && !isDelim(src[i]) {
			advance(1)
		}

		return src[start:i]
	}

	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			advance(1)
		case c == ';':
			for i < len(src) && src[i] != '\n' {
				advance(1)
			}
		case c == '(':
			toks = append(toks, token{tLParen, "(", line, col})
			advance(1)
		case c == ')':
			toks = append(toks, token{tRParen, ")", line, col})
			advance(1)
		case c == '[':
			toks = append(toks, token{tLBrack, "[", line, col})
			advance(1)
		case c == ']':
			toks = append(toks, token{tRBrack, "]", line, col})
			advance(1)
		case c == '~':
			if i+1 >= len(src) || src[i+1] != '[' {
				return nil, fmt.Errorf("egif: %d:%d: '~' must open a cut '~[': %w", line, col, ErrSyntax)
			}
			toks = append(toks, token{tTildeBrack, "~[", line, col})
			advance(2)
		case c == '*':
			l, cpos := line, col
			advance(1)
			name := readIdent()
			if name == "" {
				return nil, fmt.Errorf("egif: %d:%d: '*' must be followed by a label: %w", l, cpos, ErrSyntax)
			}
			toks = append(toks, token{tDefining, name, l, cpos})
		case c == '"':
			l, cpos := line, col
			advance(1)
			end := strings.IndexByte(src[i:], '"')
			if end < 0 {
				return nil, fmt.Errorf("egif: %d:%d: unterminated string: %w", l, cpos, ErrSyntax)
			}
			name := src[i : i+end]
			advance(end + 1)
			toks = append(toks, token{tString, name, l, cpos})
		default:
			l, cpos := line, col
			name := readIdent()
			if name == "" {
				return nil, fmt.Errorf("egif: %d:%d: unexpected character %q: %w", l, cpos, c, ErrSyntax)
			}
			toks = append(toks, token{tName, name, l, cpos})
		}
	}
	toks = append(toks, token{tEOF, "", line, col})

	return toks, nil
}
