// Package egif: the EGIF parser.
//
// Recursive descent over the token stream. The parser builds the Graph
// through the egi construction API only, so every intermediate state is
// a valid Graph and scoping errors surface before any later element is
// built.
package egif

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/peirce/egi"
)

// Parse builds the canonical Graph for one EGIF statement.
// Returns ErrSyntax, ErrUndefinedLabel, or ErrDuplicateLabel, each
// wrapped with the offending line:column.
// Complexity: O(n) tokens, O(n·(V+E)) graph construction.
func Parse(src string) (*egi.Graph, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{
		toks:   toks,
		g:      egi.New(),
		scopes: []map[string]egi.ElementID{make(map[string]egi.ElementID)},
	}
	if err = p.parseItems(egi.Sheet, tEOF); err != nil {
		return nil, err
	}

	return p.g, nil
}

// constant labels share scope frames with generic labels under a quote
// prefix, so "Sun" and a label Sun never collide.
const constKeyPrefix = "\""

// parser holds the token cursor, the graph under construction, and the
// scope stack (one frame per open context, frame 0 = sheet).
type parser struct {
	toks   []token
	pos    int
	g      *egi.Graph
	scopes []map[string]egi.ElementID
}

func (p *parser) peek() token  { return p.toks[p.pos] }
func (p *parser) peek2() token { return p.toks[min(p.pos+1, len(p.toks)-1)] }
func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tEOF {
		p.pos++
	}

	return t
}

// errAt wraps a sentinel with the token's source position.
func errAt(t token, sentinel error, format string, args ...any) error {
	return fmt.Errorf("egif: %d:%d: %s: %w", t.line, t.col, fmt.Sprintf(format, args...), sentinel)
}

// pushScope opens a fresh label frame; popScope closes it.
func (p *parser) pushScope() {
	p.scopes = append(p.scopes, make(map[string]egi.ElementID))
}
func (p *parser) popScope() { p.scopes = p.scopes[:len(p.scopes)-1] }

// resolve walks the scope stack innermost-out.
func (p *parser) resolve(key string) (egi.ElementID, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if id, ok := p.scopes[i][key]; ok {
			return id, true
		}
	}

	return "", false
}

// isScrollKeyword reports a bare "if"/"then" keyword (case-insensitive).
func isScrollKeyword(t token, kw string) bool {
	return t.kind == tName && strings.EqualFold(t.text, kw)
}

// looksLikeScroll reports whether the bracket opening at the cursor is
// an [If ... [Then ...]] scroll. A coreference bracket over a bound
// label spelled "if" has no [Then sub-bracket, so the keyword alone is
// not enough: a direct [Then child must follow before this bracket
// closes.
func (p *parser) looksLikeScroll() bool {
	if !isScrollKeyword(p.peek2(), "if") {
		return false
	}
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch t := p.toks[i]; t.kind {
		case tLBrack, tTildeBrack:
			depth++
			if depth == 2 && t.kind == tLBrack && isScrollKeyword(p.toks[min(i+1, len(p.toks)-1)], "then") {
				return true
			}
		case tRBrack:
			if depth--; depth == 0 {
				return false
			}
		case tEOF:
			return false
		}
	}

	return false
}

// parseItems parses items into ctx until the stop token is next.
// The stop token itself is left for the caller.
func (p *parser) parseItems(ctx egi.ElementID, stop tokenKind) error {
	for {
		t := p.peek()
		if t.kind == stop {
			return nil
		}
		if t.kind == tEOF {
			return errAt(t, ErrSyntax, "unexpected end of input, unclosed bracket")
		}
		if err := p.parseOne(ctx); err != nil {
			return err
		}
	}
}

// parseOne parses exactly one item (relation, negation, coreference
// bracket, or scroll) into ctx.
func (p *parser) parseOne(ctx egi.ElementID) error {
	t := p.peek()
	switch t.kind {
	case tLParen:
		return p.parseRelation(ctx)
	case tTildeBrack:
		return p.parseNegation(ctx)
	case tLBrack:
		if p.looksLikeScroll() {
			return p.parseScroll(ctx)
		}

		return p.parseCoreference(ctx)
	default:
		return errAt(t, ErrSyntax, "unexpected token %q", t.text)
	}
}

// argVertex turns one argument token into a vertex id, honoring the
// defining/bound/constant rules.
func (p *parser) argVertex(ctx egi.ElementID, t token) (egi.ElementID, error) {
	switch t.kind {
	case tDefining:
		if _, visible := p.resolve(t.text); visible {
			return "", errAt(t, ErrDuplicateLabel, "label %q is already defined", t.text)
		}
		g, id, err := p.g.AddVertex(ctx, t.text, egi.Generic)
		if err != nil {
			return "", err
		}
		p.g = g
		p.scopes[len(p.scopes)-1][t.text] = id

		return id, nil

	case tName:
		id, ok := p.resolve(t.text)
		if !ok {
			return "", errAt(t, ErrUndefinedLabel, "label %q is not defined here or in any enclosing context", t.text)
		}

		return id, nil

	case tString:
		key := constKeyPrefix + t.text
		if id, ok := p.resolve(key); ok {
			return id, nil
		}
		g, id, err := p.g.AddVertex(ctx, t.text, egi.Constant)
		if err != nil {
			return "", err
		}
		p.g = g
		p.scopes[len(p.scopes)-1][key] = id

		return id, nil

	default:
		return "", errAt(t, ErrSyntax, "expected a label, *label, or \"name\", got %q", t.text)
	}
}

// parseRelation parses "(" name { arg } ")" into ctx.
func (p *parser) parseRelation(ctx egi.ElementID) error {
	p.next() // consume '('
	nameTok := p.next()
	if nameTok.kind != tName {
		return errAt(nameTok, ErrSyntax, "expected a relation name after '('")
	}

	var args []egi.ElementID
	for {
		t := p.peek()
		if t.kind == tRParen {
			p.next()
			break
		}
		if t.kind == tEOF {
			return errAt(t, ErrSyntax, "unclosed relation %q", nameTok.text)
		}
		id, err := p.argVertex(ctx, p.next())
		if err != nil {
			return err
		}
		args = append(args, id)
	}

	g, _, err := p.g.AddEdge(ctx, nameTok.text, args...)
	if err != nil {
		return fmt.Errorf("egif: %d:%d: relation %q: %w", nameTok.line, nameTok.col, nameTok.text, err)
	}
	p.g = g

	return nil
}

// parseNegation parses "~[" { item } "]" as one child cut of ctx.
func (p *parser) parseNegation(ctx egi.ElementID) error {
	open := p.next() // consume '~['
	g, cut, err := p.g.AddCut(ctx)
	if err != nil {
		return err
	}
	p.g = g
	p.pushScope()
	if err = p.parseItems(cut, tRBrack); err != nil {
		return err
	}
	p.popScope()
	if closeTok := p.next(); closeTok.kind != tRBrack {
		return errAt(open, ErrSyntax, "unclosed cut")
	}

	return nil
}

// parseCoreference parses "[" arg { arg } "]" as one ligature: identity
// edges link the first listed vertex to each later one.
func (p *parser) parseCoreference(ctx egi.ElementID) error {
	open := p.next() // consume '['
	var ids []egi.ElementID
	for {
		t := p.peek()
		if t.kind == tRBrack {
			p.next()
			break
		}
		if t.kind == tEOF {
			return errAt(open, ErrSyntax, "unclosed coreference bracket")
		}
		id, err := p.argVertex(ctx, p.next())
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return errAt(open, ErrSyntax, "empty coreference bracket")
	}

	for _, other := range ids[1:] {
		g, _, err := p.g.AddEdge(ctx, egi.IdentityName, ids[0], other)
		if err != nil {
			return fmt.Errorf("egif: %d:%d: coreference: %w", open.line, open.col, err)
		}
		p.g = g
	}

	return nil
}

// parseScroll parses "[" "If" { item } "[" "Then" { item } "]" "]" as a
// double cut: an outer cut holding the antecedent and one inner cut
// holding the consequent.
func (p *parser) parseScroll(ctx egi.ElementID) error {
	open := p.next() // consume '['
	p.next()         // consume 'If'

	g, outer, err := p.g.AddCut(ctx)
	if err != nil {
		return err
	}
	p.g = g
	p.pushScope()

	// Antecedent items, up to the [Then ...] bracket.
	for {
		t := p.peek()
		if t.kind == tLBrack && isScrollKeyword(p.peek2(), "then") {
			break
		}
		if t.kind == tRBrack || t.kind == tEOF {
			return errAt(open, ErrSyntax, "scroll without [Then ...] part")
		}
		if err = p.parseOne(outer); err != nil {
			return err
		}
	}

	p.next() // consume '['
	p.next() // consume 'Then'
	g, inner, err := p.g.AddCut(outer)
	if err != nil {
		return err
	}
	p.g = g
	p.pushScope()
	if err = p.parseItems(inner, tRBrack); err != nil {
		return err
	}
	p.next() // consume ']' closing Then
	p.popScope()

	if closeTok := p.next(); closeTok.kind != tRBrack {
		return errAt(closeTok, ErrSyntax, "scroll not closed after [Then ...]")
	}
	p.popScope()

	return nil
}
