// Package clif: the CLIF parser.
package clif

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/peirce/egi"
)

// constant names share scope frames with variables under a quote
// prefix, so "Sun" and a variable sun never collide.
const constKeyPrefix = "\""

// Parse builds a Document (Graph plus verbatim header metadata) from
// one CLIF text.
// Returns ErrSyntax, ErrUndefinedLabel, or ErrDuplicateLabel, each
// wrapped with the offending line:column.
// Complexity: O(n) tokens, O(n·(V+E)) graph construction.
func Parse(src string) (*Document, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{
		src:    src,
		toks:   toks,
		g:      egi.New(),
		scopes: []map[string]egi.ElementID{make(map[string]egi.ElementID)},
	}
	doc := &Document{}

	for p.peek().kind != tEOF {
		t := p.peek()
		if t.kind != tLParen {
			return nil, errAt(t, ErrSyntax, "expected '(', got %q", t.text)
		}
		head := p.peek2()
		if head.kind == tSymbol && strings.HasPrefix(head.text, "cl:") {
			meta, metaErr := p.captureHeader()
			if metaErr != nil {
				return nil, metaErr
			}
			doc.Header = append(doc.Header, meta)

			continue
		}
		if err = p.parseSentence(egi.Sheet); err != nil {
			return nil, err
		}
	}
	doc.Graph = p.g

	return doc, nil
}

// parser holds the token cursor, the graph under construction, and the
// scope stack (one frame per open quantifier or cut).
type parser struct {
	src    string
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
	return fmt.Errorf("clif: %d:%d: %s: %w", t.line, t.col, fmt.Sprintf(format, args...), sentinel)
}

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

// captureHeader consumes one (cl:...) form and returns it verbatim.
// Only cl:comment and cl:imports are recognized, at top level only.
func (p *parser) captureHeader() (Meta, error) {
	open := p.next() // consume '('
	head := p.next()

	var kind MetaKind
	switch head.text {
	case "cl:comment":
		kind = MetaComment
	case "cl:imports":
		kind = MetaImports
	default:
		return Meta{}, errAt(head, ErrSyntax, "unknown header form %q", head.text)
	}

	// Scan to the matching close paren; the Text is the raw byte span.
	depth := 1
	var closeTok token
	for depth > 0 {
		t := p.next()
		switch t.kind {
		case tLParen:
			depth++
		case tRParen:
			depth--
			closeTok = t
		case tEOF:
			return Meta{}, errAt(open, ErrSyntax, "unclosed %s form", head.text)
		}
	}

	return Meta{Kind: kind, Text: p.src[open.start:closeTok.end]}, nil
}

// parseSentence parses one sentence into ctx.
func (p *parser) parseSentence(ctx egi.ElementID) error {
	open := p.next()
	if open.kind != tLParen {
		return errAt(open, ErrSyntax, "expected '(', got %q", open.text)
	}
	head := p.next()
	if head.kind != tSymbol {
		return errAt(head, ErrSyntax, "expected an operator or relation name")
	}

	switch strings.ToLower(head.text) {
	case "and":
		return p.parseBody(ctx)

	case "not":
		g, cut, err := p.g.AddCut(ctx)
		if err != nil {
			return err
		}
		p.g = g
		p.pushScope()
		if err = p.parseSentence(cut); err != nil {
			return err
		}
		p.popScope()
		if t := p.next(); t.kind != tRParen {
			return errAt(t, ErrSyntax, "not takes exactly one sentence")
		}

		return nil

	case "or":
		// ¬(¬A ∧ ¬B ∧ ...): one outer cut, one inner cut per disjunct.
		g, outer, err := p.g.AddCut(ctx)
		if err != nil {
			return err
		}
		p.g = g
		p.pushScope()
		for p.peek().kind != tRParen {
			if p.peek().kind == tEOF {
				return errAt(open, ErrSyntax, "unclosed or")
			}
			var inner egi.ElementID
			if g, inner, err = p.g.AddCut(outer); err != nil {
				return err
			}
			p.g = g
			p.pushScope()
			if err = p.parseSentence(inner); err != nil {
				return err
			}
			p.popScope()
		}
		p.next() // consume ')'
		p.popScope()

		return nil

	case "exists":
		if err := p.parseVars(ctx); err != nil {
			return err
		}
		if err := p.parseBody(ctx); err != nil {
			return err
		}
		p.popScope()

		return nil

	case "forall":
		// ¬∃vars¬body: vars live in the outer cut, body in the inner.
		g, outer, err := p.g.AddCut(ctx)
		if err != nil {
			return err
		}
		p.g = g
		if err = p.parseVars(outer); err != nil {
			return err
		}
		var inner egi.ElementID
		if g, inner, err = p.g.AddCut(outer); err != nil {
			return err
		}
		p.g = g
		if err = p.parseBody(inner); err != nil {
			return err
		}
		p.popScope()

		return nil

	case "cl:comment", "cl:imports":
		return errAt(head, ErrSyntax, "%s is only legal at top level", head.text)

	case egi.IdentityName:
		a, err := p.term(ctx)
		if err != nil {
			return err
		}
		b, err := p.term(ctx)
		if err != nil {
			return err
		}
		if t := p.next(); t.kind != tRParen {
			return errAt(t, ErrSyntax, "= takes exactly two terms")
		}
		g, _, err := p.g.AddEdge(ctx, egi.IdentityName, a, b)
		if err != nil {
			return err
		}
		p.g = g

		return nil

	default:
		// Atomic sentence: relation applied to terms.
		var args []egi.ElementID
		for p.peek().kind != tRParen {
			if p.peek().kind == tEOF {
				return errAt(open, ErrSyntax, "unclosed atom %q", head.text)
			}
			id, err := p.term(ctx)
			if err != nil {
				return err
			}
			args = append(args, id)
		}
		p.next() // consume ')'
		g, _, err := p.g.AddEdge(ctx, head.text, args...)
		if err != nil {
			return fmt.Errorf("clif: %d:%d: atom %q: %w", head.line, head.col, head.text, err)
		}
		p.g = g

		return nil
	}
}

// parseBody parses sentences until the enclosing ')', an implicit
// conjunction.
func (p *parser) parseBody(ctx egi.ElementID) error {
	for {
		t := p.peek()
		if t.kind == tRParen {
			p.next()
			return nil
		}
		if t.kind == tEOF {
			return errAt(t, ErrSyntax, "unexpected end of input")
		}
		if err := p.parseSentence(ctx); err != nil {
			return err
		}
	}
}

// parseVars parses a quantifier's "(" { variable } ")" list, creates
// one generic vertex per variable in ctx, and pushes their scope frame
// (the caller pops it after the body).
func (p *parser) parseVars(ctx egi.ElementID) error {
	open := p.next()
	if open.kind != tLParen {
		return errAt(open, ErrSyntax, "expected a variable list")
	}
	p.pushScope()
	for {
		t := p.next()
		if t.kind == tRParen {
			return nil
		}
		if t.kind != tSymbol {
			return errAt(t, ErrSyntax, "expected a variable name, got %q", t.text)
		}
		if _, visible := p.resolve(t.text); visible {
			return errAt(t, ErrDuplicateLabel, "variable %q is already bound", t.text)
		}
		g, id, err := p.g.AddVertex(ctx, t.text, egi.Generic)
		if err != nil {
			return err
		}
		p.g = g
		p.scopes[len(p.scopes)-1][t.text] = id
	}
}

// term consumes one term and returns its vertex id. Quoted strings and
// capitalized symbols are constants (bound to a visible constant of the
// same name, or created in ctx); lower-case symbols must resolve to a
// bound variable.
func (p *parser) term(ctx egi.ElementID) (egi.ElementID, error) {
	t := p.next()
	switch t.kind {
	case tString:
		return p.constant(ctx, t.text)
	case tSymbol:
		if id, ok := p.resolve(t.text); ok {
			return id, nil
		}
		first := []rune(t.text)[0]
		if unicode.IsUpper(first) || unicode.IsDigit(first) {
			return p.constant(ctx, t.text)
		}

		return "", errAt(t, ErrUndefinedLabel, "variable %q is not bound by any visible quantifier", t.text)
	default:
		return "", errAt(t, ErrSyntax, "expected a term, got %q", t.text)
	}
}

// constant binds name to a visible constant vertex or creates one in ctx.
func (p *parser) constant(ctx egi.ElementID, name string) (egi.ElementID, error) {
	key := constKeyPrefix + name
	if id, ok := p.resolve(key); ok {
		return id, nil
	}
	g, id, err := p.g.AddVertex(ctx, name, egi.Constant)
	if err != nil {
		return "", err
	}
	p.g = g
	p.scopes[len(p.scopes)-1][key] = id

	return id, nil
}
