package synparse

import (
	"math/big"

	"github.com/lunalang/luna/internal/errors"
	"github.com/lunalang/luna/internal/term"
)

// Parse reads the serialized term form from input: an atom, optionally
// followed by one or more `[...]` argument lists (so `f[x][y]` parses as
// Compound(Compound(f, x), y), per spec.md section 3's "head is arbitrary"
// invariant). Trailing input after the term is an error.
func Parse(input string) (term.Term, error) {
	p := &parser{lex: newLexer(input)}
	if err := p.advance(); err != nil {
		return term.Term{}, err
	}
	t, err := p.parseTerm()
	if err != nil {
		return term.Term{}, err
	}
	if p.cur.kind != tokEOF {
		return term.Term{}, errors.NewParseErrorf(&p.cur.pos, "unexpected trailing input %q", p.cur.text)
	}
	return t, nil
}

// Display renders t in the same serialized form Parse accepts, so that
// Parse(Display(t)) == t for every round-trippable term (spec.md section
// 8's round-trip law). Term.String already implements exactly this form;
// Display is the public name matching spec.md section 6's "display"
// vocabulary.
func Display(t term.Term) string {
	return t.String()
}

type parser struct {
	lex *lexer
	cur token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) expect(kind tokenKind, what string) error {
	if p.cur.kind != kind {
		return errors.NewParseErrorf(&p.cur.pos, "expected %s", what)
	}
	return p.advance()
}

// parseTerm parses one atom and then zero or more `[args]` suffixes,
// left-associating so that `f[x][y]` builds Compound(Compound(f,x), y).
func (p *parser) parseTerm() (term.Term, error) {
	t, err := p.parseAtom()
	if err != nil {
		return term.Term{}, err
	}
	for p.cur.kind == tokLBracket {
		if err := p.advance(); err != nil {
			return term.Term{}, err
		}
		elements, err := p.parseArgList()
		if err != nil {
			return term.Term{}, err
		}
		t = term.NewCompound(t, elements...)
	}
	return t, nil
}

// parseArgList parses the comma-separated elements up to (and consuming)
// the closing `]`. An empty list (`f[]`) is legal.
func (p *parser) parseArgList() ([]term.Term, error) {
	var elements []term.Term
	if p.cur.kind == tokRBracket {
		return nil, p.advance()
	}
	for {
		e, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
		switch p.cur.kind {
		case tokComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokRBracket:
			return elements, p.advance()
		default:
			return nil, errors.NewParseErrorf(&p.cur.pos, "expected ',' or ']'")
		}
	}
}

func (p *parser) parseAtom() (term.Term, error) {
	tok := p.cur
	switch tok.kind {
	case tokString:
		if err := p.advance(); err != nil {
			return term.Term{}, err
		}
		return term.NewString(tok.text), nil
	case tokSymbol:
		if err := p.advance(); err != nil {
			return term.Term{}, err
		}
		return term.Sym(tok.text), nil
	case tokNumber:
		if err := p.advance(); err != nil {
			return term.Term{}, err
		}
		if tok.isReal {
			f, ok := new(big.Float).SetPrec(256).SetString(tok.text)
			if !ok {
				return term.Term{}, errors.NewParseErrorf(&tok.pos, "malformed real literal %q", tok.text)
			}
			return term.NewRealTerm(term.NewReal(f)), nil
		}
		i, ok := new(big.Int).SetString(tok.text, 10)
		if !ok {
			return term.Term{}, errors.NewParseErrorf(&tok.pos, "malformed integer literal %q", tok.text)
		}
		return term.NewInteger(i), nil
	default:
		return term.Term{}, errors.NewParseErrorf(&tok.pos, "expected a term")
	}
}
