package strategy

import (
	"fmt"
	"strconv"
)

type parser struct {
	lex *lexer
	tok token
}

// Parse parses strategy text against table and returns an immutable tree.
// table supplies the method/parameter/feature names the grammar may
// reference; nested `strat`-typed parameters switch to their own
// ParamDescriptor.SubTable for the remainder of that sub-strategy.
func Parse(table *Table, text string) (*Node, error) {
	if isBlank(text) {
		return nil, ErrEmptyText
	}
	p := &parser{lex: newLexer(text)}
	p.advance()
	node, err := p.parseStrategy(table)
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: trailing input near %q", ErrSyntax, p.tok.text)
	}
	return node, nil
}

func (p *parser) advance() { p.tok = p.lex.next() }

func (p *parser) expect(k tokenKind) (token, error) {
	if p.tok.kind != k {
		return token{}, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.tok.text)
	}
	t := p.tok
	p.advance()
	return t, nil
}

// parseStrategy := term (';' term)*
func (p *parser) parseStrategy(table *Table) (*Node, error) {
	left, err := p.parseTerm(table)
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokSemi {
		p.advance()
		right, err := p.parseTerm(table)
		if err != nil {
			return nil, err
		}
		left = &Node{Tag: TagConcat, Children: []*Node{left, right}}
	}
	return left, nil
}

func (p *parser) parseTerm(table *Table) (*Node, error) {
	if p.tok.kind == tokLParen {
		p.advance()
		n, err := p.parseStrategy(table)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return n, nil
	}
	if p.tok.kind != tokIdent {
		return nil, fmt.Errorf("%w: expected a term, got %q", ErrSyntax, p.tok.text)
	}
	switch p.tok.text {
	case "empty":
		p.advance()
		return &Node{Tag: TagEmpty}, nil
	case "cond":
		return p.parseCond(table)
	case "select":
		return p.parseSelect(table)
	default:
		return p.parseMethod(table)
	}
}

func (p *parser) parseCond(table *Table) (*Node, error) {
	p.advance() // "cond"
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	expr, err := p.parseOr(table)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma); err != nil {
		return nil, err
	}
	thenNode, err := p.parseStrategy(table)
	if err != nil {
		return nil, err
	}
	children := []*Node{thenNode}
	if p.tok.kind == tokComma {
		p.advance()
		elseNode, err := p.parseStrategy(table)
		if err != nil {
			return nil, err
		}
		children = append(children, elseNode)
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return &Node{Tag: TagCond, Test: expr, Children: children}, nil
}

func (p *parser) parseSelect(table *Table) (*Node, error) {
	p.advance() // "select"
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	s1, err := p.parseStrategy(table)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma); err != nil {
		return nil, err
	}
	s2, err := p.parseStrategy(table)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return &Node{Tag: TagSelect, Children: []*Node{s1, s2}}, nil
}

func (p *parser) parseOr(table *Table) (CondExpr, error) {
	left, err := p.parseAnd(table)
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPipe {
		p.advance()
		right, err := p.parseAnd(table)
		if err != nil {
			return nil, err
		}
		left = &orExpr{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd(table *Table) (CondExpr, error) {
	left, err := p.parseCmp(table)
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokAmp {
		p.advance()
		right, err := p.parseCmp(table)
		if err != nil {
			return nil, err
		}
		left = &andExpr{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseCmp(table *Table) (CondExpr, error) {
	if p.tok.kind == tokLParen {
		// Could be a parenthesized sub-expression or a "(feature op num)" leaf;
		// try leaf first since that's the common case, falling back to a
		// general parenthesized or-expression.
		save := *p.lex
		saveTok := p.tok
		p.advance()
		if p.tok.kind == tokIdent {
			feature := p.tok.text
			p.advance()
			if p.tok.kind == tokOp {
				op, ok := opFromText(p.tok.text)
				if !ok {
					return nil, fmt.Errorf("%w: bad operator %q", ErrSyntax, p.tok.text)
				}
				p.advance()
				numTok, err := p.expect(tokNumber)
				if err != nil {
					return nil, err
				}
				val, err := strconv.ParseFloat(numTok.text, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: bad constant %q", ErrSyntax, numTok.text)
				}
				if _, err := p.expect(tokRParen); err != nil {
					return nil, err
				}
				if table != nil && len(table.Features) > 0 && !table.Features[feature] {
					return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, feature)
				}
				return &cmpExpr{feature: feature, op: op, constant: val}, nil
			}
		}
		// Not a leaf: rewind and parse a general parenthesized expression.
		*p.lex = save
		p.tok = saveTok
		p.advance()
		inner, err := p.parseOr(table)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, fmt.Errorf("%w: expected '(' in condition", ErrSyntax)
}

func (p *parser) parseMethod(table *Table) (*Node, error) {
	name := p.tok.text
	p.advance()
	entry, ok := table.Methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in table %q", ErrUnknownMethod, name, table.Name)
	}
	params := newParamRecord(entry.DefaultParams)
	descs := table.Params[name]

	if p.tok.kind == tokLParen {
		p.advance()
		for p.tok.kind != tokRParen {
			if err := p.parseParamAssignment(table, params, descs); err != nil {
				return nil, err
			}
			if p.tok.kind == tokComma {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
	}
	return &Node{Tag: TagMethod, Method: name, Params: params}, nil
}

func (p *parser) parseParamAssignment(table *Table, params any, descs []ParamDescriptor) error {
	if p.tok.kind != tokIdent {
		return fmt.Errorf("%w: expected parameter name", ErrSyntax)
	}
	name := p.tok.text
	p.advance()
	// The lexer emits a lone '=' as tokOp (the same token a cmp's "="
	// operator uses), so that is what separates a name from its value.
	if p.tok.kind != tokOp || p.tok.text != "=" {
		return fmt.Errorf("%w: expected '=' after %q", ErrSyntax, name)
	}
	p.advance()
	var desc *ParamDescriptor
	for i := range descs {
		if descs[i].Name == name {
			desc = &descs[i]
			break
		}
	}
	if desc == nil {
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	switch desc.Type {
	case ParamInt:
		tok, err := p.expect(tokNumber)
		if err != nil {
			return err
		}
		iv, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParamType, tok.text)
		}
		return desc.Set(params, iv)
	case ParamDouble:
		tok, err := p.expect(tokNumber)
		if err != nil {
			return err
		}
		fv, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrParamType, tok.text)
		}
		return desc.Set(params, fv)
	case ParamCase:
		var tok token
		var err error
		if p.tok.kind == tokString {
			tok = p.tok
			p.advance()
		} else {
			tok, err = p.expect(tokIdent)
			if err != nil {
				return err
			}
		}
		return desc.Set(params, tok.text)
	case ParamStrat:
		sub := desc.SubTable
		if sub == nil {
			sub = table // a nil sub-table inherits the caller's table
		}
		node, err := p.parseStrategy(sub)
		if err != nil {
			return err
		}
		return desc.Set(params, node)
	default:
		return fmt.Errorf("%w: unknown parameter type for %q", ErrParamType, name)
	}
}
