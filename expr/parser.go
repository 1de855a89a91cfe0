package expr

// parser is a recursive-descent parser over a token slice.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return t, syntaxErrorf(t.pos, "expected %s, found %s", kind, t)
	}
	return p.advance(), nil
}

// parseExpr parses a sum of terms.
func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.kind, left: left, right: right}
	}
}

// parseTerm parses a product of unary expressions.
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokStar && t.kind != tokSlash {
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.kind, left: left, right: right}
	}
}

// parseUnary parses leading signs.
func (p *parser) parseUnary() (node, error) {
	t := p.peek()
	switch t.kind {
	case tokMinus:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negNode{operand: operand}, nil
	case tokPlus:
		p.advance()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower parses a primary with an optional right-associative exponent.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokCaret {
		return base, nil
	}
	p.advance()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: tokCaret, left: base, right: exp}, nil
}

// parsePrimary parses numbers, identifiers, calls and parenthesised
// expressions.
func (p *parser) parsePrimary() (node, error) {
	t := p.advance()
	switch t.kind {
	case tokNumber:
		return numNode(t.num), nil

	case tokIdent:
		return p.parseIdent(t)

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, syntaxErrorf(t.pos, "unexpected %s", t)
}

func (p *parser) parseIdent(t token) (node, error) {
	if t.text == Variable {
		return varNode{}, nil
	}
	if v, ok := constants[t.text]; ok {
		return numNode(v), nil
	}
	fn, ok := functions[t.text]
	if !ok {
		return nil, unknownIdentifier(t.pos, t.text)
	}
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return callNode{name: t.text, fn: fn, arg: arg}, nil
}
