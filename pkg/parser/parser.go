// Package parser builds expression trees from algebraic text with
// operator-precedence parsing driven by the ops table.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/wildfunctions/algebra/pkg/expr"
	"github.com/wildfunctions/algebra/pkg/lexer"
	"github.com/wildfunctions/algebra/pkg/ops"
)

// ErrSyntax matches every *SyntaxError.
var ErrSyntax = errors.New("parser: syntax error")

// ErrorKind classifies a syntax error.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEnd
	UnmatchedParen
	TrailingGarbage
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedToken: "unexpected token",
	UnexpectedEnd:   "unexpected end of input",
	UnmatchedParen:  "unmatched parenthesis",
	TrailingGarbage: "trailing garbage",
}

func (k ErrorKind) String() string { return errorKindNames[k] }

// SyntaxError reports the first malformed construct in the input.
type SyntaxError struct {
	Kind  ErrorKind
	Token string // offending token, empty at end of input
	Pos   int    // byte offset of Token
}

func (e *SyntaxError) Error() string {
	if e.Kind == UnexpectedEnd {
		return "parser: " + e.Kind.String()
	}
	return fmt.Sprintf("parser: %s %q at offset %d", e.Kind, e.Token, e.Pos)
}

// Is makes errors.Is(err, ErrSyntax) hold for any syntax error.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

type parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse parses text into a single expression tree. Parsing stops at the
// first error and no partial tree is returned.
func Parse(text string) (expr.Expr, error) {
	return ParseTokens(lexer.Tokenize(text))
}

// ParseTokens parses an already tokenized input.
func ParseTokens(tokens []lexer.Token) (expr.Expr, error) {
	p := &parser{tokens: tokens}
	e, err := p.parseSubexpr(expr.MaxPrecedence)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, p.errorf(TrailingGarbage, tok)
	}
	return e, nil
}

// MustParse is like Parse but panics on error. It is meant for literals in
// tests and program setup.
func MustParse(text string) expr.Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) errorf(kind ErrorKind, tok lexer.Token) error {
	return &SyntaxError{Kind: kind, Token: tok.Value, Pos: tok.Pos}
}

// parsePrimary parses an identifier, a number or a parenthesized expression.
func (p *parser) parsePrimary() (expr.Expr, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &SyntaxError{Kind: UnexpectedEnd}
	}
	switch {
	case tok.Kind == lexer.Ident:
		return ops.NewIdentifier(tok.Value), nil

	case tok.Kind == lexer.Number:
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, p.errorf(UnexpectedToken, tok)
		}
		return ops.NewConstant(v), nil

	case tok.Value == "(":
		inner, err := p.parseSubexpr(expr.MaxPrecedence)
		if err != nil {
			return nil, err
		}
		if closing, ok := p.next(); !ok || closing.Value != ")" {
			return nil, p.errorf(UnmatchedParen, tok)
		}
		return inner, nil
	}
	return nil, p.errorf(UnexpectedToken, tok)
}

// parseSubexpr parses an expression whose binary operators all have
// precedence at most prec.
func (p *parser) parseSubexpr(prec int) (expr.Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &SyntaxError{Kind: UnexpectedEnd}
	}

	var left expr.Expr
	if u, isUnary := lookupUnary(tok); isUnary {
		p.pos++
		operand, err := p.parseSubexpr(u.Precedence)
		if err != nil {
			return nil, err
		}
		left = u.New(operand)
	} else {
		var err error
		if left, err = p.parsePrimary(); err != nil {
			return nil, err
		}
	}

	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		b, isBinary := lookupBinary(tok)
		if !isBinary || b.Precedence > prec {
			break
		}
		p.pos++
		// A left-associative operator may not take a same-precedence
		// operator into its right operand.
		next := b.Precedence
		if b.LeftAssoc {
			next--
		}
		right, err := p.parseSubexpr(next)
		if err != nil {
			return nil, err
		}
		left = b.New(left, right)
	}
	return left, nil
}

func lookupUnary(tok lexer.Token) (ops.Unary, bool) {
	if tok.Kind != lexer.Operator {
		return ops.Unary{}, false
	}
	return ops.LookupUnary(tok.Value)
}

func lookupBinary(tok lexer.Token) (ops.Binary, bool) {
	if tok.Kind != lexer.Operator {
		return ops.Binary{}, false
	}
	return ops.LookupBinary(tok.Value)
}
