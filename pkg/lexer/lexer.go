// Package lexer splits algebraic text into tokens.
//
// Rules are tried in order: identifiers, numbers, then single-character
// operators. Whitespace and any character no rule accepts are skipped.
package lexer

import (
	"fmt"

	plex "github.com/alecthomas/participle/v2/lexer"
)

// Kind identifies the lexical class of a token.
type Kind int

const (
	Ident Kind = iota
	Number
	Operator
)

var kindNames = map[Kind]string{
	Ident:    "ident",
	Number:   "number",
	Operator: "operator",
}

func (k Kind) String() string { return kindNames[k] }

// Token is one lexical token with its byte offset in the input.
type Token struct {
	Kind  Kind
	Value string
	Pos   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Value, t.Pos)
}

var definition = plex.MustSimple([]plex.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9]*`},
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]*)?(?:[eE][+-]?[0-9]+)?`},
	{Name: "Operator", Pattern: `[-+*/^()=]`},
	{Name: "Skip", Pattern: `[\s\S]`},
})

var kinds = func() map[plex.TokenType]Kind {
	sym := definition.Symbols()
	return map[plex.TokenType]Kind{
		sym["Ident"]:    Ident,
		sym["Number"]:   Number,
		sym["Operator"]: Operator,
	}
}()

// Tokenize returns the tokens of text in order. It never fails: characters
// that start no token are dropped.
func Tokenize(text string) []Token {
	lex, err := definition.LexString("", text)
	if err != nil {
		return nil
	}
	var out []Token
	for {
		tok, err := lex.Next()
		if err != nil || tok.EOF() {
			return out
		}
		kind, ok := kinds[tok.Type]
		if !ok {
			continue
		}
		out = append(out, Token{Kind: kind, Value: tok.Value, Pos: tok.Pos.Offset})
	}
}
