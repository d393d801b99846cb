package token

import (
	"fmt"
)

type TokenType int

const (
	TText TokenType = iota
	TStartTag
	TEndTag
	TSelfClosing
	TComment
	TDirective
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TText:        "TText",
		TStartTag:    "TStartTag",
		TEndTag:      "TEndTag",
		TSelfClosing: "TSelfClosing",
		TComment:     "TComment",
		TDirective:   "TDirective",
	}[t]
}

// Attr is an attribute of a start or self-closing tag. Value is unescaped;
// HasValue is false for bare attributes such as <input disabled>.
type Attr struct {
	Name     string
	Value    string
	HasValue bool
	Pos      *Pos
}

type Token struct {
	Type TokenType
	Pos  *Pos

	// Name is set for tag tokens.
	Name  string
	Attrs []Attr

	// Text is the unescaped character data of TText tokens and the raw
	// body of comments and directives.
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TStartTag, TSelfClosing:
		return "<" + t.Name + ">"
	case TEndTag:
		return "</" + t.Name + ">"
	default:
		return fmt.Sprintf("%s(%q)", t.Type, t.Text)
	}
}
