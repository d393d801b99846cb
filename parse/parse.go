// Package parse provides markup parsing into dom documents.
package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/liveview-native/core-go/debug"
	"github.com/liveview-native/core-go/dom"
	"github.com/liveview-native/core-go/token"
)

type open struct {
	ref  dom.NodeRef
	name string
	pos  *token.Pos
}

// Parse parses markup into a new document. Top level nodes become
// children of the document root; an empty input yields an empty document.
func Parse(d []byte, opts ...ParseOption) (*dom.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth < 1 {
		pOpts.maxDepth = DefaultMaxDepth
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	doc := dom.Empty()
	ed, err := doc.Edit()
	if err != nil {
		return nil, err
	}
	defer ed.Finish()

	stack := []open{{ref: doc.Root()}}
	for i := range toks {
		tok := &toks[i]
		top := stack[len(stack)-1]
		switch tok.Type {
		case token.TText:
			text := tok.Text
			if !pOpts.keepWhitespace {
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
			}
			if _, err := ed.Append(top.ref, dom.Leaf(text)); err != nil {
				return nil, err
			}
		case token.TStartTag, token.TSelfClosing:
			if len(stack) > pOpts.maxDepth {
				return nil, fmt.Errorf("%w: <%s> at %s exceeds depth %d", ErrTooDeep, tok.Name, tok.Pos, pOpts.maxDepth)
			}
			ref, err := ed.Append(top.ref, element(tok))
			if err != nil {
				return nil, err
			}
			if debug.Parse() {
				debug.Logf("parse: %s -> %s below %s\n", tok.Info(), ref, top.ref)
			}
			if tok.Type == token.TStartTag {
				stack = append(stack, open{ref: ref, name: tok.Name, pos: tok.Pos})
			}
		case token.TEndTag:
			if len(stack) == 1 {
				return nil, fmt.Errorf("%w: </%s> at %s", ErrStrayEnd, tok.Name, tok.Pos)
			}
			if top.name != tok.Name {
				return nil, fmt.Errorf("%w: </%s> at %s closes <%s> at %s", ErrMismatched, tok.Name, tok.Pos, top.name, top.pos)
			}
			stack = stack[:len(stack)-1]
		case token.TComment, token.TDirective:
		}
	}
	if len(stack) > 1 {
		top := stack[len(stack)-1]
		return nil, fmt.Errorf("%w: <%s> at %s", ErrUnclosed, top.name, top.pos)
	}
	return doc, nil
}

func ParseString(s string, opts ...ParseOption) (*dom.Document, error) {
	return Parse([]byte(s), opts...)
}

func element(tok *token.Token) dom.Node {
	attrs := make([]dom.Attribute, len(tok.Attrs))
	for i, a := range tok.Attrs {
		if a.HasValue {
			attrs[i] = dom.NewAttribute(SplitName(a.Name), a.Value)
		} else {
			attrs[i] = dom.BareAttribute(SplitName(a.Name))
		}
	}
	return dom.Element(SplitName(tok.Name), attrs...)
}

// SplitName splits "ns:local" into a qualified name. A leading or trailing
// colon is kept as part of the local name.
func SplitName(s string) dom.Name {
	i := strings.IndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return dom.Name{Local: s}
	}
	return dom.Name{Namespace: s[:i], Local: s[i+1:]}
}
