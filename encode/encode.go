package encode

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/liveview-native/core-go/dom"
)

type EncState struct {
	depth, indent int
	compact       bool

	Color func(dom.Type, ColorAttr, string) string
}

// Encode writes the subtree at ref to w. Encoding the root writes each
// top level node in turn.
func Encode(doc *dom.Document, ref dom.NodeRef, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	node, err := doc.Lookup(ref)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if node.Type != dom.RootType {
		if err := encode(doc, ref, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	}
	kids, _ := doc.Children(ref)
	for i, kid := range kids {
		if err := encode(doc, kid, w, es); err != nil {
			return err
		}
		if !es.compact || i == len(kids)-1 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func encode(doc *dom.Document, ref dom.NodeRef, w io.Writer, es *EncState) error {
	node := doc.Get(ref)
	switch node.Type {
	case dom.LeafType:
		if err := writeIndent(w, es); err != nil {
			return err
		}
		return writeString(w, es.color(dom.LeafType, TextColor, html.EscapeString(node.Text)))
	case dom.ElementType:
		return encodeElement(doc, ref, &node, w, es)
	default:
		return fmt.Errorf("%w: %s cannot be nested at %s", ErrEncoding, node.Type, ref)
	}
}

func encodeElement(doc *dom.Document, ref dom.NodeRef, node *dom.Node, w io.Writer, es *EncState) error {
	if err := writeIndent(w, es); err != nil {
		return err
	}
	if err := writeString(w, es.sep("<")+es.name(node.Name)); err != nil {
		return err
	}
	for i := range node.Attributes {
		if err := writeAttr(w, &node.Attributes[i], es); err != nil {
			return err
		}
	}
	kids, _ := doc.Children(ref)
	if len(kids) == 0 {
		return writeString(w, es.sep("/>"))
	}
	if err := writeString(w, es.sep(">")); err != nil {
		return err
	}
	es.depth++
	for _, kid := range kids {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(doc, kid, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	if err := writeIndent(w, es); err != nil {
		return err
	}
	return writeString(w, es.sep("</")+es.name(node.Name)+es.sep(">"))
}

func writeAttr(w io.Writer, a *dom.Attribute, es *EncState) error {
	s := " " + es.color(dom.ElementType, AttrNameColor, a.Name.String())
	if a.Value != nil {
		s += es.sep("=") + es.color(dom.ElementType, AttrValueColor, `"`+html.EscapeString(*a.Value)+`"`)
	}
	return writeString(w, s)
}

func (es *EncState) name(n dom.Name) string {
	local := es.color(dom.ElementType, TagColor, n.Local)
	if n.Namespace == "" {
		return local
	}
	return es.color(dom.ElementType, NamespaceColor, n.Namespace) + es.sep(":") + local
}

func (es *EncState) sep(s string) string {
	return es.color(dom.ElementType, SepColor, s)
}

func (es *EncState) color(t dom.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n")
}

func writeIndent(w io.Writer, es *EncState) error {
	if es.compact || es.depth == 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
