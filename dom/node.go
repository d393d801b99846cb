package dom

import (
	"fmt"
	"slices"
)

type Type uint8

const (
	RootType Type = iota
	ElementType
	LeafType
)

func Types() []Type {
	return []Type{RootType, ElementType, LeafType}
}

func (t Type) String() string {
	switch t {
	case RootType:
		return "Root"
	case ElementType:
		return "Element"
	case LeafType:
		return "Leaf"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Name is a qualified name. An empty Namespace means no namespace.
type Name struct {
	Namespace string
	Local     string
}

func (n Name) String() string {
	if n.Namespace == "" {
		return n.Local
	}
	return n.Namespace + ":" + n.Local
}

type Attribute struct {
	Name  Name
	Value *string
}

func NewAttribute(name Name, value string) Attribute {
	return Attribute{Name: name, Value: &value}
}

// BareAttribute is an attribute written without a value, as in
// <input disabled>.
func BareAttribute(name Name) Attribute {
	return Attribute{Name: name}
}

func (a Attribute) ValueString() string {
	if a.Value == nil {
		return ""
	}
	return *a.Value
}

func (a Attribute) Clone() Attribute {
	res := Attribute{Name: a.Name}
	if a.Value != nil {
		v := *a.Value
		res.Value = &v
	}
	return res
}

func (a Attribute) Equal(b Attribute) bool {
	if a.Name != b.Name {
		return false
	}
	if (a.Value == nil) != (b.Value == nil) {
		return false
	}
	return a.Value == nil || *a.Value == *b.Value
}

func AttributesEqual(a, b []Attribute) bool {
	return slices.EqualFunc(a, b, Attribute.Equal)
}

// Node is a tagged union over the node variants; Type selects the
// meaningful fields.
type Node struct {
	Type Type

	Text string

	Name       Name
	Attributes []Attribute
}

func Root() Node {
	return Node{Type: RootType}
}

func Leaf(text string) Node {
	return Node{Type: LeafType, Text: text}
}

func Element(name Name, attrs ...Attribute) Node {
	return Node{Type: ElementType, Name: name, Attributes: attrs}
}

func (n Node) Clone() Node {
	res := n
	if n.Attributes != nil {
		res.Attributes = make([]Attribute, len(n.Attributes))
		for i := range n.Attributes {
			res.Attributes[i] = n.Attributes[i].Clone()
		}
	}
	return res
}

// Attr returns the value of the first attribute with the given local name
// and no namespace.
func (n Node) Attr(local string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name.Namespace == "" && a.Name.Local == local {
			return a.ValueString(), true
		}
	}
	return "", false
}

func (n Node) String() string {
	switch n.Type {
	case LeafType:
		return fmt.Sprintf("Leaf(%q)", n.Text)
	case ElementType:
		return fmt.Sprintf("Element(%s)", n.Name)
	default:
		return n.Type.String()
	}
}
