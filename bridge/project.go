package bridge

import (
	"fmt"

	"github.com/liveview-native/core-go/dom"
)

// AttributeSnapshot is a detached copy of an attribute. Namespace is ""
// when the name is unqualified; Value is nil for bare attributes.
type AttributeSnapshot struct {
	Namespace string
	Name      string
	Value     *string
}

type ElementSnapshot struct {
	Namespace  string
	Tag        string
	Attributes []AttributeSnapshot
}

// NodeSnapshot is a detached copy of one node. Text is set for leaves and
// Element for elements. Snapshots stay valid after their document is
// dropped.
type NodeSnapshot struct {
	Type    dom.Type
	Text    string
	Element *ElementSnapshot
}

func project(doc *dom.Document, ref dom.NodeRef) (*NodeSnapshot, error) {
	n, err := doc.Lookup(ref)
	if err != nil {
		return nil, err
	}
	switch n.Type {
	case dom.RootType:
		return &NodeSnapshot{Type: dom.RootType}, nil
	case dom.LeafType:
		return &NodeSnapshot{Type: dom.LeafType, Text: n.Text}, nil
	case dom.ElementType:
		return &NodeSnapshot{Type: dom.ElementType, Element: projectElement(&n)}, nil
	default:
		panic(fmt.Sprintf("unexpected node variant %s at %s", n.Type, ref))
	}
}

func projectElement(n *dom.Node) *ElementSnapshot {
	e := &ElementSnapshot{
		Namespace:  n.Name.Namespace,
		Tag:        n.Name.Local,
		Attributes: make([]AttributeSnapshot, len(n.Attributes)),
	}
	for i := range n.Attributes {
		e.Attributes[i] = projectAttribute(&n.Attributes[i])
	}
	return e
}

func projectAttribute(a *dom.Attribute) AttributeSnapshot {
	res := AttributeSnapshot{Namespace: a.Name.Namespace, Name: a.Name.Local}
	if a.Value != nil {
		v := *a.Value
		res.Value = &v
	}
	return res
}

func (e *ElementSnapshot) clone() *ElementSnapshot {
	res := *e
	res.Attributes = make([]AttributeSnapshot, len(e.Attributes))
	for i := range e.Attributes {
		res.Attributes[i] = e.Attributes[i].clone()
	}
	return &res
}

func (a AttributeSnapshot) clone() AttributeSnapshot {
	if a.Value != nil {
		v := *a.Value
		a.Value = &v
	}
	return a
}
