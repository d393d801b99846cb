package bridge

import (
	"bytes"
	"strings"

	"github.com/liveview-native/core-go/dom"
	"github.com/liveview-native/core-go/encode"
	"github.com/liveview-native/core-go/handle"
	"github.com/liveview-native/core-go/query"
)

// NoRef is returned in place of a node reference that does not exist, such
// as the parent of the root.
const NoRef int32 = -1

func (b *Bridge) DocumentRoot(doc Handle) (int32, error) {
	const op = "DocumentRoot"
	return guard(b, op, NoRef, func() (int32, error) {
		d, err := b.document(op, "doc", doc)
		if err != nil {
			return NoRef, err
		}
		return int32(d.doc.Root()), nil
	})
}

// DocumentGetNode returns a handle owning a snapshot of the node at ref.
func (b *Bridge) DocumentGetNode(doc Handle, r int32) (Handle, error) {
	const op = "DocumentGetNode"
	return guard(b, op, handle.Null, func() (Handle, error) {
		d, err := b.document(op, "doc", doc)
		if err != nil {
			return handle.Null, err
		}
		nref, err := ref(op, d.doc, r)
		if err != nil {
			return handle.Null, err
		}
		snap, err := project(d.doc, nref)
		if err != nil {
			return handle.Null, wrap(op, "ref", err)
		}
		return b.handles.Insert(handle.Node, snap), nil
	})
}

func (b *Bridge) DocumentGetNodeLeafText(doc Handle, r int32) (string, error) {
	const op = "DocumentGetNodeLeafText"
	return guard(b, op, "", func() (string, error) {
		d, err := b.document(op, "doc", doc)
		if err != nil {
			return "", err
		}
		nref, err := ref(op, d.doc, r)
		if err != nil {
			return "", err
		}
		n := d.doc.Get(nref)
		if n.Type != dom.LeafType {
			return "", errorf(CodeTypeMismatch, op, "ref", "node %d is %s, not a leaf", r, n.Type)
		}
		return n.Text, nil
	})
}

// DocumentChildren returns the children of ref in document order.
func (b *Bridge) DocumentChildren(doc Handle, r int32) ([]int32, error) {
	const op = "DocumentChildren"
	return guard(b, op, []int32(nil), func() ([]int32, error) {
		d, err := b.document(op, "doc", doc)
		if err != nil {
			return nil, err
		}
		nref, err := ref(op, d.doc, r)
		if err != nil {
			return nil, err
		}
		kids, err := d.doc.Children(nref)
		if err != nil {
			return nil, wrap(op, "ref", err)
		}
		return refs(kids), nil
	})
}

// DocumentParent returns the parent of ref, or NoRef for the root and
// detached nodes.
func (b *Bridge) DocumentParent(doc Handle, r int32) (int32, error) {
	const op = "DocumentParent"
	return guard(b, op, NoRef, func() (int32, error) {
		d, err := b.document(op, "doc", doc)
		if err != nil {
			return NoRef, err
		}
		nref, err := ref(op, d.doc, r)
		if err != nil {
			return NoRef, err
		}
		p, ok, err := d.doc.Parent(nref)
		if err != nil {
			return NoRef, wrap(op, "ref", err)
		}
		if !ok {
			return NoRef, nil
		}
		return int32(p), nil
	})
}

// DocumentString renders the whole document.
func (b *Bridge) DocumentString(doc Handle) (string, error) {
	const op = "DocumentString"
	return guard(b, op, "", func() (string, error) {
		d, err := b.document(op, "doc", doc)
		if err != nil {
			return "", err
		}
		return b.render(op, d.doc, d.doc.Root())
	})
}

// DocumentNodeString renders the subtree at ref.
func (b *Bridge) DocumentNodeString(doc Handle, r int32) (string, error) {
	const op = "DocumentNodeString"
	return guard(b, op, "", func() (string, error) {
		d, err := b.document(op, "doc", doc)
		if err != nil {
			return "", err
		}
		nref, err := ref(op, d.doc, r)
		if err != nil {
			return "", err
		}
		return b.render(op, d.doc, nref)
	})
}

func (b *Bridge) render(op string, doc *dom.Document, ref dom.NodeRef) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, ref, buf, b.Config.Encode...); err != nil {
		return "", wrap(op, "ref", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DocumentQuery returns the attached nodes of the document, in document
// order, for which the expression src holds. See package query for the
// expression environment.
func (b *Bridge) DocumentQuery(doc Handle, src string) ([]int32, error) {
	const op = "DocumentQuery"
	return guard(b, op, []int32(nil), func() ([]int32, error) {
		d, err := b.document(op, "doc", doc)
		if err != nil {
			return nil, err
		}
		f, err := query.Compile(src)
		if err != nil {
			return nil, wrap(op, "query", err)
		}
		sel, err := f.Select(d.doc, d.doc.Root())
		if err != nil {
			return nil, wrap(op, "query", err)
		}
		return refs(sel), nil
	})
}

func refs(rs []dom.NodeRef) []int32 {
	res := make([]int32, len(rs))
	for i, r := range rs {
		res[i] = int32(r)
	}
	return res
}

func (b *Bridge) NodeType(node Handle) (byte, error) {
	const op = "NodeType"
	return guard(b, op, 0, func() (byte, error) {
		n, err := b.snapshot(op, node)
		if err != nil {
			return 0, err
		}
		return byte(n.Type), nil
	})
}

func (b *Bridge) NodeLeafText(node Handle) (string, error) {
	const op = "NodeLeafText"
	return guard(b, op, "", func() (string, error) {
		n, err := b.snapshot(op, node)
		if err != nil {
			return "", err
		}
		if n.Type != dom.LeafType {
			return "", errorf(CodeTypeMismatch, op, "node", "%s is not a leaf", n.Type)
		}
		return n.Text, nil
	})
}

// NodeElement returns a handle owning a copy of the element of node.
func (b *Bridge) NodeElement(node Handle) (Handle, error) {
	const op = "NodeElement"
	return guard(b, op, handle.Null, func() (Handle, error) {
		n, err := b.snapshot(op, node)
		if err != nil {
			return handle.Null, err
		}
		if n.Type != dom.ElementType {
			return handle.Null, errorf(CodeTypeMismatch, op, "node", "%s is not an element", n.Type)
		}
		return b.handles.Insert(handle.Element, n.Element.clone()), nil
	})
}

func (b *Bridge) ElementNamespace(elem Handle) (string, error) {
	const op = "ElementNamespace"
	return guard(b, op, "", func() (string, error) {
		e, err := b.element(op, elem)
		if err != nil {
			return "", err
		}
		return e.Namespace, nil
	})
}

func (b *Bridge) ElementTag(elem Handle) (string, error) {
	const op = "ElementTag"
	return guard(b, op, "", func() (string, error) {
		e, err := b.element(op, elem)
		if err != nil {
			return "", err
		}
		return e.Tag, nil
	})
}

// ElementAttributes returns one new attribute handle per attribute, in
// source order. The caller owns every returned handle.
func (b *Bridge) ElementAttributes(elem Handle) ([]Handle, error) {
	const op = "ElementAttributes"
	return guard(b, op, []Handle(nil), func() ([]Handle, error) {
		e, err := b.element(op, elem)
		if err != nil {
			return nil, err
		}
		res := make([]Handle, len(e.Attributes))
		for i := range e.Attributes {
			a := e.Attributes[i].clone()
			res[i] = b.handles.Insert(handle.Attribute, &a)
		}
		return res, nil
	})
}

func (b *Bridge) AttributeName(attr Handle) (string, error) {
	const op = "AttributeName"
	return guard(b, op, "", func() (string, error) {
		a, err := b.attribute(op, attr)
		if err != nil {
			return "", err
		}
		return a.Name, nil
	})
}

func (b *Bridge) AttributeNamespace(attr Handle) (string, error) {
	const op = "AttributeNamespace"
	return guard(b, op, "", func() (string, error) {
		a, err := b.attribute(op, attr)
		if err != nil {
			return "", err
		}
		return a.Namespace, nil
	})
}

// AttributeValue returns the value of attr; ok is false for bare
// attributes.
func (b *Bridge) AttributeValue(attr Handle) (v string, ok bool, err error) {
	const op = "AttributeValue"
	type result struct {
		v  string
		ok bool
	}
	res, err := guard(b, op, result{}, func() (result, error) {
		a, err := b.attribute(op, attr)
		if err != nil {
			return result{}, err
		}
		if a.Value == nil {
			return result{}, nil
		}
		return result{*a.Value, true}, nil
	})
	return res.v, res.ok, err
}
