package dom

import (
	"fmt"
	"math"
	"slices"
)

// NodeRef is an index into a Document's arena.
type NodeRef uint32

const noParent = NodeRef(math.MaxUint32)

func (r NodeRef) String() string {
	return fmt.Sprintf("#%d", uint32(r))
}

type Document struct {
	nodes    []Node
	parents  []NodeRef
	children [][]NodeRef

	editing bool
}

// Empty returns a document containing only its root.
func Empty() *Document {
	return &Document{
		nodes:    []Node{Root()},
		parents:  []NodeRef{noParent},
		children: [][]NodeRef{nil},
	}
}

func (d *Document) Root() NodeRef {
	return 0
}

// Len is the arena size, including detached nodes.
func (d *Document) Len() int {
	return len(d.nodes)
}

func (d *Document) Contains(ref NodeRef) bool {
	return int64(ref) < int64(len(d.nodes))
}

func (d *Document) check(ref NodeRef) error {
	if !d.Contains(ref) {
		return fmt.Errorf("%w: %s (arena size %d)", ErrOutOfRange, ref, len(d.nodes))
	}
	return nil
}

// Get returns the node at ref. It panics if ref is out of range; use
// Lookup for untrusted refs.
func (d *Document) Get(ref NodeRef) Node {
	return d.nodes[ref]
}

func (d *Document) Lookup(ref NodeRef) (Node, error) {
	if err := d.check(ref); err != nil {
		return Node{}, err
	}
	return d.nodes[ref], nil
}

// Children returns a copy of the child refs of ref in document order.
func (d *Document) Children(ref NodeRef) ([]NodeRef, error) {
	if err := d.check(ref); err != nil {
		return nil, err
	}
	return slices.Clone(d.children[ref]), nil
}

// Parent returns the parent of ref, or false when ref is the root or is
// detached.
func (d *Document) Parent(ref NodeRef) (NodeRef, bool, error) {
	if err := d.check(ref); err != nil {
		return 0, false, err
	}
	p := d.parents[ref]
	if p == noParent {
		return 0, false, nil
	}
	return p, true, nil
}

// Attached reports whether ref is reachable from the root.
func (d *Document) Attached(ref NodeRef) bool {
	if !d.Contains(ref) {
		return false
	}
	for ref != d.Root() {
		p := d.parents[ref]
		if p == noParent {
			return false
		}
		ref = p
	}
	return true
}

func (d *Document) indexOf(parent, ref NodeRef) int {
	return slices.Index(d.children[parent], ref)
}

// Walk visits ref and its descendants in document order. Returning false
// from fn skips the children of the visited node.
func (d *Document) Walk(ref NodeRef, fn func(ref NodeRef, depth int) bool) error {
	if err := d.check(ref); err != nil {
		return err
	}
	d.walk(ref, 0, fn)
	return nil
}

func (d *Document) walk(ref NodeRef, depth int, fn func(NodeRef, int) bool) {
	if !fn(ref, depth) {
		return
	}
	for _, c := range d.children[ref] {
		d.walk(c, depth+1, fn)
	}
}

// Editing reports whether an editor is currently open on d.
func (d *Document) Editing() bool {
	return d.editing
}

// Edit opens an editing session. Only one session may be open at a time.
func (d *Document) Edit() (*Editor, error) {
	if d.editing {
		return nil, ErrSessionOpen
	}
	d.editing = true
	return &Editor{doc: d, open: true}, nil
}

func (d *Document) add(n Node) NodeRef {
	ref := NodeRef(len(d.nodes))
	d.nodes = append(d.nodes, n)
	d.parents = append(d.parents, noParent)
	d.children = append(d.children, nil)
	return ref
}
