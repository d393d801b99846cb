package dom

import (
	"fmt"
	"slices"
)

// Editor is a mutable session over a Document. It is obtained from
// Document.Edit and must be closed with Finish.
type Editor struct {
	doc  *Document
	open bool
}

func (e *Editor) Document() *Document {
	return e.doc
}

func (e *Editor) Open() bool {
	return e.open
}

// Finish closes the session. Calling Finish more than once is a no-op.
func (e *Editor) Finish() {
	if !e.open {
		return
	}
	e.open = false
	e.doc.editing = false
}

func (e *Editor) checkOpen() error {
	if !e.open {
		return ErrSessionClosed
	}
	return nil
}

func (e *Editor) container(ref NodeRef) error {
	if err := e.doc.check(ref); err != nil {
		return err
	}
	if e.doc.nodes[ref].Type == LeafType {
		return fmt.Errorf("%w: %s is %s", ErrNotContainer, ref, e.doc.nodes[ref])
	}
	return nil
}

// Append adds n as the last child of parent.
func (e *Editor) Append(parent NodeRef, n Node) (NodeRef, error) {
	if err := e.checkOpen(); err != nil {
		return 0, err
	}
	if err := e.container(parent); err != nil {
		return 0, err
	}
	if err := childNode(n); err != nil {
		return 0, err
	}
	return e.insert(parent, len(e.doc.children[parent]), n), nil
}

// Insert adds n as the child of parent at index.
func (e *Editor) Insert(parent NodeRef, index int, n Node) (NodeRef, error) {
	if err := e.checkOpen(); err != nil {
		return 0, err
	}
	if err := e.container(parent); err != nil {
		return 0, err
	}
	if err := childNode(n); err != nil {
		return 0, err
	}
	if index < 0 || index > len(e.doc.children[parent]) {
		return 0, fmt.Errorf("%w: child index %d of %s (has %d)", ErrOutOfRange, index, parent, len(e.doc.children[parent]))
	}
	return e.insert(parent, index, n), nil
}

func childNode(n Node) error {
	if n.Type == RootType {
		return fmt.Errorf("%w: a root cannot be a child", ErrNotContainer)
	}
	return nil
}

func (e *Editor) insert(parent NodeRef, index int, n Node) NodeRef {
	ref := e.doc.add(n.Clone())
	e.doc.parents[ref] = parent
	e.doc.children[parent] = slices.Insert(e.doc.children[parent], index, ref)
	return ref
}

// Remove detaches ref and its subtree from its parent and returns the former
// parent. Removing an already detached node returns false.
func (e *Editor) Remove(ref NodeRef) (NodeRef, bool, error) {
	if err := e.checkOpen(); err != nil {
		return 0, false, err
	}
	if err := e.doc.check(ref); err != nil {
		return 0, false, err
	}
	if ref == e.doc.Root() {
		return 0, false, ErrRootImmutable
	}
	parent := e.doc.parents[ref]
	if parent == noParent {
		return 0, false, nil
	}
	i := e.doc.indexOf(parent, ref)
	e.doc.children[parent] = slices.Delete(e.doc.children[parent], i, i+1)
	e.doc.parents[ref] = noParent
	return parent, true, nil
}

// Replace puts a new node n in the place of ref, detaching ref. The new
// node starts without children.
func (e *Editor) Replace(ref NodeRef, n Node) (NodeRef, NodeRef, error) {
	if err := e.checkOpen(); err != nil {
		return 0, 0, err
	}
	if err := e.doc.check(ref); err != nil {
		return 0, 0, err
	}
	if ref == e.doc.Root() {
		return 0, 0, ErrRootImmutable
	}
	if err := childNode(n); err != nil {
		return 0, 0, err
	}
	parent := e.doc.parents[ref]
	if parent == noParent {
		return 0, 0, fmt.Errorf("%w: %s", ErrDetached, ref)
	}
	i := e.doc.indexOf(parent, ref)
	e.doc.children[parent] = slices.Delete(e.doc.children[parent], i, i+1)
	e.doc.parents[ref] = noParent
	return e.insert(parent, i, n), parent, nil
}

func (e *Editor) SetText(ref NodeRef, text string) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if err := e.doc.check(ref); err != nil {
		return err
	}
	n := &e.doc.nodes[ref]
	if n.Type != LeafType {
		return fmt.Errorf("%w: %s is %s", ErrNotLeaf, ref, n)
	}
	n.Text = text
	return nil
}

// SetAttributes replaces the attribute list of an element. The previous
// slice is not modified, so copies taken earlier stay intact.
func (e *Editor) SetAttributes(ref NodeRef, attrs []Attribute) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if err := e.doc.check(ref); err != nil {
		return err
	}
	n := &e.doc.nodes[ref]
	if n.Type != ElementType {
		return fmt.Errorf("%w: %s is %s", ErrNotElement, ref, n)
	}
	cp := make([]Attribute, len(attrs))
	for i := range attrs {
		cp[i] = attrs[i].Clone()
	}
	n.Attributes = cp
	return nil
}

// InsertTree copies the subtree rooted at srcRef in src below parent at
// index and returns the ref of the copied subtree root.
func (e *Editor) InsertTree(parent NodeRef, index int, src *Document, srcRef NodeRef) (NodeRef, error) {
	if err := src.check(srcRef); err != nil {
		return 0, err
	}
	ref, err := e.Insert(parent, index, src.nodes[srcRef])
	if err != nil {
		return 0, err
	}
	e.copyChildren(ref, src, srcRef)
	return ref, nil
}

// ReplaceTree is Replace followed by a copy of the children of srcRef.
func (e *Editor) ReplaceTree(ref NodeRef, src *Document, srcRef NodeRef) (NodeRef, NodeRef, error) {
	if err := src.check(srcRef); err != nil {
		return 0, 0, err
	}
	nref, parent, err := e.Replace(ref, src.nodes[srcRef])
	if err != nil {
		return 0, 0, err
	}
	e.copyChildren(nref, src, srcRef)
	return nref, parent, nil
}

func (e *Editor) copyChildren(dst NodeRef, src *Document, srcRef NodeRef) {
	for _, c := range src.children[srcRef] {
		ref := e.insert(dst, len(e.doc.children[dst]), src.nodes[c])
		e.copyChildren(ref, src, c)
	}
}
