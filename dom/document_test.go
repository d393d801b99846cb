package dom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildDoc(t *testing.T) (*Document, map[string]NodeRef) {
	t.Helper()
	doc := Empty()
	ed, err := doc.Edit()
	if err != nil {
		t.Fatal(err)
	}
	defer ed.Finish()
	refs := map[string]NodeRef{}
	refs["a"], err = ed.Append(doc.Root(), Element(Name{Local: "a"}))
	if err != nil {
		t.Fatal(err)
	}
	refs["b"], _ = ed.Append(refs["a"], Element(Name{Local: "b"}, NewAttribute(Name{Local: "id"}, "x")))
	refs["hi"], _ = ed.Append(refs["b"], Leaf("hi"))
	refs["c"], _ = ed.Append(refs["a"], Element(Name{Namespace: "svg", Local: "c"}))
	return doc, refs
}

func TestEmpty(t *testing.T) {
	doc := Empty()
	if doc.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", doc.Len())
	}
	n := doc.Get(doc.Root())
	if n.Type != RootType {
		t.Errorf("expected root, got %s", n)
	}
	kids, err := doc.Children(doc.Root())
	if err != nil {
		t.Fatal(err)
	}
	if len(kids) != 0 {
		t.Errorf("expected no children, got %v", kids)
	}
	if _, ok, _ := doc.Parent(doc.Root()); ok {
		t.Error("root has a parent")
	}
}

func TestChildrenParent(t *testing.T) {
	doc, refs := buildDoc(t)
	kids, err := doc.Children(refs["a"])
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]NodeRef{refs["b"], refs["c"]}, kids); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	for name, ref := range refs {
		p, ok, err := doc.Parent(ref)
		if err != nil || !ok {
			t.Fatalf("%s: parent missing: %v", name, err)
		}
		pk, _ := doc.Children(p)
		found := false
		for _, k := range pk {
			if k == ref {
				found = true
			}
		}
		if !found {
			t.Errorf("%s not among children of its parent", name)
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	doc := Empty()
	_, err := doc.Lookup(NodeRef(1<<31 - 1))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := doc.Children(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestEditSessionState(t *testing.T) {
	doc := Empty()
	ed, err := doc.Edit()
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Editing() {
		t.Error("expected editing")
	}
	if _, err := doc.Edit(); !errors.Is(err, ErrSessionOpen) {
		t.Errorf("expected ErrSessionOpen, got %v", err)
	}
	ed.Finish()
	ed.Finish()
	if doc.Editing() {
		t.Error("expected closed session")
	}
	if _, err := ed.Append(doc.Root(), Leaf("x")); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("expected ErrSessionClosed, got %v", err)
	}
}

func TestRemoveDetaches(t *testing.T) {
	doc, refs := buildDoc(t)
	ed, _ := doc.Edit()
	defer ed.Finish()
	parent, ok, err := ed.Remove(refs["b"])
	if err != nil || !ok {
		t.Fatalf("remove: %v %v", ok, err)
	}
	if parent != refs["a"] {
		t.Errorf("expected parent %s, got %s", refs["a"], parent)
	}
	if _, ok, _ := doc.Parent(refs["b"]); ok {
		t.Error("removed node still has a parent")
	}
	if doc.Attached(refs["hi"]) {
		t.Error("leaf below removed node still attached")
	}
	if _, ok, _ := ed.Remove(refs["b"]); ok {
		t.Error("second remove reported a change")
	}
	if _, _, err := ed.Remove(doc.Root()); !errors.Is(err, ErrRootImmutable) {
		t.Errorf("expected ErrRootImmutable, got %v", err)
	}
}

func TestReplaceKeepsPosition(t *testing.T) {
	doc, refs := buildDoc(t)
	ed, _ := doc.Edit()
	defer ed.Finish()
	nref, parent, err := ed.Replace(refs["b"], Leaf("new"))
	if err != nil {
		t.Fatal(err)
	}
	if parent != refs["a"] {
		t.Errorf("expected parent a, got %s", parent)
	}
	kids, _ := doc.Children(refs["a"])
	if diff := cmp.Diff([]NodeRef{nref, refs["c"]}, kids); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
}

func TestSetTextAndAttributes(t *testing.T) {
	doc, refs := buildDoc(t)
	before := doc.Get(refs["b"]).Clone()
	ed, _ := doc.Edit()
	if err := ed.SetText(refs["b"], "x"); !errors.Is(err, ErrNotLeaf) {
		t.Errorf("expected ErrNotLeaf, got %v", err)
	}
	if err := ed.SetText(refs["hi"], "bye"); err != nil {
		t.Fatal(err)
	}
	if err := ed.SetAttributes(refs["hi"], nil); !errors.Is(err, ErrNotElement) {
		t.Errorf("expected ErrNotElement, got %v", err)
	}
	if err := ed.SetAttributes(refs["b"], []Attribute{NewAttribute(Name{Local: "id"}, "y")}); err != nil {
		t.Fatal(err)
	}
	ed.Finish()
	if got := doc.Get(refs["hi"]).Text; got != "bye" {
		t.Errorf("expected bye, got %q", got)
	}
	if v, _ := before.Attr("id"); v != "x" {
		t.Errorf("earlier copy changed: %q", v)
	}
	if v, _ := doc.Get(refs["b"]).Attr("id"); v != "y" {
		t.Errorf("expected y, got %q", v)
	}
}

func TestInsertTree(t *testing.T) {
	src, srefs := buildDoc(t)
	dst := Empty()
	ed, _ := dst.Edit()
	ref, err := ed.InsertTree(dst.Root(), 0, src, srefs["a"])
	ed.Finish()
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	dst.Walk(ref, func(r NodeRef, depth int) bool {
		got = append(got, dst.Get(r).String())
		return true
	})
	want := []string{"Element(a)", "Element(b)", `Leaf("hi")`, "Element(svg:c)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk (-want +got):\n%s", diff)
	}
}

func TestInsertRejectsBadTargets(t *testing.T) {
	doc, refs := buildDoc(t)
	ed, _ := doc.Edit()
	defer ed.Finish()
	if _, err := ed.Append(refs["hi"], Leaf("x")); !errors.Is(err, ErrNotContainer) {
		t.Errorf("expected ErrNotContainer, got %v", err)
	}
	if _, err := ed.Append(doc.Root(), Root()); !errors.Is(err, ErrNotContainer) {
		t.Errorf("expected ErrNotContainer, got %v", err)
	}
	if _, err := ed.Insert(refs["a"], 9, Leaf("x")); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}
