// Package dom provides the arena-backed document tree that markup is parsed
// into and that diffs are applied to.
//
// # Overview
//
// A [Document] owns every node it contains. Nodes are addressed by
// [NodeRef], a dense index into the document's arena. The root of every
// document is ref 0 and has [RootType].
//
// A NodeRef is only meaningful relative to the document that produced it.
// Refs are never reused: nodes created by an edit are appended to the
// arena, and nodes removed by an edit stay in the arena as detached nodes
// whose parent is none. A ref handed out once therefore never names a
// different node later.
//
// # Node Variants
//
// The Type field of a [Node] selects which other fields are meaningful:
//
//   - RootType: no payload
//   - LeafType: Text
//   - ElementType: Name and Attributes
//
// # Editing
//
// A document is mutated only through an [Editor] obtained from
// [Document.Edit]. At most one editor may be open per document, and the
// document should not be read by other parties until [Editor.Finish] is
// called:
//
//	ed, err := doc.Edit()
//	if err != nil {
//	    return err
//	}
//	defer ed.Finish()
//	ref, err := ed.Append(doc.Root(), dom.Leaf("hello"))
//
// # Related Packages
//
//   - github.com/liveview-native/core-go/parse - markup to Document
//   - github.com/liveview-native/core-go/encode - Document to markup
//   - github.com/liveview-native/core-go/libdiff - diff and patch Documents
package dom
