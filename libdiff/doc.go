// Package libdiff computes and applies structural patches between two
// dom documents.
//
// # Usage
//
//	patches := libdiff.Diff(primary, secondary)
//	ed, err := primary.Edit()
//	...
//	for i := range patches {
//	    res, err := patches[i].Apply(ed)
//	    ...
//	}
//	ed.Finish()
//
// Patches refer to nodes of the primary document and must be applied in
// the order returned, against the document they were computed for. New
// content is copied from the secondary document, which must stay alive
// until the patches are applied.
//
// Child lists are aligned with a sequence diff over per-node keys (the
// node variant and qualified tag, plus the id attribute when present).
// Aligned nodes are compared recursively; unaligned runs become removals,
// insertions, and replacements.
//
// # Related Packages
//
//   - github.com/liveview-native/core-go/dom - documents and editors
package libdiff
