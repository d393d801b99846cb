package libdiff

import (
	"github.com/liveview-native/core-go/debug"
	"github.com/liveview-native/core-go/dom"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the patches that turn from into to. Identical documents
// yield no patches.
func Diff(from, to *dom.Document) []Patch {
	res := diffNode(from, to, from.Root(), to.Root(), nil)
	if debug.Diff() {
		for i := range res {
			debug.Logf("diff: %s\n", res[i].String())
		}
	}
	return res
}

// diffNode compares two aligned nodes, which share a key.
func diffNode(from, to *dom.Document, fref, tref dom.NodeRef, res []Patch) []Patch {
	fn, tn := from.Get(fref), to.Get(tref)
	switch fn.Type {
	case dom.LeafType:
		if fn.Text != tn.Text {
			res = append(res, Patch{Op: OpSetText, Target: fref, Text: tn.Text})
		}
		return res
	case dom.ElementType:
		if !dom.AttributesEqual(fn.Attributes, tn.Attributes) {
			res = append(res, Patch{Op: OpSetAttributes, Target: fref, Attributes: tn.Attributes})
		}
	}
	return diffChildren(from, to, fref, tref, res)
}

// diffChildren aligns the child lists of fref and tref. Indices of inserts
// are positions in the child list as it is when the patch is applied.
func diffChildren(from, to *dom.Document, fref, tref dom.NodeRef, res []Patch) []Patch {
	fkids, _ := from.Children(fref)
	tkids, _ := to.Children(tref)
	if len(fkids) == 0 && len(tkids) == 0 {
		return res
	}
	m := map[string]rune{}
	fromRunes := mapKeys(m, from, fkids)
	toRunes := mapKeys(m, to, tkids)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, cur := 0, 0, 0
	// deleted nodes not yet paired with an insert; they are still in the
	// list starting at cur.
	var pending []dom.NodeRef
	flush := func() {
		for _, ref := range pending {
			res = append(res, Patch{Op: OpRemove, Target: ref})
		}
		pending = nil
	}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				pending = append(pending, fkids[fi])
				fi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				if len(pending) > 0 {
					res = append(res, Patch{Op: OpReplace, Target: pending[0], Src: to, SrcRef: tkids[ti]})
					pending = pending[1:]
				} else {
					res = append(res, Patch{Op: OpInsert, Target: fref, Index: cur, Src: to, SrcRef: tkids[ti]})
				}
				cur++
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range diff.Text {
				res = diffNode(from, to, fkids[fi], tkids[ti], res)
				fi++
				ti++
				cur++
			}
		}
	}
	flush()
	return res
}

func mapKeys(m map[string]rune, doc *dom.Document, refs []dom.NodeRef) []rune {
	rs := make([]rune, len(refs))
	for i, ref := range refs {
		key := nodeKey(doc.Get(ref))
		r, ok := m[key]
		if !ok {
			// private use area, clear of surrogates
			r = rune(0xE000 + len(m))
			m[key] = r
		}
		rs[i] = r
	}
	return rs
}

func nodeKey(n dom.Node) string {
	switch n.Type {
	case dom.LeafType:
		return "text"
	case dom.ElementType:
		key := "<" + n.Name.String()
		if id, ok := n.Attr("id"); ok {
			key += "#" + id
		}
		return key
	default:
		return n.Type.String()
	}
}
