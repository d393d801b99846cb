package libdiff

import (
	"fmt"

	"github.com/liveview-native/core-go/debug"
	"github.com/liveview-native/core-go/dom"
)

// Apply applies p in the editing session ed. A patch whose target has
// already been detached by an earlier patch makes no change and returns
// a nil result.
func (p *Patch) Apply(ed *dom.Editor) (*PatchResult, error) {
	res, err := p.apply(ed)
	if debug.Patch() {
		out := "none"
		if res != nil {
			out = res.String()
		}
		debug.Logf("patch: %s -> %s (err %v)\n", p.String(), out, err)
	}
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", p.Op, err)
	}
	return res, nil
}

func (p *Patch) apply(ed *dom.Editor) (*PatchResult, error) {
	doc := ed.Document()
	if !doc.Contains(p.Target) {
		return nil, fmt.Errorf("%w: %s", dom.ErrOutOfRange, p.Target)
	}
	if !doc.Attached(p.Target) {
		return nil, nil
	}
	switch p.Op {
	case OpInsert:
		ref, err := ed.InsertTree(p.Target, p.Index, p.Src, p.SrcRef)
		if err != nil {
			return nil, err
		}
		return &PatchResult{Type: Add, Node: ref, Parent: p.Target, HasParent: true}, nil
	case OpRemove:
		parent, ok, err := ed.Remove(p.Target)
		if err != nil || !ok {
			return nil, err
		}
		return &PatchResult{Type: Remove, Node: p.Target, Parent: parent, HasParent: true}, nil
	case OpSetText:
		if err := ed.SetText(p.Target, p.Text); err != nil {
			return nil, err
		}
		return &PatchResult{Type: Change, Node: p.Target}, nil
	case OpSetAttributes:
		if err := ed.SetAttributes(p.Target, p.Attributes); err != nil {
			return nil, err
		}
		return &PatchResult{Type: Change, Node: p.Target}, nil
	case OpReplace:
		ref, parent, err := ed.ReplaceTree(p.Target, p.Src, p.SrcRef)
		if err != nil {
			return nil, err
		}
		return &PatchResult{Type: Replace, Node: ref, Parent: parent, HasParent: true}, nil
	default:
		return nil, fmt.Errorf("unknown patch op %s", p.Op)
	}
}

// ApplyAll applies patches in order in a new session on doc and returns
// the non-nil results. The session is finished on return, also on error.
func ApplyAll(doc *dom.Document, patches []Patch) ([]PatchResult, error) {
	ed, err := doc.Edit()
	if err != nil {
		return nil, err
	}
	defer ed.Finish()
	var res []PatchResult
	for i := range patches {
		r, err := patches[i].Apply(ed)
		if err != nil {
			return res, err
		}
		if r != nil {
			res = append(res, *r)
		}
	}
	return res, nil
}
