package libdiff

import (
	"fmt"

	"github.com/liveview-native/core-go/dom"
)

type Op uint8

const (
	OpInsert Op = iota
	OpRemove
	OpSetText
	OpSetAttributes
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpSetText:
		return "set-text"
	case OpSetAttributes:
		return "set-attributes"
	case OpReplace:
		return "replace"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Patch is one structural edit of a primary document.
//
// Target is the parent for OpInsert and the edited node otherwise. Index
// is only used by OpInsert. OpInsert and OpReplace copy the subtree at
// SrcRef in Src.
type Patch struct {
	Op     Op
	Target dom.NodeRef
	Index  int

	Text       string
	Attributes []dom.Attribute

	Src    *dom.Document
	SrcRef dom.NodeRef
}

func (p *Patch) String() string {
	switch p.Op {
	case OpInsert:
		return fmt.Sprintf("%s %s[%d] <- %s", p.Op, p.Target, p.Index, p.Src.Get(p.SrcRef))
	case OpReplace:
		return fmt.Sprintf("%s %s <- %s", p.Op, p.Target, p.Src.Get(p.SrcRef))
	case OpSetText:
		return fmt.Sprintf("%s %s %q", p.Op, p.Target, p.Text)
	case OpSetAttributes:
		return fmt.Sprintf("%s %s (%d)", p.Op, p.Target, len(p.Attributes))
	default:
		return fmt.Sprintf("%s %s", p.Op, p.Target)
	}
}

// ChangeType classifies a PatchResult. The values are stable and visible
// to hosts.
type ChangeType uint8

const (
	Add ChangeType = iota
	Remove
	Change
	Replace
)

func (c ChangeType) String() string {
	switch c {
	case Add:
		return "Add"
	case Remove:
		return "Remove"
	case Change:
		return "Change"
	case Replace:
		return "Replace"
	default:
		return fmt.Sprintf("ChangeType(%d)", uint8(c))
	}
}

// PatchResult describes the structural change an applied patch made. Node
// is the new node for Add and Replace. Parent is unset for Change.
type PatchResult struct {
	Type      ChangeType
	Node      dom.NodeRef
	Parent    dom.NodeRef
	HasParent bool
}

func (r *PatchResult) String() string {
	if !r.HasParent {
		return fmt.Sprintf("%s{%s}", r.Type, r.Node)
	}
	return fmt.Sprintf("%s{%s, %s}", r.Type, r.Node, r.Parent)
}
