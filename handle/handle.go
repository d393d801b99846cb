// Package handle maps opaque integer handles to owned values.
//
// A Handle is what a host holds in place of a pointer. Inserting a value
// transfers its ownership to the holder of the returned handle; Remove
// consumes the handle exactly once. Each slot carries a generation which
// is bumped when the slot is freed, so a handle used after removal is
// reported as stale instead of resolving to whatever reuses the slot.
package handle

import "fmt"

// Handle is an opaque reference into a Table. The zero Handle is null.
//
// The low 32 bits hold the slot index plus one and bits 32 to 62 hold the
// slot generation.
type Handle int64

const Null Handle = 0

const genMask = 1<<31 - 1

func makeHandle(slot int, gen uint32) Handle {
	return Handle(int64(gen&genMask)<<32 | int64(uint32(slot+1)))
}

func (h Handle) slot() (int, bool) {
	lo := uint32(uint64(h))
	if lo == 0 {
		return 0, false
	}
	return int(lo - 1), true
}

func (h Handle) gen() uint32 {
	return uint32(uint64(h)>>32) & genMask
}

func (h Handle) String() string {
	if h == Null {
		return "null"
	}
	slot, _ := h.slot()
	return fmt.Sprintf("%d@%d", slot, h.gen())
}

type Kind uint8

const (
	Document Kind = iota + 1
	Node
	Element
	Attribute
)

func (k Kind) String() string {
	switch k {
	case Document:
		return "Document"
	case Node:
		return "Node"
	case Element:
		return "Element"
	case Attribute:
		return "Attribute"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
