package handle

import (
	"fmt"
	"sync"

	"github.com/liveview-native/core-go/debug"
)

type entry struct {
	gen  uint32
	kind Kind
	live bool
	v    any
}

// Table owns the values behind handles. It is safe for concurrent use;
// values themselves are not synchronised.
type Table struct {
	mu    sync.Mutex
	slots []entry
	free  []int
	live  int
}

func NewTable() *Table {
	return &Table{}
}

// Insert stores v and returns a handle that owns it.
func (t *Table) Insert(kind Kind, v any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	var slot int
	if n := len(t.free); n > 0 {
		slot = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		slot = len(t.slots)
		t.slots = append(t.slots, entry{})
	}
	e := &t.slots[slot]
	e.kind = kind
	e.live = true
	e.v = v
	t.live++
	h := makeHandle(slot, e.gen)
	if debug.Handles() {
		debug.Logf("handle: insert %s %s\n", kind, h)
	}
	return h
}

func (t *Table) lookup(h Handle, kind Kind) (*entry, error) {
	if h == Null {
		return nil, ErrNull
	}
	if h < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalid, int64(h))
	}
	slot, ok := h.slot()
	if !ok || slot >= len(t.slots) {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, h)
	}
	e := &t.slots[slot]
	if !e.live || e.gen != h.gen() {
		return nil, fmt.Errorf("%w: %s", ErrStale, h)
	}
	if e.kind != kind {
		return nil, fmt.Errorf("%w: %s is a %s, not a %s", ErrKind, h, e.kind, kind)
	}
	return e, nil
}

// Get resolves h without transferring ownership.
func (t *Table) Get(h Handle, kind Kind) (any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, err := t.lookup(h, kind)
	if err != nil {
		return nil, err
	}
	return e.v, nil
}

// Remove consumes h and returns its value. The handle and every copy of
// it are invalid afterwards.
func (t *Table) Remove(h Handle, kind Kind) (any, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, err := t.lookup(h, kind)
	if err != nil {
		return nil, err
	}
	v := e.v
	slot, _ := h.slot()
	e.v = nil
	e.live = false
	e.gen = (e.gen + 1) & genMask
	t.free = append(t.free, slot)
	t.live--
	if debug.Handles() {
		debug.Logf("handle: remove %s %s\n", kind, h)
	}
	return v, nil
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}

// Typed helpers resolving and asserting in one step.

func Get[T any](t *Table, h Handle, kind Kind) (T, error) {
	var zero T
	v, err := t.Get(h, kind)
	if err != nil {
		return zero, err
	}
	res, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrKind, h, v)
	}
	return res, nil
}

func Remove[T any](t *Table, h Handle, kind Kind) (T, error) {
	var zero T
	v, err := t.Remove(h, kind)
	if err != nil {
		return zero, err
	}
	res, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrKind, h, v)
	}
	return res, nil
}
