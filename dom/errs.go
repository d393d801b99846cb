package dom

import (
	"errors"
)

var (
	ErrOutOfRange    = errors.New("node ref out of range")
	ErrNotLeaf       = errors.New("node isn't a leaf")
	ErrNotElement    = errors.New("node isn't an element")
	ErrNotContainer  = errors.New("node cannot have children")
	ErrRootImmutable = errors.New("root cannot be removed or replaced")
	ErrDetached      = errors.New("node is detached")
	ErrSessionOpen   = errors.New("editing session open")
	ErrSessionClosed = errors.New("editing session closed")
)
