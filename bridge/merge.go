package bridge

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/liveview-native/core-go/debug"
	"github.com/liveview-native/core-go/dom"
	"github.com/liveview-native/core-go/handle"
	"github.com/liveview-native/core-go/libdiff"
)

// Change type bytes passed to ChangeHandler.OnChange.
const (
	ChangeAdd     = byte(libdiff.Add)
	ChangeRemove  = byte(libdiff.Remove)
	ChangeChange  = byte(libdiff.Change)
	ChangeReplace = byte(libdiff.Replace)
)

// ChangeHandler is notified of each structural change made by a merge, in
// patch order, while the editing session is open. parent is NoRef for
// ChangeChange. Returning an error stops the merge.
type ChangeHandler interface {
	OnChange(doc Handle, change byte, node, parent int32) error
}

type ChangeHandlerFunc func(doc Handle, change byte, node, parent int32) error

func (f ChangeHandlerFunc) OnChange(doc Handle, change byte, node, parent int32) error {
	return f(doc, change, node, parent)
}

// DocumentMerge makes primary equal to secondary, notifying handler of
// each change. A nil handler is allowed.
func (b *Bridge) DocumentMerge(primary, secondary Handle, handler ChangeHandler) error {
	const op = "DocumentMerge"
	return guard0(b, op, func() error {
		pd, perr := handle.Get[*document](b.handles, primary, handle.Document)
		sd, serr := handle.Get[*document](b.handles, secondary, handle.Document)
		if err := mergeArgs(op, perr, serr); err != nil {
			return err
		}
		for _, d := range []*document{pd, sd} {
			if d.doc.Editing() {
				return errorf(CodeSessionOpen, op, "", "document is being edited")
			}
		}
		return b.merge(op, primary, pd.doc, sd.doc, handler)
	})
}

// mergeArgs reports which of the two document arguments failed to
// resolve.
func mergeArgs(op string, perr, serr error) error {
	switch {
	case perr != nil && serr != nil:
		e := wrap(op, "primary and secondary", perr)
		e.Message = fmt.Sprintf("%s; %s", perr, serr)
		return e
	case perr != nil:
		return wrap(op, "primary", perr)
	case serr != nil:
		return wrap(op, "secondary", serr)
	}
	return nil
}

func (b *Bridge) merge(op string, h Handle, primary, secondary *dom.Document, handler ChangeHandler) error {
	patches := libdiff.Diff(primary, secondary)
	if len(patches) == 0 {
		return nil
	}
	log := b.log.With("op", op, "session", uuid.NewString(), "doc", h)
	ed, err := primary.Edit()
	if err != nil {
		return wrap(op, "primary", err)
	}
	log.Debug("session opened", "patches", len(patches))
	notified := 0
	defer func() {
		ed.Finish()
		log.Debug("session finished", "notified", notified)
	}()
	for i := range patches {
		p := &patches[i]
		res, err := p.Apply(ed)
		if err != nil {
			return newError(CodeInternalFault, op, "", fmt.Errorf("patch %d of %d: %w", i+1, len(patches), err))
		}
		if res == nil {
			continue
		}
		parent := NoRef
		if res.HasParent {
			parent = int32(res.Parent)
		}
		if debug.Merge() {
			debug.Logf("merge: %s -> %s\n", p.String(), res.String())
		}
		if handler == nil {
			continue
		}
		if err := handler.OnChange(h, byte(res.Type), int32(res.Node), parent); err != nil {
			return newError(CodeHandlerFailure, op, "handler", fmt.Errorf("%s on patch %d of %d: %w", res.Type, i+1, len(patches), err))
		}
		notified++
	}
	return nil
}
