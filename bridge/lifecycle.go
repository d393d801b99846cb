package bridge

import (
	"github.com/liveview-native/core-go/dom"
	"github.com/liveview-native/core-go/handle"
	"github.com/liveview-native/core-go/parse"
)

// ParseResult is the outcome of DocumentParse. Exactly one of Handle and
// Error is set.
type ParseResult struct {
	Handle Handle
	Error  string
}

func (r ParseResult) OK() bool {
	return r.Handle != handle.Null
}

// DocumentEmpty returns a handle owning a new document holding only a
// root.
func (b *Bridge) DocumentEmpty() Handle {
	h, _ := guard(b, "DocumentEmpty", handle.Null, func() (Handle, error) {
		return b.insertDocument(dom.Empty()), nil
	})
	return h
}

// DocumentParse parses text into a new document. Parse failures are
// returned in the result rather than reported as errors.
func (b *Bridge) DocumentParse(text string) ParseResult {
	var perr error
	h, err := guard(b, "DocumentParse", handle.Null, func() (Handle, error) {
		doc, err := parse.ParseString(text)
		if err != nil {
			perr = err
			return handle.Null, nil
		}
		return b.insertDocument(doc), nil
	})
	switch {
	case err != nil:
		return ParseResult{Error: err.Error()}
	case perr != nil:
		b.log.Debug("parse failed", "error", perr)
		return ParseResult{Error: perr.Error()}
	}
	return ParseResult{Handle: h}
}

func (b *Bridge) insertDocument(doc *dom.Document) Handle {
	h := b.handles.Insert(handle.Document, &document{doc: doc})
	b.log.Debug("document created", "handle", h, "nodes", doc.Len())
	return h
}

// DocumentDrop destroys the document. Snapshots taken from it stay valid.
func (b *Bridge) DocumentDrop(h Handle) error {
	return guard0(b, "DocumentDrop", func() error {
		d, err := handle.Get[*document](b.handles, h, handle.Document)
		if err != nil {
			return wrap("DocumentDrop", "doc", err)
		}
		if d.doc.Editing() {
			return errorf(CodeSessionOpen, "DocumentDrop", "doc", "document %s is being edited", h)
		}
		if _, err := b.handles.Remove(h, handle.Document); err != nil {
			return wrap("DocumentDrop", "doc", err)
		}
		b.log.Debug("document dropped", "handle", h)
		return nil
	})
}

func (b *Bridge) NodeDrop(h Handle) error {
	return b.drop("NodeDrop", "node", h, handle.Node)
}

func (b *Bridge) ElementDrop(h Handle) error {
	return b.drop("ElementDrop", "element", h, handle.Element)
}

func (b *Bridge) AttributeDrop(h Handle) error {
	return b.drop("AttributeDrop", "attribute", h, handle.Attribute)
}

func (b *Bridge) drop(op, arg string, h Handle, kind handle.Kind) error {
	return guard0(b, op, func() error {
		if _, err := b.handles.Remove(h, kind); err != nil {
			return wrap(op, arg, err)
		}
		return nil
	})
}
