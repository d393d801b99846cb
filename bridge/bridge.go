package bridge

import (
	"log/slog"

	"github.com/liveview-native/core-go/dom"
	"github.com/liveview-native/core-go/encode"
	"github.com/liveview-native/core-go/fragment"
	"github.com/liveview-native/core-go/handle"
)

type Handle = handle.Handle

// Reporter receives every error returned by an entry point. It is called
// synchronously on the goroutine of the failing call.
type Reporter interface {
	Report(err *Error)
}

type ReporterFunc func(err *Error)

func (f ReporterFunc) Report(err *Error) { f(err) }

type Config struct {
	Log      *slog.Logger
	Reporter Reporter
	// Encode is applied by DocumentString and DocumentNodeString.
	Encode []encode.EncodeOption
}

func DefaultConfig() *Config {
	return &Config{Log: slog.Default()}
}

type Bridge struct {
	Config Config

	log     *slog.Logger
	handles *handle.Table
}

func New(cfg *Config) *Bridge {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	return &Bridge{
		Config:  *cfg,
		log:     cfg.Log.With("component", "bridge"),
		handles: handle.NewTable(),
	}
}

// LiveHandles returns the number of handles not yet dropped.
func (b *Bridge) LiveHandles() int {
	return b.handles.Len()
}

// document is what a Document handle owns.
type document struct {
	doc  *dom.Document
	frag *fragment.Fragment
}

// document resolves a document handle for reading. Documents with an open
// editing session are not readable.
func (b *Bridge) document(op, arg string, h Handle) (*document, error) {
	d, err := handle.Get[*document](b.handles, h, handle.Document)
	if err != nil {
		return nil, wrap(op, arg, err)
	}
	if d.doc.Editing() {
		return nil, errorf(CodeSessionOpen, op, arg, "document %s is being edited", h)
	}
	return d, nil
}

// ref converts a host node reference.
func ref(op string, doc *dom.Document, r int32) (dom.NodeRef, error) {
	if r < 0 || !doc.Contains(dom.NodeRef(r)) {
		return 0, errorf(CodeOutOfRange, op, "ref", "node %d not in document of %d nodes", r, doc.Len())
	}
	return dom.NodeRef(r), nil
}

func (b *Bridge) snapshot(op string, h Handle) (*NodeSnapshot, error) {
	n, err := handle.Get[*NodeSnapshot](b.handles, h, handle.Node)
	if err != nil {
		return nil, wrap(op, "node", err)
	}
	return n, nil
}

func (b *Bridge) element(op string, h Handle) (*ElementSnapshot, error) {
	e, err := handle.Get[*ElementSnapshot](b.handles, h, handle.Element)
	if err != nil {
		return nil, wrap(op, "element", err)
	}
	return e, nil
}

func (b *Bridge) attribute(op string, h Handle) (*AttributeSnapshot, error) {
	a, err := handle.Get[*AttributeSnapshot](b.handles, h, handle.Attribute)
	if err != nil {
		return nil, wrap(op, "attribute", err)
	}
	return a, nil
}
