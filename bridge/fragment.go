package bridge

import (
	"github.com/liveview-native/core-go/fragment"
	"github.com/liveview-native/core-go/handle"
	"github.com/liveview-native/core-go/parse"
)

// DocumentMergeFragmentJSON merges a LiveView rendered fragment into doc.
// The first call on a document installs the full rendered tree; later
// calls merge diffs into it. The rendered markup is then merged into doc
// as by DocumentMerge. Invalid JSON or markup is a parse_failure and
// leaves the held fragment unchanged.
func (b *Bridge) DocumentMergeFragmentJSON(doc Handle, json string, handler ChangeHandler) error {
	const op = "DocumentMergeFragmentJSON"
	return guard0(b, op, func() error {
		d, err := b.document(op, "doc", doc)
		if err != nil {
			return err
		}
		var next *fragment.Fragment
		if d.frag == nil {
			next, err = fragment.New([]byte(json))
		} else {
			next = d.frag.Clone()
			err = next.Merge([]byte(json))
		}
		if err != nil {
			return wrap(op, "json", err)
		}
		markup, err := next.Render()
		if err != nil {
			return wrap(op, "json", err)
		}
		to, err := parse.ParseString(markup)
		if err != nil {
			return wrap(op, "json", err)
		}
		d.frag = next
		b.log.Debug("fragment rendered", "doc", doc, "nodes", to.Len())
		return b.merge(op, doc, d.doc, to, handler)
	})
}

// DocumentFragmentJSON returns the fragment held for doc, or "" before
// the first DocumentMergeFragmentJSON.
func (b *Bridge) DocumentFragmentJSON(doc Handle) (string, error) {
	const op = "DocumentFragmentJSON"
	return guard(b, op, "", func() (string, error) {
		d, err := handle.Get[*document](b.handles, doc, handle.Document)
		if err != nil {
			return "", wrap(op, "doc", err)
		}
		if d.frag == nil {
			return "", nil
		}
		return string(d.frag.Bytes()), nil
	})
}
