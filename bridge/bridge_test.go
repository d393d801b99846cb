package bridge

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/liveview-native/core-go/encode"
	"github.com/liveview-native/core-go/handle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const liveForm = `
<VStack modifiers="">
    <VStack>
        <LiveForm id="login" phx-submit="login">
            <TextField name="email" modifiers="">
                Email
            </TextField>
            <LiveSubmitButton modifiers="">
                <Text>Enter</Text>
            </LiveSubmitButton>
        </LiveForm>
    </VStack>
</VStack>`

const success = `
<VStack modifiers="">
    <VStack>
        <Text>Success! Check your email for magic link</Text>
    </VStack>
</VStack>`

func newBridge(t *testing.T) (*Bridge, *[]*Error) {
	t.Helper()
	var reported []*Error
	b := New(&Config{
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Reporter: ReporterFunc(func(err *Error) { reported = append(reported, err) }),
	})
	return b, &reported
}

func mustParse(t *testing.T, b *Bridge, text string) Handle {
	t.Helper()
	res := b.DocumentParse(text)
	require.True(t, res.OK(), res.Error)
	require.Empty(t, res.Error)
	return res.Handle
}

type change struct {
	Type         byte
	Node, Parent int32
}

func recorder(doc Handle, changes *[]change) ChangeHandler {
	return ChangeHandlerFunc(func(h Handle, c byte, node, parent int32) error {
		if h != doc {
			return errors.New("wrong document")
		}
		*changes = append(*changes, change{c, node, parent})
		return nil
	})
}

func TestDropOnce(t *testing.T) {
	b, reported := newBridge(t)
	doc := b.DocumentEmpty()
	require.Equal(t, 1, b.LiveHandles())

	require.NoError(t, b.DocumentDrop(doc))
	assert.Equal(t, 0, b.LiveHandles())

	err := b.DocumentDrop(doc)
	assert.ErrorIs(t, err, ErrNullHandle)
	_, err = b.DocumentRoot(doc)
	assert.ErrorIs(t, err, ErrNullHandle)
	assert.Len(t, *reported, 2)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "DocumentRoot", be.Op)
	assert.Equal(t, "doc", be.Arg)
}

func TestNullHandles(t *testing.T) {
	b, _ := newBridge(t)
	_, err := b.DocumentRoot(handle.Null)
	assert.ErrorIs(t, err, ErrNullHandle)
	_, err = b.NodeType(handle.Null)
	assert.ErrorIs(t, err, ErrNullHandle)
	_, err = b.ElementTag(-3)
	assert.ErrorIs(t, err, ErrNullHandle)
	_, _, err = b.AttributeValue(12345)
	assert.ErrorIs(t, err, ErrNullHandle)
	assert.ErrorIs(t, b.NodeDrop(handle.Null), ErrNullHandle)
}

func TestWrongKind(t *testing.T) {
	b, _ := newBridge(t)
	doc := b.DocumentEmpty()
	_, err := b.NodeType(doc)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorIs(t, b.ElementDrop(doc), ErrTypeMismatch)
	assert.Equal(t, 1, b.LiveHandles())
}

func TestParseEmpty(t *testing.T) {
	b, _ := newBridge(t)
	doc := mustParse(t, b, "")
	root, err := b.DocumentRoot(doc)
	require.NoError(t, err)
	assert.Equal(t, int32(0), root)

	node, err := b.DocumentGetNode(doc, root)
	require.NoError(t, err)
	typ, err := b.NodeType(node)
	require.NoError(t, err)
	assert.Equal(t, byte(0), typ)

	kids, err := b.DocumentChildren(doc, root)
	require.NoError(t, err)
	assert.Empty(t, kids)

	parent, err := b.DocumentParent(doc, root)
	require.NoError(t, err)
	assert.Equal(t, NoRef, parent)

	s, err := b.DocumentString(doc)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestParseFailureIsData(t *testing.T) {
	b, reported := newBridge(t)
	res := b.DocumentParse(`<a><b></a>`)
	assert.False(t, res.OK())
	assert.Equal(t, handle.Null, res.Handle)
	assert.Contains(t, res.Error, "mismatched end tag")
	assert.Empty(t, *reported)
	assert.Equal(t, 0, b.LiveHandles())
}

func TestOutOfRange(t *testing.T) {
	b, _ := newBridge(t)
	doc := b.DocumentEmpty()
	for _, r := range []int32{math.MaxInt32, 1, -1, math.MinInt32} {
		_, err := b.DocumentGetNode(doc, r)
		assert.ErrorIs(t, err, ErrOutOfRange, "ref %d", r)
		_, err = b.DocumentChildren(doc, r)
		assert.ErrorIs(t, err, ErrOutOfRange, "ref %d", r)
		p, err := b.DocumentParent(doc, r)
		assert.ErrorIs(t, err, ErrOutOfRange, "ref %d", r)
		assert.Equal(t, NoRef, p)
		_, err = b.DocumentGetNodeLeafText(doc, r)
		assert.ErrorIs(t, err, ErrOutOfRange, "ref %d", r)
		_, err = b.DocumentNodeString(doc, r)
		assert.ErrorIs(t, err, ErrOutOfRange, "ref %d", r)
	}
	assert.Equal(t, 1, b.LiveHandles())
}

func TestChildrenOfParent(t *testing.T) {
	b, _ := newBridge(t)
	doc := mustParse(t, b, liveForm)
	var walk func(r int32)
	seen := 0
	walk = func(r int32) {
		kids, err := b.DocumentChildren(doc, r)
		require.NoError(t, err)
		for _, k := range kids {
			seen++
			p, err := b.DocumentParent(doc, k)
			require.NoError(t, err)
			assert.Equal(t, r, p)
			siblings, err := b.DocumentChildren(doc, p)
			require.NoError(t, err)
			assert.Contains(t, siblings, k)
			walk(k)
		}
	}
	walk(0)
	assert.Equal(t, 8, seen)
}

func TestLeafText(t *testing.T) {
	b, _ := newBridge(t)
	doc := mustParse(t, b, `<a><b>hi</b></a>`)
	text, err := b.DocumentGetNodeLeafText(doc, 3)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)

	for _, r := range []int32{0, 1, 2} {
		_, err := b.DocumentGetNodeLeafText(doc, r)
		assert.ErrorIs(t, err, ErrTypeMismatch, "ref %d", r)
	}

	node, err := b.DocumentGetNode(doc, 3)
	require.NoError(t, err)
	text, err = b.NodeLeafText(node)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	_, err = b.NodeElement(node)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestProjection(t *testing.T) {
	b, _ := newBridge(t)
	doc := mustParse(t, b, `<svg:rect xlink:href="#a" width="10" hidden/>`)
	node, err := b.DocumentGetNode(doc, 1)
	require.NoError(t, err)
	typ, err := b.NodeType(node)
	require.NoError(t, err)
	assert.Equal(t, byte(1), typ)
	_, err = b.NodeLeafText(node)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	elem, err := b.NodeElement(node)
	require.NoError(t, err)
	// the snapshots outlive the document
	require.NoError(t, b.DocumentDrop(doc))
	require.NoError(t, b.NodeDrop(node))

	ns, err := b.ElementNamespace(elem)
	require.NoError(t, err)
	assert.Equal(t, "svg", ns)
	tag, err := b.ElementTag(elem)
	require.NoError(t, err)
	assert.Equal(t, "rect", tag)

	attrs, err := b.ElementAttributes(elem)
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	type attr struct {
		ns, name, value string
		ok              bool
	}
	var got []attr
	for _, a := range attrs {
		ns, err := b.AttributeNamespace(a)
		require.NoError(t, err)
		name, err := b.AttributeName(a)
		require.NoError(t, err)
		v, ok, err := b.AttributeValue(a)
		require.NoError(t, err)
		got = append(got, attr{ns, name, v, ok})
		require.NoError(t, b.AttributeDrop(a))
	}
	assert.Equal(t, []attr{
		{"xlink", "href", "#a", true},
		{"", "width", "10", true},
		{"", "hidden", "", false},
	}, got)
	require.NoError(t, b.ElementDrop(elem))
	assert.Equal(t, 0, b.LiveHandles())
}

func TestRendering(t *testing.T) {
	b, _ := newBridge(t)
	doc := mustParse(t, b, `<a><b id="x">hi</b></a>`)
	s, err := b.DocumentString(doc)
	require.NoError(t, err)
	assert.Equal(t, "<a>\n  <b id=\"x\">\n    hi\n  </b>\n</a>", s)
	s, err = b.DocumentNodeString(doc, 3)
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestRenderingOptions(t *testing.T) {
	tests := []struct {
		opts      []encode.EncodeOption
		doc, node string
	}{
		{
			opts: []encode.EncodeOption{encode.EncodeIndent(4)},
			doc:  "<a>\n    <b id=\"x\">\n        hi\n    </b>\n</a>",
			node: "<b id=\"x\">\n    hi\n</b>",
		},
		{
			opts: []encode.EncodeOption{encode.EncodeCompact(true)},
			doc:  `<a><b id="x">hi</b></a>`,
			node: `<b id="x">hi</b>`,
		},
	}
	for _, tt := range tests {
		b := New(&Config{
			Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
			Encode: tt.opts,
		})
		doc := mustParse(t, b, `<a><b id="x">hi</b></a>`)
		s, err := b.DocumentString(doc)
		require.NoError(t, err)
		assert.Equal(t, tt.doc, s)
		s, err = b.DocumentNodeString(doc, 2)
		require.NoError(t, err)
		assert.Equal(t, tt.node, s)
	}
}

func TestDocumentQuery(t *testing.T) {
	b, _ := newBridge(t)
	doc := mustParse(t, b, liveForm)
	refs, err := b.DocumentQuery(doc, `tag == "Text" || attrs["id"] == "login"`)
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 7}, refs)

	_, err = b.DocumentQuery(doc, `tag +`)
	assert.ErrorIs(t, err, ErrParseFailure)
}

func TestConcurrentDocuments(t *testing.T) {
	b, _ := newBridge(t)
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				res := b.DocumentParse(liveForm)
				if !assert.True(t, res.OK()) {
					return
				}
				to := b.DocumentParse(success)
				assert.NoError(t, b.DocumentMerge(res.Handle, to.Handle, nil))
				assert.NoError(t, b.DocumentDrop(to.Handle))
				assert.NoError(t, b.DocumentDrop(res.Handle))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, b.LiveHandles())
}
