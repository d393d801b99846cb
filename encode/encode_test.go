package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/liveview-native/core-go/dom"
	"github.com/liveview-native/core-go/parse"
)

func mustParse(t *testing.T, in string) *dom.Document {
	t.Helper()
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return doc
}

func TestEncodePretty(t *testing.T) {
	doc := mustParse(t, `<a><b id="x">hi</b><svg:c/></a>`)
	want := `<a>
  <b id="x">
    hi
  </b>
  <svg:c/>
</a>
`
	var buf bytes.Buffer
	if err := Encode(doc, doc.Root(), &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != want {
		t.Errorf("expected\n%s\ngot\n%s", want, buf.String())
	}
}

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{``, ``},
		{`hello`, `hello`},
		{`<a/><b/>`, `<a/><b/>`},
		{`<VStack modifiers><Text>Hi</Text></VStack>`, `<VStack modifiers><Text>Hi</Text></VStack>`},
		{`<p title='a"b'>x &lt; y</p>`, `<p title="a&#34;b">x &lt; y</p>`},
	}
	for _, tt := range tests {
		doc := mustParse(t, tt.in)
		got := MustString(doc, doc.Root(), EncodeCompact(true))
		if got != tt.out {
			t.Errorf("%q: expected %q got %q", tt.in, tt.out, got)
		}
	}
}

func TestEncodeSubtree(t *testing.T) {
	doc := mustParse(t, `<a><b id="x">hi</b></a>`)
	kids, err := doc.Children(doc.Root())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := doc.Children(kids[0])
	got := MustString(doc, b[0], EncodeIndent(4))
	want := "<b id=\"x\">\n    hi\n</b>"
	if got != want {
		t.Errorf("expected %q got %q", want, got)
	}
	if _, err := doc.Lookup(dom.NodeRef(99)); err == nil {
		t.Fatal("expected out of range")
	}
	if err := Encode(doc, dom.NodeRef(99), &bytes.Buffer{}); err == nil {
		t.Error("expected encode error for unknown ref")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := `
<VStack modifiers="">
    <VStack>
        <LiveForm id="login" phx-submit="login">
            <TextField name="email" modifiers="">
                Email
            </TextField>
            <LiveSubmitButton modifiers="">
                <Text>Enter &amp; go</Text>
            </LiveSubmitButton>
        </LiveForm>
    </VStack>
</VStack>`
	doc := mustParse(t, in)
	pretty := MustString(doc, doc.Root())
	again := mustParse(t, pretty)
	a := MustString(doc, doc.Root(), EncodeCompact(true))
	b := MustString(again, again.Root(), EncodeCompact(true))
	if a != b {
		t.Errorf("round trip changed document:\n%s\n%s", a, b)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	doc := mustParse(t, `<a id="x">100%</a>`)
	got := MustString(doc, doc.Root(), EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences in %q", got)
	}
	if !strings.Contains(got, "100%") || strings.Contains(got, "%%") {
		t.Errorf("percent not preserved in %q", got)
	}
}
