package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/liveview-native/core-go/dom"
	"github.com/liveview-native/core-go/token"
)

// shape lists nodes in document order with their depth.
func shape(t *testing.T, doc *dom.Document) []string {
	t.Helper()
	var res []string
	err := doc.Walk(doc.Root(), func(ref dom.NodeRef, depth int) bool {
		n := doc.Get(ref)
		s := n.String()
		for _, a := range n.Attributes {
			s += " " + a.Name.String()
			if a.Value != nil {
				s += "=" + *a.Value
			}
		}
		for range depth {
			s = "." + s
		}
		res = append(res, s)
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestParseOK(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: ``, want: []string{"Root"}},
		{in: "  \n\t ", want: []string{"Root"}},
		{in: `hi`, want: []string{"Root", `.Leaf("hi")`}},
		{
			in:   `<a><b>hi</b></a>`,
			want: []string{"Root", ".Element(a)", "..Element(b)", `...Leaf("hi")`},
		},
		{
			in:   `<a/><b/>`,
			want: []string{"Root", ".Element(a)", ".Element(b)"},
		},
		{
			in:   `<svg:rect xlink:href="#x" width=10 hidden/>`,
			want: []string{"Root", ".Element(svg:rect) xlink:href=#x width=10 hidden"},
		},
		{
			in:   `<!DOCTYPE html><!-- c --><p>  a &amp; b  </p>`,
			want: []string{"Root", ".Element(p)", `..Leaf("a & b")`},
		},
		{
			in: `
        <VStack modifiers="">
            <VStack>
                <LiveForm id="login" phx-submit="login">
                    <TextField name="email" modifiers="">
                        Email
                    </TextField>
                </LiveForm>
            </VStack>
        </VStack>`,
			want: []string{
				"Root",
				".Element(VStack) modifiers=",
				"..Element(VStack)",
				"...Element(LiveForm) id=login phx-submit=login",
				"....Element(TextField) name=email modifiers=",
				`.....Leaf("Email")`,
			},
		},
	}
	for _, tt := range tests {
		doc, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, shape(t, doc)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
		if doc.Editing() {
			t.Errorf("%q: session left open", tt.in)
		}
	}
}

func TestParseKeepWhitespace(t *testing.T) {
	doc, err := ParseString("<a> x <b/>\n</a>", KeepWhitespace(true))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Root", ".Element(a)", `..Leaf(" x ")`, "..Element(b)", `..Leaf("\n")`}
	if diff := cmp.Diff(want, shape(t, doc)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseErr(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`<a>`, ErrUnclosed},
		{`<a><b></a>`, ErrMismatched},
		{`</a>`, ErrStrayEnd},
		{`<a></b>`, ErrMismatched},
		{`<a`, token.ErrUnterminated},
	}
	for _, tt := range tests {
		doc, err := ParseString(tt.in)
		if doc != nil {
			t.Errorf("%q: expected no document", tt.in)
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.err, err)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected a parse error, got %v", tt.in, err)
		}
	}
}

func nested(depth int, text string) string {
	return strings.Repeat("<a>", depth) + text + strings.Repeat("</a>", depth)
}

func TestParseMaxDepth(t *testing.T) {
	doc, err := ParseString(nested(DefaultMaxDepth, "x"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := doc.Len(), DefaultMaxDepth+2; got != want {
		t.Errorf("expected %d nodes, got %d", want, got)
	}
	tests := []struct {
		in   string
		opts []ParseOption
	}{
		{nested(DefaultMaxDepth+1, "x"), nil},
		{nested(1<<16, ""), nil},
		{nested(DefaultMaxDepth, "<b/>"), nil},
		{`<a><b><c/></b></a>`, []ParseOption{MaxDepth(2)}},
	}
	for _, tt := range tests {
		_, err := ParseString(tt.in, tt.opts...)
		if !errors.Is(err, ErrTooDeep) || !errors.Is(err, ErrParse) {
			t.Errorf("%.20q: expected %v, got %v", tt.in, ErrTooDeep, err)
		}
	}
	if _, err := ParseString(`<a><b/></a>`, MaxDepth(2)); err != nil {
		t.Errorf("depth 2: %v", err)
	}
}

func TestSplitName(t *testing.T) {
	tests := map[string]dom.Name{
		"a":      {Local: "a"},
		"svg:a":  {Namespace: "svg", Local: "a"},
		":a":     {Local: ":a"},
		"a:":     {Local: "a:"},
		"x:y:z":  {Namespace: "x", Local: "y:z"},
		"phx-on": {Local: "phx-on"},
	}
	for in, want := range tests {
		if got := SplitName(in); got != want {
			t.Errorf("%q: expected %v got %v", in, want, got)
		}
	}
}
