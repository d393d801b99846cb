package encode

import (
	"bytes"
	"strings"

	"github.com/liveview-native/core-go/dom"
)

func MustString(doc *dom.Document, ref dom.NodeRef, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, ref, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
