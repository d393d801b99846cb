// Package encode renders dom documents as markup text.
//
// # Usage
//
//	doc, err := parse.ParseString(`<a><b id="x">hi</b></a>`)
//	...
//	// pretty printed, two space indent
//	err = encode.Encode(doc, doc.Root(), os.Stdout)
//
//	// one line
//	err = encode.Encode(doc, doc.Root(), os.Stdout, encode.EncodeCompact(true))
//
//	// coloured, for terminals
//	err = encode.Encode(doc, doc.Root(), os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Element children are written one per line at increasing depth. Elements
// without children are written self-closing. Text and attribute values are
// escaped so that the output parses back to the same tree.
//
// # Related Packages
//
//   - github.com/liveview-native/core-go/dom - document arena
//   - github.com/liveview-native/core-go/parse - parse text to documents
package encode
