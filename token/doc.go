// Package token provides tokenization of markup text.
//
// [Tokenize] splits bytes into start tags, end tags, self-closing tags,
// character data, comments and directives. Every token carries a [Pos]
// so that parse errors can point at the offending input.
//
// Tokenize does not check nesting; that is left to package parse.
package token
