package parse

// DefaultMaxDepth is the element nesting limit used unless MaxDepth is
// given. Every walk over a document recurses once per level.
const DefaultMaxDepth = 10000

type parseOpts struct {
	keepWhitespace bool
	maxDepth       int
}

type ParseOption func(*parseOpts)

// KeepWhitespace keeps whitespace-only text as leaves and does not trim
// text. By default indentation between tags is not content.
func KeepWhitespace(v bool) ParseOption {
	return func(o *parseOpts) { o.keepWhitespace = v }
}

// MaxDepth sets the element nesting limit. Deeper input fails with
// ErrTooDeep. Values below 1 select DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
