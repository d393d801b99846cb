package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse      = errors.New("parse error")
	ErrUnclosed   = fmt.Errorf("%w: unclosed element", ErrParse)
	ErrMismatched = fmt.Errorf("%w: mismatched end tag", ErrParse)
	ErrStrayEnd   = fmt.Errorf("%w: end tag without start tag", ErrParse)
	ErrTooDeep    = fmt.Errorf("%w: elements nested too deep", ErrParse)
)
