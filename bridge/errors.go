package bridge

import (
	"errors"
	"fmt"

	"github.com/liveview-native/core-go/dom"
	"github.com/liveview-native/core-go/fragment"
	"github.com/liveview-native/core-go/handle"
	"github.com/liveview-native/core-go/parse"
	"github.com/liveview-native/core-go/query"
)

// Error is the error returned by every Bridge entry point.
type Error struct {
	Code    string
	Op      string
	Arg     string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	s := e.Code
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Arg != "" {
		s += " (" + e.Arg + ")"
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by code, so errors.Is(err, ErrNullHandle) holds for
// any null handle error.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" {
		return e.Code == t.Code
	}
	if t.Message != "" {
		return e.Message == t.Message
	}
	return false
}

const (
	CodeNullHandle     = "null_handle"
	CodeOutOfRange     = "out_of_range"
	CodeTypeMismatch   = "type_mismatch"
	CodeParseFailure   = "parse_failure"
	CodeInternalFault  = "internal_fault"
	CodeSessionOpen    = "session_open"
	CodeHandlerFailure = "handler_failure"
)

var (
	ErrNullHandle     = &Error{Code: CodeNullHandle}
	ErrOutOfRange     = &Error{Code: CodeOutOfRange}
	ErrTypeMismatch   = &Error{Code: CodeTypeMismatch}
	ErrParseFailure   = &Error{Code: CodeParseFailure}
	ErrInternalFault  = &Error{Code: CodeInternalFault}
	ErrSessionOpen    = &Error{Code: CodeSessionOpen}
	ErrHandlerFailure = &Error{Code: CodeHandlerFailure}
)

func newError(code, op, arg string, err error) *Error {
	e := &Error{Code: code, Op: op, Arg: arg, Err: err}
	if err != nil {
		e.Message = err.Error()
	}
	return e
}

// classify maps an engine error to a bridge error code.
func classify(err error) string {
	switch {
	case errors.Is(err, handle.ErrNull),
		errors.Is(err, handle.ErrInvalid),
		errors.Is(err, handle.ErrStale):
		return CodeNullHandle
	case errors.Is(err, handle.ErrKind),
		errors.Is(err, dom.ErrNotLeaf),
		errors.Is(err, dom.ErrNotElement),
		errors.Is(err, dom.ErrNotContainer):
		return CodeTypeMismatch
	case errors.Is(err, dom.ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, dom.ErrSessionOpen):
		return CodeSessionOpen
	case errors.Is(err, parse.ErrParse),
		errors.Is(err, fragment.ErrFragment),
		errors.Is(err, query.ErrQuery):
		return CodeParseFailure
	default:
		return CodeInternalFault
	}
}

// wrap converts err into an *Error for op. Errors that already are
// bridge errors are returned as is.
func wrap(op, arg string, err error) *Error {
	if err == nil {
		return nil
	}
	var be *Error
	if errors.As(err, &be) {
		return be
	}
	return newError(classify(err), op, arg, err)
}

func errorf(code, op, arg, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Arg: arg, Message: fmt.Sprintf(format, args...)}
}
