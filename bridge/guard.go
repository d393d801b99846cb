package bridge

import (
	"fmt"
	"runtime/debug"
)

// guard runs fn as entry point op. A panic in fn becomes an internal
// fault. On any error zero is returned and the error is logged and passed
// to the reporter.
func guard[T any](b *Bridge, op string, zero T, fn func() (T, error)) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("recovered panic", "op", op, "panic", r, "stack", string(debug.Stack()))
			err = &Error{Code: CodeInternalFault, Op: op, Message: fmt.Sprint(r)}
		}
		if err != nil {
			res = zero
			be := wrap(op, "", err)
			if be.Op == "" {
				be.Op = op
			}
			err = be
			b.report(be)
		}
	}()
	return fn()
}

func guard0(b *Bridge, op string, fn func() error) error {
	_, err := guard(b, op, struct{}{}, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// report logs err and hands it to the reporter. A panicking reporter is
// logged; the entry point still returns err.
func (b *Bridge) report(err *Error) {
	b.log.Warn("entry point failed", "op", err.Op, "code", err.Code, "error", err.Message)
	if b.Config.Reporter == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("reporter panicked", "op", err.Op, "panic", r, "stack", string(debug.Stack()))
		}
	}()
	b.Config.Reporter.Report(err)
}
