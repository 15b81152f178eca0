package httperror

import (
	"errors"
)

// Wrap builds an Error like New and attaches cause to it. If cause is nil, an
// opaque cause is created. A Cause set in Options is replaced.
func Wrap(cause error, args ...Arg) (*Error, error) {
	if cause == nil {
		cause = errors.New("unknown")
	}

	o := Normalize(args...)
	o.Cause = cause

	return build(o)
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - an *Error anywhere in err's chain => returned as-is (same pointer)
//   - another contract.StatusError with a valid status => new Error keeping
//     its status, expose flag and message, with err as cause
//   - otherwise a 500 Error with err as cause and an empty message
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) && e != nil {
		return e
	}

	if se, ok := AsHTTPError(err); ok {
		var msg *string
		if m, ok := se.(interface{ Message() string }); ok {
			msg = Ptr(m.Message())
		}

		out, buildErr := build(Options{
			Status:  Ptr(se.Status()),
			Message: msg,
			Expose:  Ptr(se.Expose()),
			Cause:   err,
		})
		if buildErr == nil {
			return out
		}
	}

	out, _ := build(Options{Cause: err})

	return out
}
