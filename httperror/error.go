package httperror

import (
	"errors"
	"net/http"

	"github.com/next-trace/scg-httperror/contract"
)

// ErrInvalidStatus is returned when the resolved status is outside 400..599.
var ErrInvalidStatus = errors.New("invalid error status")

const defaultStatus = http.StatusInternalServerError

// Error is an HTTP error.
//
// Fields:
//   - status:  400..599, fixed at construction
//   - expose:  whether message is safe to show to a client
//   - name:    identifier, defaults to StatusName(status)
//   - message: human detail, may be empty
//   - cause:   opaque originating value, returned by Unwrap when it is an error
type Error struct {
	status  int
	expose  bool
	name    string
	message string
	cause   any
}

// compile-time guarantee that *Error implements contract.HTTPError
var _ contract.HTTPError = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.message == "" {
		return e.name
	}

	return e.name + ": " + e.message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	err, _ := e.cause.(error)

	return err
}

// ------ contract.HTTPError getters

// The getters return zero values on a nil receiver.

func (e *Error) Status() int {
	if e == nil {
		return 0
	}

	return e.status
}

func (e *Error) Expose() bool {
	if e == nil {
		return false
	}

	return e.expose
}

func (e *Error) Name() string {
	if e == nil {
		return ""
	}

	return e.name
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}

	return e.message
}

func (e *Error) Cause() any {
	if e == nil {
		return nil
	}

	return e.cause
}

// ------ constructors

// New builds an Error from up to three positional arguments, resolved by
// Normalize. The status defaults to 500. A status outside 400..599 yields
// ErrInvalidStatus and no Error.
//
//	New()                                          // 500 InternalServerError
//	New(Status(404))                               // NotFoundError
//	New(Message("boom"))                           // 500 with message
//	New(Status(400), Message("bad"), Options{...}) // positional wins over Options
//	New(Message("bad"), Options{Status: Ptr(400)})
func New(args ...Arg) (*Error, error) {
	return build(Normalize(args...))
}

// Must is like New but panics on an invalid status.
// It is meant for package-level error values.
func Must(args ...Arg) *Error {
	e, err := New(args...)
	if err != nil {
		panic(err)
	}

	return e
}

// FromStatus builds an Error with the given status. The Message of opts, if
// any, is used; its Status is ignored.
func FromStatus(status int, opts ...Options) (*Error, error) {
	return New(Status(status), firstOptions(opts))
}

// FromMessage builds an Error with the given message. The Status of opts, if
// any, is used; its Message is ignored.
func FromMessage(message string, opts ...Options) (*Error, error) {
	return New(Message(message), firstOptions(opts))
}

// FromStatusMessage builds an Error with the given status and message.
func FromStatusMessage(status int, message string, opts ...Options) (*Error, error) {
	return New(Status(status), Message(message), firstOptions(opts))
}

// FromOptions builds an Error from an options record alone.
func FromOptions(opts Options) (*Error, error) {
	return New(opts)
}

func firstOptions(opts []Options) Arg {
	if len(opts) == 0 {
		return nil
	}

	return opts[0]
}

func build(o Options) (*Error, error) {
	status := defaultStatus
	if o.Status != nil {
		status = *o.Status
	}

	if status < 400 || status >= 600 {
		return nil, ErrInvalidStatus
	}

	e := &Error{
		status: status,
		expose: status < http.StatusInternalServerError,
		name:   StatusName(status),
		cause:  o.Cause,
	}
	if o.Message != nil {
		e.message = *o.Message
	}

	if o.Name != nil {
		e.name = *o.Name
	}

	if o.Expose != nil {
		e.expose = *o.Expose
	}

	return e, nil
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// WithName replaces the error name and returns the same receiver for chaining.
func (e *Error) WithName(name string) *Error {
	if e == nil {
		return nil
	}

	e.name = name

	return e
}

// WithExpose replaces the exposure flag and returns the same receiver for chaining.
func (e *Error) WithExpose(expose bool) *Error {
	if e == nil {
		return nil
	}

	e.expose = expose

	return e
}

// ------ predicates

// IsHTTPError reports whether v is an *Error or any other error exposing a
// numeric Status() and boolean Expose().
//
// A nil *Error is rejected. A typed nil of any other implementation is
// reported as true.
func IsHTTPError(v any) bool {
	switch e := v.(type) {
	case nil:
		return false
	case *Error:
		return e != nil
	case contract.StatusError:
		return true
	}

	return false
}

// AsHTTPError finds the first error in err's chain that satisfies
// contract.StatusError. A nil *Error found in the chain yields false.
func AsHTTPError(err error) (contract.StatusError, bool) {
	var se contract.StatusError
	if errors.As(err, &se) {
		if e, ok := se.(*Error); ok && e == nil {
			return nil, false
		}

		return se, true
	}

	return nil, false
}
