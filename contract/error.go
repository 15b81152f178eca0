// Package contract exposes the minimal HTTP error interfaces used by other packages.
//
// Error types defined elsewhere interoperate with httperror by implementing
// StatusError; they do not need to import httperror at all.
package contract

// StatusError is the capability shared by every HTTP status-bearing error:
// a numeric status and whether its message may be shown to a client.
type StatusError interface {
	error
	Status() int
	Expose() bool
}

// HTTPError is the full read surface of an HTTP error.
//
// Implementations must:
//   - Keep Status() stable for the lifetime of the value.
//   - Return the cause unchanged (never a copy) from Cause().
//   - Support errors.Unwrap via Unwrap() when the cause is an error.
type HTTPError interface {
	StatusError
	Name() string
	Message() string
	Cause() any
	Unwrap() error
}
