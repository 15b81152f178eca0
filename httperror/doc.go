// Package httperror provides a single HTTP status-bearing error type and the
// argument normalization behind its constructors.
//
// An Error carries a status in the 400..599 range, an exposure flag telling
// transports whether the message is safe to send to a client, a name derived
// from the status, a message and an optional cause.
//
// Key characteristics:
//   - One builder, several calling conventions: New accepts up to three
//     positional arguments (Status, Message, Options) and From* helpers wrap
//     the common shapes
//   - Positional status and message always win over the same fields in Options
//   - Name defaults from the status table (404 => "NotFoundError")
//   - Expose defaults to true for 4xx and false for 5xx
//   - Cause preserved for errors.Is / errors.As via Unwrap
//
// Normalize is exported so that libraries defining their own error types can
// reuse the calling convention without constructing an Error.
package httperror
