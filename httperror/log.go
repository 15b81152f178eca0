package httperror

import (
	"go.uber.org/zap/zapcore"
)

// compile-time guarantee that *Error can be logged as a zap object
var _ zapcore.ObjectMarshaler = (*Error)(nil)

// MarshalLogObject lets an Error be logged with zap.Object. The cause is
// written as a string when it is an error and reflected otherwise.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e == nil {
		return nil
	}

	enc.AddString("name", e.name)
	enc.AddInt("status", e.status)
	enc.AddBool("expose", e.expose)

	if e.message != "" {
		enc.AddString("message", e.message)
	}

	switch c := e.cause.(type) {
	case nil:
	case error:
		enc.AddString("cause", c.Error())
	default:
		return enc.AddReflected("cause", c)
	}

	return nil
}
