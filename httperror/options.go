package httperror

// Arg is one positional argument accepted by New, Wrap and Normalize.
// It is implemented by Status, Message, Options and *Options. A nil Arg is an
// absent slot.
type Arg interface{ isArg() }

// Status is a positional HTTP status argument.
type Status int

// Message is a positional message argument.
type Message string

// Options is the canonical construction record. Nil pointer fields are unset.
type Options struct {
	Status  *int
	Message *string
	// Name overrides the name computed from the status.
	Name *string
	// Expose overrides the status < 500 default.
	Expose *bool
	Cause  any
	// Extra holds caller-defined fields. They are carried through Normalize
	// untouched and ignored by New.
	Extra map[string]any
}

func (Status) isArg()  {}
func (Message) isArg() {}
func (Options) isArg() {}

// Ptr returns a pointer to v, for filling Options fields inline.
func Ptr[T any](v T) *T { return &v }

// Normalize resolves up to three positional arguments into one Options record.
// Arguments past the third are ignored.
//
// Rules, first match wins:
//   - Status first: Message second (Options third) or Options second,
//     whose Message is used
//   - Message first: Options second, whose Status is used
//   - Message second: Options third
//   - otherwise the Options in the second slot, else the first, supply
//     Status and Message, unless an Options was passed third
//
// Status and Message of the result are always the resolved values, nil when
// nothing resolved them. Every other field of the base Options is kept.
func Normalize(args ...Arg) Options {
	var a1, a2, a3 Arg
	switch {
	case len(args) >= 3:
		a1, a2, a3 = args[0], args[1], args[2]
	case len(args) == 2:
		a1, a2 = args[0], args[1]
	case len(args) == 1:
		a1 = args[0]
	}

	var (
		status  *int
		message *string
	)
	base, hasBase := asOptions(a3)

	switch v1 := a1.(type) {
	case Status:
		status = Ptr(int(v1))
		if m, ok := a2.(Message); ok {
			message = Ptr(string(m))
		} else if o, ok := asOptions(a2); ok {
			base, hasBase = o, true
			message = o.Message
		}
	case Message:
		message = Ptr(string(v1))
		base, hasBase = asOptions(a2)
		status = base.Status
	default:
		if m, ok := a2.(Message); ok {
			message = Ptr(string(m))
			break
		}
		if hasBase {
			break
		}
		if o, ok := asOptions(a2); ok {
			base, hasBase = o, true
		} else {
			base, hasBase = asOptions(a1)
		}
		status = base.Status
		message = base.Message
	}

	out := base
	if hasBase {
		out.Extra = cloneMap(base.Extra)
	}
	out.Status = status
	out.Message = message

	return out
}

func asOptions(a Arg) (Options, bool) {
	switch o := a.(type) {
	case Options:
		return o, true
	case *Options:
		if o != nil {
			return *o, true
		}
	}

	return Options{}, false
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))
	for k, v := range in {
		// Nested maps with string keys are cloned too so the caller keeps no reference.
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}

		out[k] = v
	}

	return out
}
