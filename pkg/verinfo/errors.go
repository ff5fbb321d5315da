package verinfo

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // malformed or truncated resource data
	ErrKindNotFound                // missing keyed child or string
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrFormat) holds
// for every format error regardless of its message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Kind == t.Kind
}

// Sentinels commonly returned by this package.
var (
	// ErrFormat indicates malformed length fields, a truncated buffer, or an
	// unparsable version-string component.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "malformed version resource"}
	// ErrNotFound indicates a missing keyed child on lookup.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)

func formatErr(msg string, err error) *Error {
	return &Error{Kind: ErrKindFormat, Msg: msg, Err: err}
}
