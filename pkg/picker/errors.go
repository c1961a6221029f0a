package picker

// ErrKind classifies a picker failure.
type ErrKind uint8

const (
	KindUnknown       ErrKind = iota // Catch-all, e.g. handle release failure
	KindTooLarge                     // File exceeds the size bound
	KindInvalidType                  // No accept pattern matches
	KindLimitExceeded                // Maximum file count reached
)

// String returns the string representation of the ErrKind.
func (k ErrKind) String() string {
	switch k {
	case KindTooLarge:
		return "too_large"
	case KindInvalidType:
		return "invalid_type"
	case KindLimitExceeded:
		return "limit_exceeded"
	default:
		return "unknown"
	}
}

// Error is a non-fatal picker failure reported through a Sink.
type Error struct {
	// Kind classifies the failure.
	Kind ErrKind

	// Message is a human-readable description.
	Message string

	// File is the offending file, when the failure concerns one.
	File *File

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Sink receives picker failures. Implementations must not block; they are
// called on the event goroutine that produced the failure.
type Sink func(*Error)

// report sends err to sink if one is configured.
func report(sink Sink, err *Error) {
	if sink != nil && err != nil {
		sink(err)
	}
}
