package types

import "errors"

// Kind classifies a validation failure so callers can branch on what went
// wrong without parsing message text.
type Kind string

const (
	// InvalidNumber means an input that should be a decimal number is not.
	InvalidNumber Kind = "INVALID_NUMBER"
	// InvalidInteger means an input that should be a whole number is not.
	InvalidInteger Kind = "INVALID_INTEGER"
	// NonPositiveInput means a value that must be strictly greater than zero
	// is zero or negative.
	NonPositiveInput Kind = "NON_POSITIVE_INPUT"
	// NegativeInput means a value that may be zero but not negative is
	// negative.
	NegativeInput Kind = "NEGATIVE_INPUT"
	// InvalidRange means a parsed value falls outside its allowed range.
	InvalidRange Kind = "INVALID_RANGE"
	// MissingField means a required field is empty or whitespace.
	MissingField Kind = "MISSING_FIELD"
	// InvalidDate means a date failed to parse or names a day that does not
	// exist in the computed month.
	InvalidDate Kind = "INVALID_DATE"
	// InvalidSelection means a list index points outside the collection.
	InvalidSelection Kind = "INVALID_SELECTION"
	// CorruptStorage marks unreadable persisted data. It is recovered from
	// internally and only ever shows up in logs.
	CorruptStorage Kind = "CORRUPT_STORAGE"
)

// Error is a recoverable validation failure: a machine-readable kind plus a
// message short enough to show the user as-is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError builds a validation failure of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf reports the validation kind carried by err, or "" when err is not a
// validation failure (an I/O error, for example).
func KindOf(err error) Kind {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ""
}
