package cast

import "fmt"

const errPrefix = "Illegal type conversion."

// ConversionError is returned by every failed conversion.
//
// Two ConversionErrors are considered equal by [errors.Is] when their messages
// match, so a failure can be compared against [ErrNumericOverflow] or
// [ErrLossOfPrecision] regardless of its cause.
type ConversionError struct {
	Message string
	Cause   error
}

var (
	// ErrNumericOverflow indicates that a value does not fit in the range of
	// the target type.
	ErrNumericOverflow = NewConversionError(errPrefix+" Numeric overflow.", nil)

	// ErrLossOfPrecision indicates that a value has a fractional component
	// that an integer target cannot hold.
	ErrLossOfPrecision = NewConversionError(errPrefix+" Loss of precision.", nil)
)

const (
	msgNumberToBool = errPrefix + " Numeric value cannot be converted to Boolean."
	msgStringToBool = errPrefix + " String value cannot be converted to Boolean."
	msgCharToBool   = errPrefix + " Char value cannot be converted to Boolean."
	msgStringToChar = errPrefix + " String value cannot be converted to Char."
)

// NewConversionError returns a ConversionError with the given message and
// optional cause.
func NewConversionError(message string, cause error) *ConversionError {
	return &ConversionError{Message: message, Cause: cause}
}

// NewUnsupportedConversionError returns the error reported when no conversion
// exists from inputType to outputType.
func NewUnsupportedConversionError(inputType, outputType string) *ConversionError {
	return NewConversionError(
		fmt.Sprintf("%s Cannot convert from '%s' to '%s'.", errPrefix, inputType, outputType),
		nil,
	)
}

func (e *ConversionError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a ConversionError with the same message.
func (e *ConversionError) Is(target error) bool {
	t, ok := target.(*ConversionError)
	return ok && t != nil && t.Message == e.Message
}

func errNumericOverflow(cause error) error {
	return NewConversionError(ErrNumericOverflow.Message, cause)
}

func errLossOfPrecision() error {
	return NewConversionError(ErrLossOfPrecision.Message, nil)
}

// errMalformed wraps a native parse failure.
func errMalformed(cause error) error {
	return NewConversionError(fmt.Sprintf("%s %s.", errPrefix, cause), cause)
}

func errUnsupported[T Target](v Value) error {
	var zero T
	return NewUnsupportedConversionError(v.TypeName(), fmt.Sprintf("%T", zero))
}
