package parser

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of parsing failures.
type ErrorKind int

const (
	// ErrUnknownCommand means the command literal doesn't match at the cursor.
	ErrUnknownCommand ErrorKind = iota + 1
	// ErrMode means Compare was called with an invalid Mode.
	ErrMode
	// ErrHeaderNotFound means the header literal doesn't start the line.
	ErrHeaderNotFound
	// ErrSeparatorNotFound means a non-last field has no trailing separator.
	ErrSeparatorNotFound
	// ErrParameterNotFound means the field is empty.
	ErrParameterNotFound
	// ErrParameterBitInvalid means a boolean field has a character other than '0' or '1'.
	ErrParameterBitInvalid
	// ErrParameterBitOverflow means a boolean field has more than one bit.
	ErrParameterBitOverflow
	// ErrParameterHexaInvalid means a hex field has a non-hex character.
	ErrParameterHexaInvalid
	// ErrParameterHexaOverflow means a hex value doesn't fit the destination.
	ErrParameterHexaOverflow
	// ErrParameterHexaOddSize means a hex field doesn't encode whole bytes.
	ErrParameterHexaOddSize
	// ErrParameterDecInvalid means a decimal field is malformed.
	ErrParameterDecInvalid
	// ErrParameterDecOverflow means a decimal value doesn't fit the destination.
	ErrParameterDecOverflow
	// ErrParameterByteArrayInvalidLength means a byte array is longer than allowed.
	ErrParameterByteArrayInvalidLength
)

var kindNames = map[ErrorKind]string{
	ErrUnknownCommand:                  "unknown command",
	ErrMode:                            "invalid mode",
	ErrHeaderNotFound:                  "header not found",
	ErrSeparatorNotFound:               "separator not found",
	ErrParameterNotFound:               "parameter not found",
	ErrParameterBitInvalid:             "invalid bit parameter",
	ErrParameterBitOverflow:            "bit parameter overflow",
	ErrParameterHexaInvalid:            "invalid hexadecimal parameter",
	ErrParameterHexaOverflow:           "hexadecimal parameter overflow",
	ErrParameterHexaOddSize:            "odd size hexadecimal parameter",
	ErrParameterDecInvalid:             "invalid decimal parameter",
	ErrParameterDecOverflow:            "decimal parameter overflow",
	ErrParameterByteArrayInvalidLength: "invalid byte array length",
}

// Kinds lists all error kinds in declaration order.
func Kinds() []ErrorKind {
	kinds := make([]ErrorKind, 0, len(kindNames))
	for k := ErrUnknownCommand; k <= ErrParameterByteArrayInvalidLength; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Error implements error.
func (k ErrorKind) Error() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("parser error %d", int(k))
}

// Error is returned by all Context operations.
type Error struct {
	Kind ErrorKind
	// Index is the offset in the line where the failing literal or field starts.
	Index int
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d", e.Kind.Error(), e.Index)
}

// Is makes errors.Is match on the ErrorKind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// Unwrap returns the ErrorKind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// KindOf extracts the ErrorKind from err, or 0 if err doesn't carry one.
func KindOf(err error) ErrorKind {
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return 0
}

func newError(kind ErrorKind, index int) error {
	return &Error{Kind: kind, Index: index}
}
