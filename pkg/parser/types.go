package parser

import "fmt"

// ParameterType tells how the text of a field is decoded.
type ParameterType int

const (
	// ParameterBoolean is a single '0' or '1'.
	ParameterBoolean ParameterType = iota
	// ParameterHexadecimal is an even number of hex digits.
	ParameterHexadecimal
	// ParameterDecimal is an optionally signed run of digits.
	ParameterDecimal
)

// String implements fmt.Stringer.
func (t ParameterType) String() string {
	switch t {
	case ParameterBoolean:
		return "boolean"
	case ParameterHexadecimal:
		return "hexadecimal"
	case ParameterDecimal:
		return "decimal"
	}
	return fmt.Sprintf("ParameterType(%d)", int(t))
}

// Mode selects where a literal is anchored.
type Mode int

const (
	// ModeCommand anchors the literal at the cursor.
	ModeCommand Mode = iota
	// ModeHeader anchors the literal at the start of the line.
	ModeHeader

	modeLast
)

// IsValid checks if it's a known mode.
func (m Mode) IsValid() bool {
	return m >= ModeCommand && m < modeLast
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "command"
	case ModeHeader:
		return "header"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
