package grammar

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/atcmd.go/pkg/parser"
)

// Type is the type of a parameter in a grammar.
type Type int

const (
	// TypeBoolean decodes a single bit.
	TypeBoolean Type = iota + 1
	// TypeHexadecimal decodes a hex integer.
	TypeHexadecimal
	// TypeDecimal decodes a decimal integer.
	TypeDecimal
	// TypeBytes decodes a hex byte array.
	TypeBytes

	typeLast
)

var typeNames = map[string]Type{
	"boolean":     TypeBoolean,
	"bit":         TypeBoolean,
	"hexadecimal": TypeHexadecimal,
	"hex":         TypeHexadecimal,
	"decimal":     TypeDecimal,
	"dec":         TypeDecimal,
	"bytes":       TypeBytes,
	"byte_array":  TypeBytes,
}

// ParseType converts a type name.
func ParseType(name string) (Type, error) {
	if t, ok := typeNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown parameter type %q", name)
}

// IsValid checks if it's a known type.
func (t Type) IsValid() bool {
	return t >= TypeBoolean && t < typeLast
}

// IsScalar indicates the parameter decodes to an integer.
func (t Type) IsScalar() bool {
	return t.IsValid() && t != TypeBytes
}

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeHexadecimal:
		return "hexadecimal"
	case TypeDecimal:
		return "decimal"
	case TypeBytes:
		return "bytes"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParameterType maps to the parser type of scalars.
func (t Type) ParameterType() parser.ParameterType {
	switch t {
	case TypeBoolean:
		return parser.ParameterBoolean
	case TypeHexadecimal:
		return parser.ParameterHexadecimal
	case TypeDecimal:
		return parser.ParameterDecimal
	}
	return parser.ParameterType(-1)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseType(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Type) MarshalYAML() (interface{}, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid parameter type %d", int(t))
	}
	return t.String(), nil
}
