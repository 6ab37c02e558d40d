package grammar

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/robotalks/atcmd.go/pkg/parser"
)

func TestDefault(t *testing.T) {
	g := Default()
	require.Equal(t, "AT", g.Header)
	require.NotNil(t, g.Find("test"))
	require.Nil(t, g.Find("nope"))
	require.NoError(t, g.Validate())
}

func TestMatch(t *testing.T) {
	g := Default()
	testCases := []struct {
		line   string
		cmd    string
		values []interface{}
	}{
		{"AT$TEST=1,2A,15#", "test", []interface{}{true, int32(0x2A), int32(15)}},
		{"AT$TEST=0,00,-1\r\n", "test", []interface{}{false, int32(0), int32(-1)}},
		{"AT?", "ping", nil},
		{"AT$RST", "reset", nil},
		{"AT$ADC=6", "adc", []interface{}{int32(6)}},
		{"AT$GPIO=13,1", "gpio", []interface{}{int32(13), true}},
		{"AT$NVMW=0010,FF", "nvm_write", []interface{}{int32(0x10), int32(0xFF)}},
		{"AT$SF=0102AABB,0", "send", []interface{}{[]byte{1, 2, 0xAA, 0xBB}, false}},
	}
	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			res, err := g.Match([]byte(tc.line))
			require.NoError(t, err)
			require.Equal(t, tc.cmd, res.Command.Name)
			require.Len(t, res.Values, len(tc.values))
			for n, v := range res.Values {
				require.Equal(t, tc.values[n], v.Interface())
			}
		})
	}
}

func TestMatchErrors(t *testing.T) {
	g := Default()
	testCases := []struct {
		line  string
		kind  parser.ErrorKind
		param string
	}{
		{"XX$RST", parser.ErrHeaderNotFound, ""},
		{"AT$NOPE", parser.ErrUnknownCommand, ""},
		{"AT", parser.ErrUnknownCommand, ""},
		{"AT$TEST=2,2A,15#", parser.ErrParameterBitInvalid, "enable"},
		{"AT$TEST=1,2A2,15#", parser.ErrParameterHexaOddSize, "mask"},
		{"AT$TEST=1,2A", parser.ErrSeparatorNotFound, "mask"},
		{"AT$TEST=1,2A,", parser.ErrParameterNotFound, "count"},
		{"AT$TEST=1,2A,9999999999", parser.ErrParameterDecOverflow, "count"},
		{"AT$SF=00112233445566778899AABBCC,0", parser.ErrParameterByteArrayInvalidLength, "data"},
	}
	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			res, err := g.Match([]byte(tc.line))
			require.Nil(t, res)
			require.True(t, errors.Is(err, tc.kind), "got %v", err)
			var merr *MatchError
			if tc.param == "" {
				require.False(t, errors.As(err, &merr))
				return
			}
			require.True(t, errors.As(err, &merr))
			require.Equal(t, tc.param, merr.Param)
		})
	}
}

func TestMatchLongestLiteral(t *testing.T) {
	g := &Grammar{
		Header: "AT",
		Commands: []Command{
			{Name: "short", Literal: "$R"},
			{Name: "long", Literal: "$RD=", Params: []Param{
				{Name: "addr", Type: TypeHexadecimal, Separator: ",", Last: true},
			}},
		},
	}
	require.NoError(t, g.Validate())
	res, err := g.Match([]byte("AT$RD=10"))
	require.NoError(t, err)
	require.Equal(t, "long", res.Command.Name)
	v, ok := res.Value("addr")
	require.True(t, ok)
	require.Equal(t, "0x10", v.String())
	_, ok = res.Value("none")
	require.False(t, ok)

	res, err = g.Match([]byte("AT$RX"))
	require.NoError(t, err)
	require.Equal(t, "short", res.Command.Name)
}

func TestLoad(t *testing.T) {
	g, err := Load(strings.NewReader(`
header: "#"
commands:
  - name: write
    command: W
    params:
      - {name: data, type: byte_array, separator: ";", max_length: 4, last: true}
`))
	require.NoError(t, err)
	require.Equal(t, TypeBytes, g.Commands[0].Params[0].Type)
	res, err := g.Match([]byte("#WCAFE"))
	require.NoError(t, err)
	require.Equal(t, "cafe", res.Values[0].String())
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		msg  []string
	}{
		{"empty", "", []string{"empty grammar"}},
		{"unknown field", "header: AT\nfoo: 1\n", []string{"decode grammar", "foo"}},
		{"unknown type", "commands:\n  - name: a\n    command: A\n    params:\n      - {name: x, type: float, separator: \",\"}\n", []string{"unknown parameter type \"float\""}},
		{"no commands", "header: AT\n", []string{"no commands"}},
		{
			name: "aggregated",
			doc: `
header: AT
commands:
  - name: a
    command: $A
    params:
      - {name: x, separator: ",", last: true}
      - {name: x, type: dec, separator: ",,"}
      - {name: y, type: bytes, separator: ","}
      - {name: z, type: hex, separator: ",", max_length: 2}
  - name: a
    command: $A
  - command: $B
`,
			msg: []string{
				"a.params[0]: invalid type 0",
				"a.params[0]: last parameter must be the final one",
				"a.params[1]: duplicated name \"x\"",
				"a.params[1]: separator must be a single byte",
				"a.params[2]: max_length required for bytes",
				"a.params[3]: max_length only applies to bytes",
				"commands[1]: duplicated name \"a\"",
				"a: duplicated command \"$A\"",
				"commands[2]: name required",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Load(strings.NewReader(tc.doc))
			require.Nil(t, g)
			require.Error(t, err)
			for _, msg := range tc.msg {
				require.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	require.NoError(t, verr.Aggregate())
	require.Equal(t, "", verr.Error())
	verr.Addf("bad %d", 1)
	require.Equal(t, "invalid grammar: bad 1", verr.Aggregate().Error())
	verr.Addf("bad %d", 2)
	require.Equal(t, "invalid grammar:\n  bad 1\n  bad 2", verr.Error())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grammar.yaml")
	out, err := yaml.Marshal(Default())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, out, 0644))
	g, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, Default(), g)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.True(t, os.IsNotExist(err))
}

func TestType(t *testing.T) {
	for name, expected := range map[string]Type{
		"bit": TypeBoolean, "Hex": TypeHexadecimal, " dec ": TypeDecimal, "bytes": TypeBytes,
	} {
		typ, err := ParseType(name)
		require.NoError(t, err)
		require.Equal(t, expected, typ)
	}
	_, err := ParseType("float")
	require.Error(t, err)
	require.True(t, TypeDecimal.IsScalar())
	require.False(t, TypeBytes.IsScalar())
	require.False(t, Type(0).IsValid())
	require.Equal(t, "Type(9)", Type(9).String())
	require.Equal(t, parser.ParameterHexadecimal, TypeHexadecimal.ParameterType())
	_, err = Type(0).MarshalYAML()
	require.Error(t, err)
}
