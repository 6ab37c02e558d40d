package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 13)
	require.Equal(t, ErrUnknownCommand, kinds[0])
	require.Equal(t, ErrParameterByteArrayInvalidLength, kinds[len(kinds)-1])
	names := make(map[string]bool)
	for _, k := range kinds {
		require.NotContains(t, names, k.Error())
		names[k.Error()] = true
	}
	require.Equal(t, "parser error 99", ErrorKind(99).Error())
}

func TestError(t *testing.T) {
	err := newError(ErrHeaderNotFound, 3)
	require.Equal(t, "header not found at 3", err.Error())
	require.True(t, errors.Is(err, ErrHeaderNotFound))
	require.False(t, errors.Is(err, ErrUnknownCommand))

	wrapped := fmt.Errorf("line 2: %w", err)
	require.True(t, errors.Is(wrapped, ErrHeaderNotFound))
	require.Equal(t, ErrHeaderNotFound, KindOf(wrapped))

	var perr *Error
	require.True(t, errors.As(wrapped, &perr))
	require.Equal(t, 3, perr.Index)

	require.Equal(t, ErrorKind(0), KindOf(errors.New("other")))
	require.Equal(t, ErrorKind(0), KindOf(nil))
}

func TestStrings(t *testing.T) {
	require.Equal(t, "header", ModeHeader.String())
	require.Equal(t, "command", ModeCommand.String())
	require.Equal(t, "Mode(5)", Mode(5).String())
	require.True(t, ModeHeader.IsValid())
	require.False(t, Mode(2).IsValid())
	require.Equal(t, "boolean", ParameterBoolean.String())
	require.Equal(t, "hexadecimal", ParameterHexadecimal.String())
	require.Equal(t, "decimal", ParameterDecimal.String())
	require.Equal(t, "ParameterType(9)", ParameterType(9).String())
}
