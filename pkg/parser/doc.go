// Package parser provides the line command parser.
package parser

// A received line is scanned left to right by a Context holding a borrowed
// view of the line and a single cursor. A command dispatch layer drives the
// Context through Compare calls (header, then command literal) followed by
// GetParameter / GetByteArray calls, one per expected field.
//
// Each call either succeeds and advances the cursor, or fails with one of the
// ErrorKind values and leaves the cursor untouched, so a failed Compare can
// be retried at the same position with another literal.
//
// Example:
//
//	ctx := parser.NewContext([]byte("AT$TEST=1,2A,15#"))
//	ctx.Compare(parser.ModeHeader, "AT")
//	ctx.Compare(parser.ModeCommand, "$TEST=")
//	enable, _ := ctx.GetParameter(parser.ParameterBoolean, ',', false)
//	mask, _ := ctx.GetParameter(parser.ParameterHexadecimal, ',', false)
//	count, _ := ctx.GetParameter(parser.ParameterDecimal, '#', true)
