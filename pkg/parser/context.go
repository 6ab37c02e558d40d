package parser

import (
	"encoding/hex"
	"math"
)

// Context scans one received line.
// The line is borrowed and never modified. A Context must not be shared
// between goroutines.
type Context struct {
	buf   []byte
	start int
	sep   int
}

// NewContext creates a Context over a received line.
func NewContext(line []byte) *Context {
	return &Context{buf: line, sep: -1}
}

// Reset starts a new session over another line.
func (c *Context) Reset(line []byte) {
	c.buf, c.start, c.sep = line, 0, -1
}

// Len returns the number of bytes in the line.
func (c *Context) Len() int {
	return len(c.buf)
}

// Cursor returns the index of the first byte not consumed yet.
func (c *Context) Cursor() int {
	return c.start
}

// SeparatorIndex returns the index of the separator found by the latest
// extraction, or -1 if it found none.
func (c *Context) SeparatorIndex() int {
	return c.sep
}

// Remaining returns the bytes not consumed yet.
func (c *Context) Remaining() []byte {
	return c.buf[c.start:]
}

// Compare matches literal byte by byte at the position selected by mode.
// On success the cursor is moved right after the literal.
func (c *Context) Compare(mode Mode, literal string) error {
	var (
		anchor int
		kind   ErrorKind
	)
	switch mode {
	case ModeHeader:
		anchor, kind = 0, ErrHeaderNotFound
	case ModeCommand:
		anchor, kind = c.start, ErrUnknownCommand
	default:
		return newError(ErrMode, c.start)
	}
	if len(c.buf)-anchor < len(literal) {
		return newError(kind, anchor)
	}
	for i := 0; i < len(literal); i++ {
		if c.buf[anchor+i] != literal[i] {
			return newError(kind, anchor)
		}
	}
	c.start = anchor + len(literal)
	return nil
}

// GetParameter extracts the next field terminated by sep and decodes it as t.
// When last is set, the field may also end at the end of the line.
func (c *Context) GetParameter(t ParameterType, sep byte, last bool) (int32, error) {
	end, next, err := c.field(sep, last)
	if err != nil {
		return 0, err
	}
	var (
		val  int32
		kind ErrorKind
	)
	f := c.buf[c.start:end]
	switch t {
	case ParameterBoolean:
		val, kind = decodeBit(f)
	case ParameterHexadecimal:
		val, kind = decodeHex(f)
	case ParameterDecimal:
		val, kind = decodeDec(f)
	default:
		kind = ErrMode
	}
	if kind != 0 {
		return 0, newError(kind, c.start)
	}
	c.start = next
	return val, nil
}

// GetByteArray extracts the next field terminated by sep as hex encoded bytes
// into out and returns the number of bytes written. The field must not decode
// to more than maxLen bytes, nor more than len(out).
func (c *Context) GetByteArray(sep byte, last bool, maxLen int, out []byte) (int, error) {
	end, next, err := c.field(sep, last)
	if err != nil {
		return 0, err
	}
	f := c.buf[c.start:end]
	if kind := checkHex(f); kind != 0 {
		return 0, newError(kind, c.start)
	}
	n := len(f) / 2
	if n > maxLen || n > len(out) {
		return 0, newError(ErrParameterByteArrayInvalidLength, c.start)
	}
	// f is validated, Decode can't fail.
	hex.Decode(out[:n], f)
	c.start = next
	return n, nil
}

// ByteArray is like GetByteArray but allocates the result.
func (c *Context) ByteArray(sep byte, last bool, maxLen int) ([]byte, error) {
	if maxLen < 0 {
		maxLen = 0
	}
	out := make([]byte, maxLen)
	n, err := c.GetByteArray(sep, last, maxLen, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// field locates the field starting at the cursor. It returns the exclusive
// end of the field and where the cursor goes once the field is consumed.
func (c *Context) field(sep byte, last bool) (end, next int, err error) {
	c.sep = -1
	i := c.start
	for ; i < len(c.buf); i++ {
		if c.buf[i] == sep {
			c.sep = i
			end, next = i, i+1
			break
		}
		if isTerminator(c.buf[i]) {
			break
		}
	}
	if c.sep < 0 {
		if !last {
			return 0, 0, newError(ErrSeparatorNotFound, c.start)
		}
		end, next = i, len(c.buf)
	}
	if end == c.start {
		return 0, 0, newError(ErrParameterNotFound, c.start)
	}
	return
}

func isTerminator(b byte) bool {
	return b == '\r' || b == '\n' || b == 0
}

func nibble(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func checkHex(f []byte) ErrorKind {
	for _, b := range f {
		if _, ok := nibble(b); !ok {
			return ErrParameterHexaInvalid
		}
	}
	if len(f)%2 != 0 {
		return ErrParameterHexaOddSize
	}
	return 0
}

func decodeBit(f []byte) (int32, ErrorKind) {
	for _, b := range f {
		if b != '0' && b != '1' {
			return 0, ErrParameterBitInvalid
		}
	}
	if len(f) > 1 {
		return 0, ErrParameterBitOverflow
	}
	return int32(f[0] - '0'), 0
}

func decodeHex(f []byte) (int32, ErrorKind) {
	if kind := checkHex(f); kind != 0 {
		return 0, kind
	}
	var v int64
	for _, b := range f {
		n, _ := nibble(b)
		v = v<<4 | int64(n)
		if v > math.MaxInt32 {
			return 0, ErrParameterHexaOverflow
		}
	}
	return int32(v), 0
}

func decodeDec(f []byte) (int32, ErrorKind) {
	neg, digits := false, f
	if f[0] == '+' || f[0] == '-' {
		neg, digits = f[0] == '-', f[1:]
	}
	if len(digits) == 0 {
		return 0, ErrParameterDecInvalid
	}
	for _, b := range digits {
		if b < '0' || b > '9' {
			return 0, ErrParameterDecInvalid
		}
	}
	limit := int64(math.MaxInt32)
	if neg {
		limit = -math.MinInt32
	}
	var v int64
	for _, b := range digits {
		v = v*10 + int64(b-'0')
		if v > limit {
			return 0, ErrParameterDecOverflow
		}
	}
	if neg {
		v = -v
	}
	return int32(v), 0
}
