package grammar

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/robotalks/atcmd.go/pkg/parser"
)

// Value is an extracted parameter.
type Value struct {
	Param *Param
	// Int is the value of scalar parameters.
	Int int32
	// Bytes is the value of TypeBytes parameters.
	Bytes []byte
}

// String formats the value the way it's written in a line.
func (v Value) String() string {
	switch v.Param.Type {
	case TypeBoolean:
		return fmt.Sprintf("%d", v.Int)
	case TypeHexadecimal:
		return fmt.Sprintf("0x%X", v.Int)
	case TypeBytes:
		return hex.EncodeToString(v.Bytes)
	}
	return fmt.Sprintf("%d", v.Int)
}

// Interface returns the value as int32, bool or []byte.
func (v Value) Interface() interface{} {
	switch v.Param.Type {
	case TypeBoolean:
		return v.Int != 0
	case TypeBytes:
		return v.Bytes
	}
	return v.Int
}

// Result is a line matched against a command.
type Result struct {
	Command *Command
	Values  []Value
}

// Value returns the value of the named parameter.
func (r *Result) Value(name string) (Value, bool) {
	for _, v := range r.Values {
		if v.Param.Name == name {
			return v, true
		}
	}
	return Value{}, false
}

// Match parses a line. The header must start the line, then the longest
// command literal matching after the header selects the command whose
// parameters are extracted in order.
func (g *Grammar) Match(line []byte) (*Result, error) {
	ctx := parser.NewContext(line)
	if err := ctx.Compare(parser.ModeHeader, g.Header); err != nil {
		return nil, err
	}
	for _, cmd := range g.candidates() {
		if ctx.Compare(parser.ModeCommand, cmd.Literal) != nil {
			continue
		}
		return cmd.extract(ctx)
	}
	return nil, &parser.Error{Kind: parser.ErrUnknownCommand, Index: ctx.Cursor()}
}

func (g *Grammar) candidates() []*Command {
	cmds := make([]*Command, len(g.Commands))
	for n := range g.Commands {
		cmds[n] = &g.Commands[n]
	}
	sort.SliceStable(cmds, func(i, j int) bool {
		return len(cmds[i].Literal) > len(cmds[j].Literal)
	})
	return cmds
}

func (c *Command) extract(ctx *parser.Context) (*Result, error) {
	res := &Result{Command: c, Values: make([]Value, 0, len(c.Params))}
	for i := range c.Params {
		p := &c.Params[i]
		val := Value{Param: p}
		var err error
		if p.Type == TypeBytes {
			val.Bytes, err = ctx.ByteArray(p.separator(), p.Last, p.MaxLength)
		} else {
			val.Int, err = ctx.GetParameter(p.Type.ParameterType(), p.separator(), p.Last)
		}
		if err != nil {
			return nil, &MatchError{Command: c.Name, Param: p.Name, Err: err}
		}
		res.Values = append(res.Values, val)
	}
	return res, nil
}

func (p *Param) separator() byte {
	if p.Separator == "" {
		return 0
	}
	return p.Separator[0]
}
