package sh

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/robotalks/atcmd.go/pkg/grammar"
	"github.com/robotalks/atcmd.go/pkg/parser"
)

// ValueReport is an extracted parameter for display.
type ValueReport struct {
	Name  string      `json:"name"`
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
}

// LineReport is the outcome of parsing a line for display.
type LineReport struct {
	Line    string        `json:"line"`
	Command string        `json:"command,omitempty"`
	Values  []ValueReport `json:"values,omitempty"`
	Error   string        `json:"error,omitempty"`
	Kind    string        `json:"kind,omitempty"`
	Index   *int          `json:"index,omitempty"`
}

// NewLineReport creates a LineReport from the result of grammar.Match.
func NewLineReport(line []byte, res *grammar.Result, err error) *LineReport {
	r := &LineReport{Line: string(bytes.TrimRight(line, "\r\n\x00"))}
	if err != nil {
		r.Error = err.Error()
		if kind := parser.KindOf(err); kind != 0 {
			r.Kind = kind.Error()
		}
		var perr *parser.Error
		if errors.As(err, &perr) {
			index := perr.Index
			r.Index = &index
		}
		return r
	}
	r.Command = res.Command.Name
	for _, v := range res.Values {
		vr := ValueReport{Name: v.Param.Name, Type: v.Param.Type.String(), Value: v.Interface()}
		if v.Param.Type == grammar.TypeBytes {
			vr.Value = v.String()
		}
		r.Values = append(r.Values, vr)
	}
	return r
}

// OK indicates the line matched.
func (r *LineReport) OK() bool {
	return r.Error == ""
}

// String formats the report for the console.
func (r *LineReport) String() string {
	if !r.OK() {
		if r.Index == nil {
			return "error: " + r.Error
		}
		return fmt.Sprintf("%s\n%s^ %s", r.Line, strings.Repeat(" ", *r.Index), r.Error)
	}
	items := make([]string, 0, len(r.Values)+1)
	items = append(items, r.Command)
	for _, v := range r.Values {
		items = append(items, fmt.Sprintf("%s=%v", v.Name, formatValue(v)))
	}
	return strings.Join(items, " ")
}

func formatValue(v ValueReport) interface{} {
	switch val := v.Value.(type) {
	case bool:
		if val {
			return 1
		}
		return 0
	case int32:
		if v.Type == grammar.TypeHexadecimal.String() {
			return fmt.Sprintf("0x%X", val)
		}
	}
	return v.Value
}
