// Package grammar declares the commands of a device and parses received
// lines against them.
package grammar

import (
	"bytes"
	_ "embed" // for default grammar
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Param declares one delimited field of a command.
type Param struct {
	Name      string `yaml:"name"`
	Type      Type   `yaml:"type"`
	Separator string `yaml:"separator"`
	// Last allows the field to run to the end of the line.
	Last bool `yaml:"last,omitempty"`
	// MaxLength is the maximum number of bytes of a TypeBytes field.
	MaxLength int `yaml:"max_length,omitempty"`
}

// Command declares a command literal and its fields.
type Command struct {
	Name    string  `yaml:"name"`
	Literal string  `yaml:"command"`
	Params  []Param `yaml:"params,omitempty"`
}

// Grammar is the set of commands expected after a common header.
// It must not be modified once in use; Match is safe for concurrent use.
type Grammar struct {
	Header   string    `yaml:"header"`
	Commands []Command `yaml:"commands"`
}

//go:embed default.yaml
var defaultGrammar []byte

// Default returns the built-in grammar.
func Default() *Grammar {
	g, err := Load(bytes.NewReader(defaultGrammar))
	if err != nil {
		panic(err)
	}
	return g
}

// Load decodes and validates a grammar in YAML.
func Load(r io.Reader) (*Grammar, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var g Grammar
	if err := dec.Decode(&g); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty grammar")
		}
		return nil, fmt.Errorf("decode grammar: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// LoadFile loads a grammar from a YAML file.
func LoadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Find returns the command with the name.
func (g *Grammar) Find(name string) *Command {
	for i := range g.Commands {
		if g.Commands[i].Name == name {
			return &g.Commands[i]
		}
	}
	return nil
}

// Validate checks the grammar can be used by Match.
func (g *Grammar) Validate() error {
	verr := &ValidationError{}
	if len(g.Commands) == 0 {
		verr.Addf("no commands")
	}
	names, literals := make(map[string]bool), make(map[string]bool)
	for n := range g.Commands {
		cmd := &g.Commands[n]
		switch {
		case cmd.Name == "":
			verr.Addf("commands[%d]: name required", n)
		case names[cmd.Name]:
			verr.Addf("commands[%d]: duplicated name %q", n, cmd.Name)
		}
		names[cmd.Name] = true
		switch {
		case cmd.Literal == "":
			verr.Addf("%s: command required", cmd.label(n))
		case literals[cmd.Literal]:
			verr.Addf("%s: duplicated command %q", cmd.label(n), cmd.Literal)
		}
		literals[cmd.Literal] = true
		cmd.validateParams(n, verr)
	}
	return verr.Aggregate()
}

func (c *Command) label(n int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("commands[%d]", n)
}

func (c *Command) validateParams(n int, verr *ValidationError) {
	names := make(map[string]bool)
	for i := range c.Params {
		p := &c.Params[i]
		prefix := fmt.Sprintf("%s.params[%d]", c.label(n), i)
		switch {
		case p.Name == "":
			verr.Addf("%s: name required", prefix)
		case names[p.Name]:
			verr.Addf("%s: duplicated name %q", prefix, p.Name)
		}
		names[p.Name] = true
		if len(p.Separator) != 1 {
			verr.Addf("%s: separator must be a single byte, got %q", prefix, p.Separator)
		}
		switch {
		case !p.Type.IsValid():
			verr.Addf("%s: invalid type %d", prefix, int(p.Type))
		case p.Type == TypeBytes && p.MaxLength <= 0:
			verr.Addf("%s: max_length required for bytes", prefix)
		case p.Type != TypeBytes && p.MaxLength != 0:
			verr.Addf("%s: max_length only applies to bytes", prefix)
		}
		if p.Last && i+1 < len(c.Params) {
			verr.Addf("%s: last parameter must be the final one", prefix)
		}
	}
}
