package sh

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/atcmd.go/pkg/env"
	"github.com/robotalks/atcmd.go/pkg/grammar"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell   *ishell.Shell
	Config  *env.Config
	Grammar *grammar.Grammar
}

const (
	shellKey = "$shell"
	prompt   = "> "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&ParseCmd,
		&GrammarCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(prompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Line rebuilds the line from command arguments.
func Line(c *ishell.Context) []byte {
	return []byte(strings.Join(c.Args, " "))
}

// Print prints a report in the selected output format.
func (s *Shell) Print(c *ishell.Context, r *LineReport) error {
	if s.OutputJSON {
		out, err := json.Marshal(r)
		if err != nil {
			return err
		}
		c.Println(string(out))
		return nil
	}
	c.Println(r.String())
	return nil
}

// Parse matches a line against the grammar and prints the outcome.
func (s *Shell) Parse(c *ishell.Context, line []byte) *LineReport {
	res, err := s.Grammar.Match(line)
	r := NewLineReport(line, res, err)
	if r.OK() {
		glog.V(1).Infof("%q matched %s", r.Line, r.Command)
	} else {
		glog.V(1).Infof("%q rejected: %s", r.Line, r.Error)
	}
	if perr := s.Print(c, r); perr != nil {
		c.Err(perr)
	}
	return r
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.Grammar == nil {
		g, err := s.Config.LoadGrammar()
		if err != nil {
			log.Fatalf("load grammar failed: %v", err)
		}
		s.Grammar = g
	}

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Printf("Header %q, %d commands\n", s.Grammar.Header, len(s.Grammar.Commands))
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// ParseCmd parses a line.
	ParseCmd = ishell.Cmd{
		Name:    "parse",
		Aliases: []string{"p"},
		Help:    "LINE",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("LINE required"))
				return
			}
			ShellFrom(c).Parse(c, Line(c))
		},
	}

	// GrammarCmd lists commands in the grammar.
	GrammarCmd = ishell.Cmd{
		Name:    "grammar",
		Aliases: []string{"g"},
		Help:    "[NAME]",
		Func: func(c *ishell.Context) {
			g := ShellFrom(c).Grammar
			cmds := g.Commands
			if len(c.Args) > 0 {
				cmd := g.Find(c.Args[0])
				if cmd == nil {
					c.Err(fmt.Errorf("unknown command %q", c.Args[0]))
					return
				}
				cmds = []grammar.Command{*cmd}
			}
			for _, cmd := range cmds {
				c.Println(FormatCommand(g.Header, &cmd))
			}
		},
	}
)

// FormatCommand prints the syntax of a command, e.g. "AT$ADC=<channel:decimal>".
func FormatCommand(header string, cmd *grammar.Command) string {
	var w strings.Builder
	fmt.Fprintf(&w, "%-12s %s%s", cmd.Name, header, cmd.Literal)
	for _, p := range cmd.Params {
		fmt.Fprintf(&w, "<%s:%s", p.Name, p.Type)
		if p.Type == grammar.TypeBytes {
			fmt.Fprintf(&w, "[%d]", p.MaxLength)
		}
		w.WriteString(">")
		if p.Last {
			fmt.Fprintf(&w, "[%s]", p.Separator)
		} else {
			w.WriteString(p.Separator)
		}
	}
	return w.String()
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).Run(flag.Args()...)
}
