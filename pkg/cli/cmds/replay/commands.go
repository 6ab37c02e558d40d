// Package replay provides the console command for replaying captured lines.
package replay

import (
	"fmt"
	"os"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/atcmd.go/pkg/cli/sh"
	"github.com/robotalks/atcmd.go/pkg/grammar"
)

var (
	// ReplayCmd parses all lines of capture files.
	ReplayCmd = ishell.Cmd{
		Name:    "replay",
		Aliases: []string{"r"},
		Help:    "FILE...",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("FILE required"))
				return
			}
			s := sh.ShellFrom(c)
			for _, fn := range c.Args {
				if err := replayFile(c, s, fn); err != nil {
					glog.Errorf("replay %s: %v", fn, err)
					c.Err(err)
					return
				}
			}
		},
	}
)

func replayFile(c *ishell.Context, s *sh.Shell, fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	glog.Infof("replaying %s", fn)
	summary, err := Run(s.Grammar, f, func(num int, line []byte, res *grammar.Result, err error) {
		r := sh.NewLineReport(line, res, err)
		if !r.OK() {
			glog.Warningf("%s:%d: %s", fn, num, r.Error)
		}
		if perr := s.Print(c, r); perr != nil {
			c.Err(perr)
		}
	})
	if err != nil {
		return err
	}
	if !s.OutputJSON {
		c.Printf("%s: %s\n", fn, summary.String())
	}
	return nil
}

func init() {
	sh.AddCmds(&ReplayCmd)
}
