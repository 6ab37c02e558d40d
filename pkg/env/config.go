// Package env provides common configuration of the command line tools.
package env

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/atcmd.go/pkg/grammar"
)

// Config provides common options to setup a grammar.
type Config struct {
	// GrammarPath is the YAML grammar file.
	// The built-in grammar is used when empty.
	GrammarPath string
}

var defaultConfig Config

func init() {
	if val := os.Getenv("ATCMD_GRAMMAR"); val != "" {
		defaultConfig.GrammarPath = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.GrammarPath, "grammar", defaultConfig.GrammarPath, "Grammar file in YAML.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadGrammar loads the grammar using current config.
func (c *Config) LoadGrammar() (*grammar.Grammar, error) {
	if c.GrammarPath == "" {
		glog.V(1).Info("using built-in grammar")
		return grammar.Default(), nil
	}
	g, err := grammar.LoadFile(c.GrammarPath)
	if err != nil {
		return nil, err
	}
	glog.Infof("grammar %s loaded: %d commands", c.GrammarPath, len(g.Commands))
	return g, nil
}
