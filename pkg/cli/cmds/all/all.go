// Package all imports all console commands.
package all

import (
	_ "github.com/robotalks/atcmd.go/pkg/cli/cmds/replay" // replay
)
