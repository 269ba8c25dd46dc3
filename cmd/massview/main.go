package main

import (
	"fmt"
	"os"

	"github.com/simplecontainer/massview/pkg/command"
	"github.com/simplecontainer/massview/pkg/engine/commands"
	"github.com/simplecontainer/massview/pkg/logger"
)

// MASSVIEW_VERSION is overridden at build time with -ldflags "-X main.MASSVIEW_VERSION=..."
var MASSVIEW_VERSION = "dev"

func main() {
	commands.ServiceVersion = MASSVIEW_VERSION

	cmd := command.New()
	commands.PreloadCommands()

	if err := commands.Run(cmd, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	_ = logger.Log.Sync()
}
