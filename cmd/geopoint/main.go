package main

import (
	"io"
	"os"

	"github.com/woozymasta/geopoint/internal/logger"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Parse ParseCommand `command:"parse" description:"Validate and convert \"<lat> <lon> [alt]\" points"`
	Make  MakeCommand  `command:"make"  description:"Build a point from separate latitude, longitude and altitude values"`
	Serve ServeCommand `command:"serve" description:"Serve the coordinates HTTP API"`
}

// stdout is replaced in tests.
var stdout io.Writer = os.Stdout

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		opts.Logger.Setup()
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
