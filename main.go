package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/logger"
)

// CLI is the command line of amazeing.
type CLI struct {
	Run    RunCmd    `cmd:"" default:"withargs" help:"Generate a maze from a config file and open the interactive menu"`
	Verify VerifyCmd `cmd:"" help:"Check that a maze file's route leads from entry to exit"`
	Serve  ServeCmd  `cmd:"" help:"Serve the maze HTTP API"`
	Token  TokenCmd  `cmd:"" help:"Mint a bearer token for the protected API routes"`
}

func main() {
	appLogger, err := logger.New("APP", config.ColorGreen, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("amazeing"),
		kong.Description("Maze generator with a guaranteed shortest path and a 42 landmark."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(appLogger); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}
