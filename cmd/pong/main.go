package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/diegok/termpong/internal/app"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/logging"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApp(cfg, logger)
	runErr := application.Run()
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprint(os.Stderr, config.NewFlagSet().FlagUsages())
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Every option can also be set with a PONG_ environment variable,")
	fmt.Fprintln(os.Stderr, "e.g. PONG_BESTOF=7 or PONG_SOUND_ENABLED=false.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pong --best-of 7")
	fmt.Fprintln(os.Stderr, "  pong --mute --log-file pong.log --log-level debug")
	fmt.Fprintln(os.Stderr, "  pong --config pong.yaml")
}
