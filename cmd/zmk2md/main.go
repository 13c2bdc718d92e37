// SPDX-License-Identifier: MIT

// zmk2md converts a ZMK keymap file into markdown keyboard diagrams.
//
// Usage:
//
//	zmk2md config/corne.keymap              # markdown to stdout
//	zmk2md config/corne.keymap README.md    # splice between markers
//	zmk2md -watch config/corne.keymap README.md
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/keebtools/zmk2md/internal/config"
	"github.com/keebtools/zmk2md/internal/jobs"
	xlog "github.com/keebtools/zmk2md/internal/log"
)

var (
	version   = "v1.1.0"
	commit    = "none"
	buildDate = "unknown"
)

const usage = `Usage: zmk2md [flags] <keymap-file> [readme-file]

Without a readme file the generated markdown is printed to stdout. With one,
the region between <!-- KEYMAP_START --> and <!-- KEYMAP_END --> is replaced
in place.

Flags:
  -config <path>  YAML config file (log_level, watch_debounce, labels)
  -watch          keep running and regenerate when the keymap file changes
  -version        print version and exit
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("zmk2md", flag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.Usage = func() { fmt.Fprint(stdout, usage) }
	showVersion := flags.Bool("version", false, "print version and exit")
	configPath := flags.String("config", "", "path to config file (YAML)")
	watch := flags.Bool("watch", false, "regenerate when the keymap file changes")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s (commit: %s, built: %s)\n", version, commit, buildDate)
		return 0
	}

	if flags.NArg() < 1 {
		fmt.Fprint(stdout, usage)
		return 1
	}
	keymapPath := flags.Arg(0)
	readmePath := flags.Arg(1)

	// Configure logger with safe defaults until config is loaded
	xlog.Configure(xlog.Config{
		Level:   "info",
		Service: "zmk2md",
		Version: version,
	})
	logger := xlog.WithComponent("main")

	cfg, err := config.NewLoader(*configPath).Load()
	if err != nil {
		logger.Error().
			Err(err).
			Str("event", "config.load_failed").
			Str("config_path", *configPath).
			Msg("failed to load configuration")
		return 1
	}
	xlog.Configure(xlog.Config{Level: cfg.LogLevel})

	if *watch && readmePath == "" {
		logger.Error().
			Str("event", "watch.no_destination").
			Msg("watch mode requires a readme destination")
		fmt.Fprint(stdout, usage)
		return 1
	}

	jobCfg := jobs.Config{
		KeymapPath: keymapPath,
		ReadmePath: readmePath,
		Labels:     cfg.Labels,
	}

	if _, err := jobs.Run(jobCfg, stdout); err != nil {
		logger.Error().
			Err(err).
			Str("event", "generate.failed").
			Msg("generation failed")
		return 1
	}
	if readmePath != "" {
		fmt.Fprintf(stdout, "Updated %s\n", readmePath)
	}

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := jobs.Watch(ctx, jobCfg, cfg.WatchDebounce, stdout); err != nil {
			logger.Error().
				Err(err).
				Str("event", "watch.failed").
				Msg("watch mode failed")
			return 1
		}
	}

	return 0
}
