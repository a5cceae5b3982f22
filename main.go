package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	initLogging(os.Stderr)

	app := newApp(func() Formatter {
		return NewPrinter(color.Output, resolveConfig())
	})

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command. Flag parsing is off so that --vebuild and every
// other token reach the resolver as given.
func newApp(formatter func() Formatter) *cli.Command {
	return &cli.Command{
		Name:            "vepretty",
		Usage:           "Print a build status line",
		ArgsUsage:       "[--vebuild] [args...]",
		Version:         version,
		HideHelp:        true,
		HideVersion:     true,
		SkipFlagParsing: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return Run(cmd.Args().Slice(), formatter())
		},
	}
}

// resolveConfig loads the configuration, falling back to defaults on any
// error so that a bad config never breaks a build.
func resolveConfig() *Config {
	cfg, err := loadConfig(os.Getenv("VEPRETTY_CONFIG"))
	if err != nil {
		printWarning(os.Stderr, "config: %v (using defaults)", err)
		return defaultConfig()
	}
	Logger.Debug("config loaded", "sources", cfg.Sources)
	return cfg
}
