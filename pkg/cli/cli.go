// Package cli provides the command-line interface for e2e-helpers.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/e2e-helpers/pkg/config"
	"github.com/devicelab-dev/e2e-helpers/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to e2e.yaml (default: nearest e2e.yaml in this or a parent directory)",
		EnvVars: []string{"E2E_CONFIG"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"E2E_VERBOSE"},
	},
	&cli.StringFlag{
		Name:    "log-file",
		Usage:   "Write the log to this file (overrides logFile in config)",
		EnvVars: []string{"E2E_LOG_FILE"},
	},
	&cli.BoolFlag{
		Name:  "no-ansi",
		Usage: "Disable ANSI colors",
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "e2e-helpers",
		Usage:   "Inspect localized strings and run-only filtering for mobile e2e suites",
		Version: Version,
		Description: `e2e-helpers loads the workspace e2e.yaml and shows how the helpers
resolve localized strings and which test files a run-only list keeps.

Examples:
  e2e-helpers resolve --context home --key greeting -v name=Ann
  e2e-helpers filter e2e/*.e2e.ts
  E2E_RUN_ONLY=home e2e-helpers filter e2e/*.e2e.ts
  e2e-helpers eval --dry-run e2e/login.js`,
		Flags:                     GlobalFlags,
		DisableSliceFlagSeparator: true,
		Before: func(c *cli.Context) error {
			if c.Bool("no-ansi") {
				color.NoColor = true
			}
			if path := c.String("log-file"); path != "" {
				if err := logger.Init(path); err != nil {
					return err
				}
				logger.SetVerbose(c.Bool("verbose"))
			}
			return nil
		},
		After: func(c *cli.Context) error {
			logger.Close()
			return nil
		},
		Commands: []*cli.Command{
			resolveCommand,
			filterCommand,
			evalCommand,
		},
	}
}

// Execute runs the CLI.
func Execute() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadStore reads the config selected by --config, or the nearest e2e.yaml
// above the working directory, into a fresh store. A logFile from the config is honored unless --log-file is set.
func loadStore(c *cli.Context) (*config.Store, *config.File, error) {
	var (
		cfg *config.File
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else if path, ok := config.Find("."); ok {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.LogFile != "" && c.String("log-file") == "" {
		if err := logger.Init(cfg.Path(cfg.LogFile)); err != nil {
			return nil, nil, err
		}
		logger.SetVerbose(c.Bool("verbose"))
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, fmt.Errorf("load translations: %w", err)
	}

	store := config.NewStore()
	store.Init(opts)
	logger.Debug("config loaded: runOnly=%v contexts=%d", store.RunOnly(), len(store.Translations()))
	return store, cfg, nil
}
