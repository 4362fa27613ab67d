package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/e2e-helpers/pkg/core"
	"github.com/devicelab-dev/e2e-helpers/pkg/driver/mock"
	"github.com/devicelab-dev/e2e-helpers/pkg/jsengine"
)

var evalCommand = &cli.Command{
	Name:      "eval",
	Usage:     "Run a JavaScript file against the helpers",
	ArgsUsage: "<script.js>",
	Description: `Runs a script with the global helpers object. Without --dry-run only
getLocalizedString, describe and sleepFor are available. With --dry-run the
actions (tapElement, typeText, ...) are recorded instead of sent to a device
and listed after the script finishes, and helpers.getPlatform() returns
--platform.

Examples:
  e2e-helpers eval check-strings.js
  e2e-helpers eval --dry-run --platform ios e2e/login.js`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Record actions instead of executing them",
		},
		&cli.StringFlag{
			Name:  "platform",
			Usage: "Platform returned by helpers.getPlatform() in a dry run (ios, android)",
			Value: "android",
		},
	},
	Action: runEval,
}

func runEval(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one script file")
	}
	path := c.Args().First()
	script, err := os.ReadFile(path) //#nosec G304 -- user-provided script
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	store, _, err := loadStore(c)
	if err != nil {
		return err
	}

	var (
		driver   core.Driver
		recorder *mock.Driver
	)
	if c.Bool("dry-run") {
		recorder = mock.New(mock.Config{Platform: c.String("platform")})
		driver = recorder
	}

	engine := jsengine.New(store, driver)
	defer engine.Close()

	runErr := engine.RunScript(string(script))

	if recorder != nil {
		ok := color.New(color.FgGreen)
		for _, desc := range recorder.Descriptions() {
			ok.Fprint(c.App.Writer, "  ✓ ")
			fmt.Fprintln(c.App.Writer, desc)
		}
	}
	if runErr != nil {
		return fmt.Errorf("%s: %w", path, runErr)
	}
	return nil
}
