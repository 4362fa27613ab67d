package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/e2e-helpers/pkg/config"
	"github.com/devicelab-dev/e2e-helpers/pkg/filter"
)

var filterCommand = &cli.Command{
	Name:      "filter",
	Usage:     "Show which test files the run-only list keeps",
	ArgsUsage: "<file>...",
	Description: `Prints RUN or SKIP for each test file, using runOnly from e2e.yaml,
E2E_RUN_ONLY, or --run-only (highest precedence).

Examples:
  e2e-helpers filter e2e/home.e2e.ts e2e/settings.e2e.ts
  e2e-helpers filter --run-only home,login e2e/*.e2e.ts`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "run-only",
			Usage: "Comma-separated bare file names to run",
		},
	},
	Action: runFilter,
}

func runFilter(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no test files given")
	}

	store, _, err := loadStore(c)
	if err != nil {
		return err
	}
	if c.IsSet("run-only") {
		store.Init(config.Options{RunOnly: splitList(c.String("run-only"))})
	}

	runColor := color.New(color.FgGreen)
	skipColor := color.New(color.FgYellow)

	var run, skipped int
	for _, file := range c.Args().Slice() {
		switch filter.Decide(store, file) {
		case filter.Run:
			run++
			runColor.Fprint(c.App.Writer, "RUN ")
		default:
			skipped++
			skipColor.Fprint(c.App.Writer, "SKIP")
		}
		fmt.Fprintf(c.App.Writer, "  %s (%s)\n", file, filter.BareName(file))
	}

	fmt.Fprintf(c.App.Writer, "\n%d to run, %d skipped\n", run, skipped)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
