package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/e2e-helpers/pkg/localize"
)

var resolveCommand = &cli.Command{
	Name:      "resolve",
	Usage:     "Resolve a localized string",
	ArgsUsage: "[--context C --key K | --text T [--variable V]]",
	Description: `Resolves a translation entry, or an inline template, the way the
helpers do at test time: {{name}} placeholders, then the @@variable@@
marker of templated entries, then '*' stripped.

Examples:
  e2e-helpers resolve --context home --key greeting -v name=Ann
  e2e-helpers resolve --text '**@@n@@** unread' --variable count -v count=3`,
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "context", Usage: "Translation context (top-level table key)"},
		&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "Entry key within the context"},
		&cli.StringFlag{Name: "text", Usage: "Resolve this template instead of a table entry"},
		&cli.StringFlag{Name: "variable", Usage: "Variable key for --text (makes it a templated entry)"},
		&cli.StringSliceFlag{
			Name:    "value",
			Aliases: []string{"v"},
			Usage:   "Substitution value name=value (repeatable)",
		},
	},
	Action: runResolve,
}

func runResolve(c *cli.Context) error {
	sel, err := selectorFromFlags(c)
	if err != nil {
		return err
	}
	values, err := parseValues(c.StringSlice("value"))
	if err != nil {
		return err
	}

	store, _, err := loadStore(c)
	if err != nil {
		return err
	}

	if ctx, key := c.String("context"), c.String("key"); key != "" {
		if _, ok := store.Translations()[ctx][key]; !ok {
			color.New(color.FgYellow).Fprintf(c.App.ErrWriter, "warning: no entry %s.%s\n", ctx, key)
		}
	}

	s := localize.Resolver{Source: store}.Resolve(sel, values)
	if strings.Contains(s, localize.MissingVariable) {
		color.New(color.FgYellow).Fprintln(c.App.ErrWriter, "warning: variable value not provided")
	}
	fmt.Fprintln(c.App.Writer, s)
	return nil
}

func selectorFromFlags(c *cli.Context) (localize.Selector, error) {
	switch {
	case c.IsSet("text") && c.IsSet("key"):
		return nil, fmt.Errorf("--text and --key are mutually exclusive")
	case c.IsSet("text"):
		if v := c.String("variable"); v != "" {
			return localize.Template(c.String("text"), v), nil
		}
		return localize.Text(c.String("text")), nil
	case c.String("key") != "":
		return localize.Key(c.String("context"), c.String("key")), nil
	default:
		return nil, fmt.Errorf("either --key or --text is required")
	}
}

// parseValues parses name=value pairs. The value may contain '='.
func parseValues(pairs []string) (localize.Values, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	values := make(localize.Values, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid value %q: expected name=value", p)
		}
		values[name] = value
	}
	return values, nil
}
