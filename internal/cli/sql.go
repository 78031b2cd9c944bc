package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/brutalist-filter/internal/normalize"
	"github.com/roach88/brutalist-filter/internal/parser"
	"github.com/roach88/brutalist-filter/internal/sqlfilter"
)

// NewSQLCommand builds the sql subcommand: parse, normalize, then run
// the sample external translator (§6.4) and print the resulting
// parameterized WHERE fragment.
func NewSQLCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "sql <query>",
		Short:         "Compile a query to a parameterized SQL WHERE fragment",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSQL(opts, args[0], cmd)
		},
	}
}

func runSQL(opts *RootOptions, query string, cmd *cobra.Command) error {
	f := formatterFor(opts, cmd)

	surface, _, err := parser.Parse(query)
	if err != nil {
		return emitErr(f, err)
	}

	canonical, err := normalize.Normalize(surface, normalize.Options{TextSearchTargets: targetPaths(opts.Targets)})
	if err != nil {
		return emitErr(f, err)
	}

	sql, params, err := sqlfilter.NewCompiler().Compile(canonical)
	if err != nil {
		return emitErr(f, err)
	}

	return f.Success(map[string]any{"where": sql, "params": params})
}
