package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/brutalist-filter/internal/normalize"
	"github.com/roach88/brutalist-filter/internal/parser"
)

// NewNormalizeCommand builds the normalize subcommand: parse then
// normalize, reporting the canonical tree — §6.1's normalize(surfaceTree)
// chained onto parse(text) for CLI convenience.
func NewNormalizeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "normalize <query>",
		Short:         "Parse and normalize a query string into its canonical tree",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(opts, args[0], cmd)
		},
	}
}

func runNormalize(opts *RootOptions, query string, cmd *cobra.Command) error {
	f := formatterFor(opts, cmd)

	surface, _, err := parser.Parse(query)
	if err != nil {
		return emitErr(f, err)
	}

	canonical, err := normalize.Normalize(surface, normalize.Options{TextSearchTargets: targetPaths(opts.Targets)})
	if err != nil {
		return emitErr(f, err)
	}

	return f.Success(dumpCanonical(canonical))
}
