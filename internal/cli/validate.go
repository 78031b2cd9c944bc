package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/normalize"
	"github.com/roach88/brutalist-filter/internal/parser"
)

// NewValidateCommand builds the validate subcommand: parse, normalize,
// then run cir.Validate over the result and report any structural
// invariant violation, grounded on the teacher's cli/validate.go.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "validate <query>",
		Short:         "Check a query's canonical tree against §3.3's structural invariants",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, query string, cmd *cobra.Command) error {
	f := formatterFor(opts, cmd)

	surface, _, err := parser.Parse(query)
	if err != nil {
		return emitErr(f, err)
	}

	canonical, err := normalize.Normalize(surface, normalize.Options{TextSearchTargets: targetPaths(opts.Targets)})
	if err != nil {
		return emitErr(f, err)
	}

	result := cir.Validate(canonical)
	if !result.Valid {
		_ = f.Error("E_VALIDATION_FAILED", "canonical tree violates structural invariants", result.Violations)
		return NewExitError(ExitFailure, "validation failed")
	}

	return f.Success(map[string]any{"valid": true})
}
