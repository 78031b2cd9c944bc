package cli

import (
	"github.com/spf13/cobra"
)

// NewEvalCommand builds the eval subcommand: run a query's full pipeline
// (parse, normalize, buildPredicate) against a record file and report
// the boolean result — §6.1's optional evaluate(canonicalTree, record,
// options) sugar, exposed as a CLI verb.
func NewEvalCommand(opts *RootOptions) *cobra.Command {
	var recordPath string

	cmd := &cobra.Command{
		Use:           "eval <query>",
		Short:         "Evaluate a query against a record file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], recordPath, cmd)
		},
	}
	cmd.Flags().StringVar(&recordPath, "record", "", "path to a JSON or YAML record file")
	_ = cmd.MarkFlagRequired("record")

	return cmd
}

func runEval(opts *RootOptions, query, recordPath string, cmd *cobra.Command) error {
	f := formatterFor(opts, cmd)

	rec, err := loadRecord(recordPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load record", err)
	}

	compiled, err := newEngine(opts).Compile(query)
	if err != nil {
		return emitErr(f, err)
	}

	result, err := compiled.Predicate(rec)
	if err != nil {
		return emitErr(f, err)
	}

	return f.Success(map[string]any{"result": result})
}
