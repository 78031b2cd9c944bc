package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/brutalist-filter/internal/filterr"
	"github.com/roach88/brutalist-filter/internal/parser"
)

// NewParseCommand builds the parse subcommand: surface tree only, no
// normalization, matching §6.1's parse(text) operation directly.
func NewParseCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "parse <query>",
		Short:         "Parse a query string into its surface tree",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args[0], cmd)
		},
	}
}

func runParse(opts *RootOptions, query string, cmd *cobra.Command) error {
	f := formatterFor(opts, cmd)

	surface, _, err := parser.Parse(query)
	if err != nil {
		return emitErr(f, err)
	}

	return f.Success(dumpSurface(surface))
}

// emitErr reports err through the formatter, then returns an ExitError
// carrying the matching exit code so main can set the process exit
// status without the formatter and the exit code diverging.
func emitErr(f *OutputFormatter, err error) error {
	code := errorCode(err)
	_ = f.Error(code, err.Error(), nil)
	return WrapExitError(ExitCommandError, code, err)
}

// errorCode extracts the stable §4.4 code string from a pipeline error,
// falling back to a generic label for anything else.
func errorCode(err error) string {
	switch {
	case filterr.IsCode(err, filterr.CodeParseUnexpectedToken):
		return string(filterr.CodeParseUnexpectedToken)
	case filterr.IsCode(err, filterr.CodeParseGeneric):
		return string(filterr.CodeParseGeneric)
	case filterr.IsCode(err, filterr.CodeNormalizeUnsupportedNode):
		return string(filterr.CodeNormalizeUnsupportedNode)
	case filterr.IsCode(err, filterr.CodeNormalizeGeneric):
		return string(filterr.CodeNormalizeGeneric)
	case filterr.IsCode(err, filterr.CodeEvalTypeMismatch):
		return string(filterr.CodeEvalTypeMismatch)
	case filterr.IsCode(err, filterr.CodeEvalGeneric):
		return string(filterr.CodeEvalGeneric)
	case filterr.IsCode(err, filterr.CodeAdapterUnsupportedFeature):
		return string(filterr.CodeAdapterUnsupportedFeature)
	case filterr.IsCode(err, filterr.CodeAdapterGeneric):
		return string(filterr.CodeAdapterGeneric)
	default:
		return "E_UNKNOWN"
	}
}
