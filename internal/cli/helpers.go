package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/engine"
)

// targetPaths splits each dotted --targets entry into an ast.Path.
func targetPaths(targets []string) []ast.Path {
	out := make([]ast.Path, len(targets))
	for i, t := range targets {
		out[i] = ast.Path(strings.Split(t, "."))
	}
	return out
}

// newEngine builds an engine.Engine from the root flags in effect.
func newEngine(opts *RootOptions) *engine.Engine {
	return engine.New(
		engine.WithTextSearchTargets(targetPaths(opts.Targets)...),
		engine.WithIgnoreCase(opts.IgnoreCase),
		engine.WithFoldDiacritics(opts.FoldDiacritics),
		engine.WithLocale(opts.Locale),
	)
}

// formatterFor builds the formatter a subcommand reports through: results
// go to cmd's stdout, verbose pipeline-stage diagnostics go to its
// stderr, so a --format=json caller's stdout is always exactly one JSON
// document regardless of --verbose.
func formatterFor(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
