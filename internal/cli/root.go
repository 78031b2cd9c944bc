package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/brutalist-filter/internal/config"
	"github.com/roach88/brutalist-filter/internal/filterlog"
)

// RootOptions holds the global flags every subcommand reads, mirroring
// the teacher's RootOptions (cli/root.go).
type RootOptions struct {
	Format         string
	Locale         string
	IgnoreCase     bool
	FoldDiacritics bool
	Targets        []string
	Verbose        bool
	ConfigFile     string
}

// NewRootCommand builds the filterctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "filterctl",
		Short: "Compile and evaluate brutalist-filter query strings",
		Long:  "filterctl parses, normalizes, and evaluates the filter DSL described by the surface grammar in §4.1, and compiles canonical trees to a sample SQL translator.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := config.LoadFile(opts.ConfigFile)
			if err != nil {
				return err
			}
			if opts.ConfigFile != "" {
				filterlog.Std.Printf("loaded config %s", opts.ConfigFile)
			}
			merged := config.Merge(config.Default(), fileCfg)
			merged = config.Merge(merged, config.Config{
				Format:         opts.Format,
				Locale:         opts.Locale,
				IgnoreCase:     opts.IgnoreCase,
				FoldDiacritics: opts.FoldDiacritics,
				Targets:        opts.Targets,
				Verbose:        opts.Verbose,
			})
			if err := config.Validate(merged); err != nil {
				return fmt.Errorf("invalid format %q: must be one of %v", merged.Format, config.ValidFormats)
			}
			opts.Format = merged.Format
			opts.Locale = merged.Locale
			opts.IgnoreCase = merged.IgnoreCase
			opts.FoldDiacritics = merged.FoldDiacritics
			opts.Targets = merged.Targets
			opts.Verbose = merged.Verbose
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "", "BCP-47 locale for case folding")
	cmd.PersistentFlags().BoolVar(&opts.IgnoreCase, "ignore-case", false, "fold case before text matching")
	cmd.PersistentFlags().BoolVar(&opts.FoldDiacritics, "fold-diacritics", false, "strip diacritics before text matching")
	cmd.PersistentFlags().StringSliceVar(&opts.Targets, "targets", nil, "dotted field paths a single-argument text call expands across")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostic output")

	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewNormalizeCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewSQLCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))

	return cmd
}
