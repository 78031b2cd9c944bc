package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/brutalist-filter/internal/normalize"
	"github.com/roach88/brutalist-filter/internal/parser"
)

// TraceResult is the single JSON document the trace command emits: the
// surface tree, the canonical tree, and the final boolean result for one
// (query, record) pair, correlated with a TraceID the way the teacher's
// TraceResult correlates a flow's event timeline (cli/trace.go).
type TraceResult struct {
	TraceID   string `json:"trace_id"`
	Query     string `json:"query"`
	Surface   any    `json:"surface"`
	Canonical any    `json:"canonical"`
	Result    bool   `json:"result"`
}

// NewTraceCommand builds the trace subcommand.
func NewTraceCommand(opts *RootOptions) *cobra.Command {
	var recordPath, traceID string

	cmd := &cobra.Command{
		Use:           "trace <query>",
		Short:         "Show every pipeline stage's output for one (query, record) pair",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args[0], recordPath, traceID, cmd)
		},
	}
	cmd.Flags().StringVar(&recordPath, "record", "", "path to a JSON or YAML record file")
	cmd.Flags().StringVar(&traceID, "trace-id", "", "correlation ID for this trace's log lines (defaults to a fresh UUID)")
	_ = cmd.MarkFlagRequired("record")

	return cmd
}

func runTrace(opts *RootOptions, query, recordPath, traceID string, cmd *cobra.Command) error {
	f := formatterFor(opts, cmd)

	if traceID == "" {
		traceID = uuid.NewString()
	}
	f.VerboseLog("trace %s: parsing %q", traceID, query)

	surface, _, err := parser.Parse(query)
	if err != nil {
		f.VerboseLog("trace %s: parse failed: %v", traceID, err)
		return emitErr(f, err)
	}

	f.VerboseLog("trace %s: normalizing", traceID)
	canonical, err := normalize.Normalize(surface, normalize.Options{TextSearchTargets: targetPaths(opts.Targets)})
	if err != nil {
		f.VerboseLog("trace %s: normalize failed: %v", traceID, err)
		return emitErr(f, err)
	}

	rec, err := loadRecord(recordPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load record", err)
	}

	f.VerboseLog("trace %s: evaluating", traceID)
	compiled, err := newEngine(opts).Compile(query)
	if err != nil {
		return emitErr(f, err)
	}
	result, err := compiled.Predicate(rec)
	if err != nil {
		f.VerboseLog("trace %s: evaluation failed: %v", traceID, err)
		return emitErr(f, err)
	}

	return f.Success(TraceResult{
		TraceID:   traceID,
		Query:     query,
		Surface:   dumpSurface(surface),
		Canonical: dumpCanonical(canonical),
		Result:    result,
	})
}
