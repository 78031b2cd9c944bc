// Package cli implements cmd/filterctl's command tree: one subcommand per
// pipeline stage (parse, normalize, eval) plus the sample translator
// (sql) and the supplemented trace/validate commands, grounded on the
// teacher's internal/cli package (one file per subcommand, a shared
// RootOptions, ExitError for exit-code propagation, OutputFormatter for
// text/JSON output).
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes, mirroring the teacher's cli/output.go.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitCommandError = 2
)

// ExitError carries an exit code alongside the usual error chain.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error, defaulting to
// ExitFailure for anything that isn't an *ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders a command's result as text or JSON on Writer.
// ErrWriter carries per-stage diagnostics (trace's "parsing...",
// "normalizing..." progress lines): when Format is "json", Writer holds
// exactly one JSON document, so any verbose logging has to go somewhere
// else or it corrupts that document for a caller piping the output into
// a JSON parser. ErrWriter defaults to Writer when unset, which is fine
// for text mode, where a diagnostic line and the result share a stream
// anyway.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

// CLIResponse is the JSON envelope every subcommand's success/error path
// emits when Format is "json".
type CLIResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *CLIError   `json:"error,omitempty"`
}

// CLIError's Code is one of filterr's taxonomy codes (E_PARSE_GENERIC,
// E_EVAL_TYPE_MISMATCH, ...), or "E_VALIDATION_FAILED" for the validate
// command's own structural check.
type CLIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success emits data as JSON or, in text mode, as whatever fmt.Fprintln
// does with it (callers pass a pre-formatted string for text mode).
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return encodeJSON(f.Writer, CLIResponse{Status: "ok", Data: data})
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error emits a code/message/details triple as JSON or, in text mode, as
// a one-line "Error [code]: message".
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return encodeJSON(f.Writer, CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message, Details: details},
		})
	}
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// encodeJSON writes v to w as JSON without HTML-escaping characters like
// <, >, and & in strings, matching the plain-text operators expected in
// CLI output (e.g. ">" rather than ">").
func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// errWriter returns ErrWriter, falling back to Writer when unset.
func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// VerboseLog writes a pipeline-stage diagnostic line to errWriter, and
// does nothing when Verbose is false. trace.go uses this instead of
// writing to Writer directly, so --format=json's single result document
// never gets a stray log line mixed into it.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.errWriter(), format+"\n", args...)
}
