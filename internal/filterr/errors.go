// Package filterr defines the error taxonomy shared by the lexer, parser,
// normalizer, evaluator, and external translators.
//
// Every stage raises one of a closed set of kinds, each carrying a stable
// code so callers can match on Code for machine-driven handling or on the
// concrete type for grouped handling. No stage returns a sentinel zero
// value in place of an error: absence of a result is always an error.
package filterr

import "fmt"

// Code identifies a specific, stable error condition. Codes never change
// meaning across versions; new codes may be added but existing ones are
// never repurposed.
type Code string

const (
	CodeParseUnexpectedToken Code = "E_PARSE_UNEXPECTED_TOKEN"
	CodeParseGeneric         Code = "E_PARSE_GENERIC"

	CodeNormalizeUnsupportedNode Code = "E_NORMALIZE_UNSUPPORTED_NODE"
	CodeNormalizeGeneric         Code = "E_NORMALIZE_GENERIC"

	CodeEvalTypeMismatch Code = "E_EVAL_TYPE_MISMATCH"
	CodeEvalGeneric      Code = "E_EVAL_GENERIC"

	CodeAdapterUnsupportedFeature Code = "E_ADAPTER_UNSUPPORTED_FEATURE"
	CodeAdapterGeneric            Code = "E_ADAPTER_GENERIC"
)

// ParseError is raised by the lexer (C1) and parser (C2).
type ParseError struct {
	Code    Code
	Message string

	// Line and Column are 1-based; zero means unset (e.g. for errors that
	// are not anchored to a single source position).
	Line, Column int

	// Lexeme is the offending run of text, when known.
	Lexeme string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (%s) at %d:%d", e.Message, e.Code, e.Line, e.Column)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// NewUnexpectedToken builds a ParseError for a character that begins no
// token, per §4.1.
func NewUnexpectedToken(line, col int, lexeme string) *ParseError {
	return &ParseError{
		Code:    CodeParseUnexpectedToken,
		Message: fmt.Sprintf("Unexpected token %q", lexeme),
		Line:    line,
		Column:  col,
		Lexeme:  lexeme,
	}
}

// NewParseGeneric builds a ParseError for a structural grammar mismatch.
func NewParseGeneric(line, col int, lexeme, reason string) *ParseError {
	msg := reason
	if lexeme != "" {
		msg = fmt.Sprintf("%s (found %q)", reason, lexeme)
	}
	return &ParseError{
		Code:    CodeParseGeneric,
		Message: msg,
		Line:    line,
		Column:  col,
		Lexeme:  lexeme,
	}
}

// NormalizeError is raised by the normalizer (C3).
type NormalizeError struct {
	Code    Code
	Message string

	// NodeKind names the offending surface-tree node, when known.
	NodeKind string
}

func (e *NormalizeError) Error() string {
	if e.NodeKind != "" {
		return fmt.Sprintf("%s (%s, node=%s)", e.Message, e.Code, e.NodeKind)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

func NewUnsupportedNode(nodeKind, reason string) *NormalizeError {
	return &NormalizeError{
		Code:     CodeNormalizeUnsupportedNode,
		Message:  reason,
		NodeKind: nodeKind,
	}
}

func NewNormalizeGeneric(reason string) *NormalizeError {
	return &NormalizeError{
		Code:    CodeNormalizeGeneric,
		Message: reason,
	}
}

// EvaluationError is raised by the evaluator (C4).
type EvaluationError struct {
	Code    Code
	Message string

	// Operator names the comparison or text operator involved, when known.
	Operator string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// NewTypeMismatch builds the EvaluationError for §4.3's comparison
// semantics: gt/gte/lt/lte require both operands to be numbers or both to
// be strings.
func NewTypeMismatch(op, leftType, rightType string) *EvaluationError {
	return &EvaluationError{
		Code:     CodeEvalTypeMismatch,
		Message:  fmt.Sprintf("Type mismatch for '%s': expected number|string, got %s/%s.", op, leftType, rightType),
		Operator: op,
	}
}

func NewEvalGeneric(message string) *EvaluationError {
	return &EvaluationError{Code: CodeEvalGeneric, Message: message}
}

// AdapterError is raised by external translators (§6.4) for any node kind
// or operator they cannot emit.
type AdapterError struct {
	Code    Code
	Message string

	// Target is the translator's backend name (e.g. "sql"), when known.
	Target string

	// Feature names the unsupported node kind or operator, when known.
	Feature string
}

func (e *AdapterError) Error() string {
	switch {
	case e.Target != "" && e.Feature != "":
		return fmt.Sprintf("%s (%s, target=%s, feature=%s)", e.Message, e.Code, e.Target, e.Feature)
	case e.Target != "":
		return fmt.Sprintf("%s (%s, target=%s)", e.Message, e.Code, e.Target)
	default:
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
}

func NewUnsupportedFeature(target, feature string) *AdapterError {
	return &AdapterError{
		Code:    CodeAdapterUnsupportedFeature,
		Message: fmt.Sprintf("%s does not support %s", target, feature),
		Target:  target,
		Feature: feature,
	}
}

func NewAdapterGeneric(target, message string) *AdapterError {
	return &AdapterError{Code: CodeAdapterGeneric, Message: message, Target: target}
}
