// Package engine wires the three pipeline stages — parser, normalizer,
// evaluator — into the single entry point described in §6.1: parse,
// normalize, buildPredicate, in sequence. Grounded on the teacher's
// Engine (internal/engine/engine.go), which plays the analogous
// "holds configuration, exposes one call that drives the stages in
// order" role for its own sync-rule pipeline, generalized here from a
// stateful event loop to a stateless compile call since C1–C4 are pure
// functions with no shared mutable state (§5).
package engine

import (
	"github.com/roach88/brutalist-filter/internal/ast"
	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/eval"
	"github.com/roach88/brutalist-filter/internal/lexer"
	"github.com/roach88/brutalist-filter/internal/normalize"
	"github.com/roach88/brutalist-filter/internal/parser"
)

// Engine holds the configuration shared across compiles: the full-text
// search targets normalization expands single-argument text calls
// against, and the evaluation options a built predicate runs with.
type Engine struct {
	normalizeOpts normalize.Options
	evalOpts      eval.Options
}

// Option configures an Engine.
type Option func(*Engine)

// WithTextSearchTargets sets the paths a single-argument text-function
// call (e.g. contains("widget")) expands across.
func WithTextSearchTargets(targets ...ast.Path) Option {
	return func(e *Engine) {
		e.normalizeOpts.TextSearchTargets = targets
	}
}

// WithIgnoreCase enables locale-aware (or locale-independent) case
// folding in the text-matching pipeline.
func WithIgnoreCase(ignore bool) Option {
	return func(e *Engine) { e.evalOpts.IgnoreCase = ignore }
}

// WithFoldDiacritics enables diacritic stripping ahead of case folding.
func WithFoldDiacritics(fold bool) Option {
	return func(e *Engine) { e.evalOpts.FoldDiacritics = fold }
}

// WithLocale sets the BCP-47 locale tag used when IgnoreCase is set.
func WithLocale(locale string) Option {
	return func(e *Engine) { e.evalOpts.Locale = locale }
}

// New builds an Engine from the given options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compiled is the result of running a query string through all three
// pipeline stages: the surface tree, the tokens that produced it, the
// canonical tree it normalized to, and a predicate built from that tree.
type Compiled struct {
	Surface   ast.Node
	Tokens    []lexer.Token
	Canonical cir.Node
	Predicate eval.Predicate
}

// Compile runs text through parse, normalize, and buildPredicate in
// sequence, returning a ParseError, NormalizeError, or nil.
func (e *Engine) Compile(text string) (*Compiled, error) {
	surface, tokens, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}

	canonical, err := normalize.Normalize(surface, e.normalizeOpts)
	if err != nil {
		return nil, err
	}

	predicate := eval.BuildPredicate(canonical, e.evalOpts)

	return &Compiled{
		Surface:   surface,
		Tokens:    tokens,
		Canonical: canonical,
		Predicate: predicate,
	}, nil
}
