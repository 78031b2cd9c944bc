package eval

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/brutalist-filter/internal/cir"
	"github.com/roach88/brutalist-filter/internal/record"
)

// evalText implements Text(field, op, needle): substring/prefix/suffix
// matching over a fixed fold pipeline, §4.3 step 2 — diacritic folding
// always runs before case folding.
func evalText(ctx record.Value, field string, op cir.TextOp, needle string, opts Options, inQuantifier bool) bool {
	l := lookup(ctx, []string{field}, inQuantifier)
	s, ok := l.AsString()
	if !ok {
		return false
	}

	s = fold(s, opts)
	needle = fold(needle, opts)

	if needle == "" {
		return true
	}

	switch op {
	case cir.TextStartsWith:
		return strings.HasPrefix(s, needle)
	case cir.TextEndsWith:
		return strings.HasSuffix(s, needle)
	default:
		return strings.Contains(s, needle)
	}
}

// fold applies diacritic folding then case folding, in that order, per
// the options in effect.
func fold(s string, opts Options) string {
	if opts.FoldDiacritics {
		s = stripDiacritics(s)
	}
	if opts.IgnoreCase {
		s = lowercase(s, opts.Locale)
	}
	return s
}

// stripDiacritics decomposes s (NFD: base rune plus combining marks) and
// drops every rune in the combining-diacritical-marks block (U+0300 to
// U+036F).
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r >= 0x0300 && r <= 0x036F {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// lowercase applies locale-aware lowercasing when a locale tag is given
// (the documented example is Turkish dotted/dotless I), and a
// locale-independent lowercasing otherwise.
func lowercase(s string, locale string) string {
	tag := language.Und
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	return cases.Lower(tag).String(s)
}
