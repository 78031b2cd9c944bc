// Package eval implements C4: building a predicate closure from a
// canonical tree, and the evaluation semantics behind it — path
// resolution, typed comparison, the diacritic/case text-folding pipeline,
// and quantifier iteration over §6.3 record.Value trees.
package eval

// Options configures a built predicate (§4.3's O).
type Options struct {
	IgnoreCase     bool
	FoldDiacritics bool
	// Locale, when set, is a BCP-47 tag used for locale-aware case
	// folding (e.g. "tr" for Turkish dotted/dotless I handling). Empty
	// means locale-independent folding.
	Locale string
}
