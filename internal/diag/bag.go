package diag

import (
	"sort"
)

// Bag aggregates diagnostics across files for CLI output. The parser
// itself is fail-fast and produces at most one diagnostic per source;
// the bag exists so a directory-wide check can collect them.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a bag that holds at most max diagnostics; max <= 0
// means unbounded.
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add appends a diagnostic, honoring the limit. Returns false when the
// diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether at least one error-severity diagnostic was
// collected.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity == SevError {
			return true
		}
	}
	return false
}

// Items returns the collected diagnostics. The slice aliases the bag's
// internal storage; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by span start, then end, then code, for
// deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Span.Start != dj.Span.Start {
			return di.Span.Start < dj.Span.Start
		}
		if di.Span.End != dj.Span.End {
			return di.Span.End < dj.Span.End
		}
		return di.Code < dj.Code
	})
}
