package diag

import "sort"

// Bag accumulates diagnostics up to a fixed cap.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	if max <= 0 {
		max = 256
	}
	return &Bag{
		items: make([]Diagnostic, 0, 8),
		max:   uint16(max),
	}
}

// Add appends a diagnostic, honoring the cap.
// Returns false when the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any diagnostic is SevError or worse.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the accumulated diagnostics.
// Callers must not modify the returned slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by primary span start, then severity (desc).
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		if b.items[i].Primary.Start != b.items[j].Primary.Start {
			return b.items[i].Primary.Start < b.items[j].Primary.Start
		}
		return b.items[i].Severity > b.items[j].Severity
	})
}
