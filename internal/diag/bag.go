package diag

import (
	"sort"
)

// Bag собирает диагностики одного файла. Владение передаётся вызывающему
// сразу после обхода файла: между файлами ничего не сохраняется.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a Bag that keeps at most max diagnostics (0 = unlimited).
func NewBag(max int) *Bag {
	capHint := max
	if capHint <= 0 || capHint > 64 {
		capHint = 64
	}
	return &Bag{
		items: make([]Diagnostic, 0, capHint),
		max:   max,
	}
}

// Add appends a diagnostic, honoring the limit.
// Returns false when the diagnostic was dropped (limit reached).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors возвращает true, если есть хотя бы одна ошибка.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одно предупреждение.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity == SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only slice of the collected diagnostics.
// ВАЖНО: не модифицируйте возвращаемый срез.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Errors returns the error-severity diagnostics in emission order.
func (b *Bag) Errors() []Diagnostic {
	return b.filter(SevError)
}

// Warnings returns the warning-severity diagnostics in emission order.
func (b *Bag) Warnings() []Diagnostic {
	return b.filter(SevWarning)
}

func (b *Bag) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Truncate shrinks the bag to its first n diagnostics. Used by callers
// that rewrite Items in place (severity remapping).
func (b *Bag) Truncate(n int) {
	if n >= 0 && n <= len(b.items) {
		b.items = b.items[:n]
	}
}

// Sort orders diagnostics by: line, severity (desc), code (asc) for a
// stable, deterministic output order. Diagnostics on the same line keep
// emission order within equal keys.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}
