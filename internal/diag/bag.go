package diag

// Bag collects diagnostics in the order they were produced. Output
// order is significant (rules run in registry order), so Bag never
// reorders or deduplicates its contents.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{items: make([]Diagnostic, 0, 16)}
}

func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

func (b *Bag) AddAll(ds []Diagnostic) {
	b.items = append(b.items, ds...)
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether any diagnostic has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has Severity >= Warning.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Items returns the collected diagnostics. The returned slice aliases
// the Bag's storage and must not be modified.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends the contents of another Bag.
func (b *Bag) Merge(other *Bag) {
	b.items = append(b.items, other.items...)
}
