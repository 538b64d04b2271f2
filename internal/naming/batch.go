package naming

// Batch allocates several copy keys within one user action. Every key it
// hands out is pushed onto its pending stack so later allocations in the
// same batch do not collide with earlier ones.
type Batch struct {
	existing []string
	pending  []string
}

// NewBatch starts a batch against the currently visible keys.
func NewBatch(existing []string) *Batch {
	return &Batch{
		existing: append([]string(nil), existing...),
		pending:  []string{},
	}
}

// Next allocates the next copy key for copiedKey and records it as pending.
func (b *Batch) Next(copiedKey string) string {
	name := Allocate(copiedKey, b.existing, b.pending)
	b.pending = append(b.pending, name)
	return name
}

// Pending returns the keys allocated so far, in allocation order.
func (b *Batch) Pending() []string {
	return append([]string(nil), b.pending...)
}
