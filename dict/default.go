package dict

import "github.com/arjunsr/invdx/term"

// Default is the Default dictionary (C1): a deduplicating hash map keyed by
// T with uint32 values.
type Default[T term.Term] struct {
	m      *openHashMap[T]
	ids    []T // id -> term, for Entries/persistence
	filter *termFilter[T]
}

// DefaultOption configures a Default dictionary at construction time.
type DefaultOption[T term.Term] func(*Default[T])

// WithBloomFilter arms a negative-lookup bloom prefilter ahead of TermID,
// sized for expectedTerms entries. Skip this option for small or
// short-lived dictionaries, where the prefilter's own bookkeeping costs
// more than the probes it saves.
func WithBloomFilter[T term.Term](expectedTerms uint) DefaultOption[T] {
	return func(d *Default[T]) {
		d.filter = newTermFilter[T](expectedTerms)
	}
}

// NewDefault returns an empty Default dictionary.
func NewDefault[T term.Term](opts ...DefaultOption[T]) *Default[T] {
	d := &Default[T]{m: newOpenHashMap[T]()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Default[T]) TermID(t T) (uint32, bool) {
	if d.filter != nil && !d.filter.mayContain(t) {
		return 0, false
	}
	return d.m.find(t)
}

// InsertOrGetSingle returns t's existing id if present, otherwise assigns
// len() as its id and inserts it.
func (d *Default[T]) InsertOrGetSingle(t T) uint32 {
	v, existed := d.m.findOrInsert(t, func() uint32 { return uint32(d.m.len()) })
	if !existed {
		d.ids = append(d.ids, t)
		if d.filter != nil {
			d.filter.add(t)
		}
	}
	return v
}

// Entries returns every term in ascending id order, for persistence.
func (d *Default[T]) Entries() []T { return d.ids }

func (d *Default[T]) AnnounceNewTerms(count int, avgBytes int) {
	d.m.reserveBytes(count, avgBytes)
}

func (d *Default[T]) Len() int { return d.m.len() }

func (d *Default[T]) IsEmpty() bool { return d.m.len() == 0 }

func (d *Default[T]) Optimize(cmp func(a, b T) int) {
	d.m.optimize(cmp)
}
