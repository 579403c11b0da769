package dict

import "github.com/arjunsr/invdx/term"

// Ngram is the n-gram dictionary (C1): same interface as Default, but
// specialized for the fixed-width Ngram<N> key so the bulk-insert path can
// skip deduplication.
//
// InsertOrGetSingle unconditionally appends: it does not consult the
// lookup map before assigning a new id. This is a throughput optimization
// for the bulk path (spec.md §4.1) — the caller is trusted to guarantee no
// duplicates. Calling it twice with the same key creates two distinct ids
// for that key; TermID afterward reflects only the most recently inserted
// id, since the lookup map is a plain overwrite-on-insert index and not a
// record of insertion history. This is specified behavior, not a bug to be
// patched here — callers that need on-write dedup must use Default instead.
type Ngram[T term.Term] struct {
	m      *openHashMap[T]
	count  int
	ids    []T // id -> term, for Entries/persistence
	filter *termFilter[T]
}

// NgramOption configures an Ngram dictionary at construction time.
type NgramOption[T term.Term] func(*Ngram[T])

// WithNgramBloomFilter arms a negative-lookup bloom prefilter ahead of
// TermID, sized for expectedTerms entries. Since InsertOrGetSingle never
// consults the filter to decide insertion (it always appends), the filter
// here only ever speeds up TermID misses.
func WithNgramBloomFilter[T term.Term](expectedTerms uint) NgramOption[T] {
	return func(d *Ngram[T]) {
		d.filter = newTermFilter[T](expectedTerms)
	}
}

// NewNgram returns an empty n-gram dictionary.
func NewNgram[T term.Term](opts ...NgramOption[T]) *Ngram[T] {
	d := &Ngram[T]{m: newOpenHashMap[T]()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Ngram[T]) TermID(t T) (uint32, bool) {
	if d.filter != nil && !d.filter.mayContain(t) {
		return 0, false
	}
	return d.m.find(t)
}

// InsertOrGetSingle always appends a new entry and returns its new id.
func (d *Ngram[T]) InsertOrGetSingle(t T) uint32 {
	id := uint32(d.count)
	d.count++
	d.m.insert(t, id)
	d.ids = append(d.ids, t)
	if d.filter != nil {
		d.filter.add(t)
	}
	return id
}

func (d *Ngram[T]) AnnounceNewTerms(count int, avgBytes int) {
	d.m.reserveBytes(count, avgBytes)
}

func (d *Ngram[T]) Len() int { return d.count }

func (d *Ngram[T]) IsEmpty() bool { return d.count == 0 }

// Entries returns every term in ascending id order (with repeats, since
// InsertOrGetSingle may assign more than one id to the same key), for
// persistence.
func (d *Ngram[T]) Entries() []T { return d.ids }

func (d *Ngram[T]) Optimize(cmp func(a, b T) int) {
	d.m.optimize(cmp)
}
