// Package dict implements the dictionary component (C1): a term-to-id
// mapping with two specializations, a deduplicating hash map for generic
// terms and an append-only map for n-gram terms.
package dict

import "github.com/arjunsr/invdx/term"

// Dictionary maps terms of type T to dense uint32 ids.
type Dictionary[T term.Term] interface {
	// TermID looks up t without mutating the dictionary.
	TermID(t T) (id uint32, ok bool)

	// InsertOrGetSingle returns t's existing id, or assigns len() as its
	// new id and inserts it. The Ngram dictionary does not look t up first:
	// it always assigns a new id.
	InsertOrGetSingle(t T) uint32

	// AnnounceNewTerms hints that count more terms of roughly avgBytes
	// bytes each are coming, so storage can be pre-grown.
	AnnounceNewTerms(count int, avgBytes int)

	Len() int
	IsEmpty() bool

	// Optimize re-hashes so that keys ranked earlier by cmp (cmp(a,b) < 0
	// means a ranks before b) are probed earlier. Advisory only.
	Optimize(cmp func(a, b T) int)
}
