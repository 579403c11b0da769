package dict

import (
	"github.com/arjunsr/invdx/term"
	"github.com/bits-and-blooms/bloom/v3"
)

// termFilter is an optional negative-lookup prefilter ahead of the hash
// map probe, mirroring the teacher's per-SST bloom filter used to
// fast-reject keys that cannot be present. A miss here skips the
// open-addressed probe entirely; a hit still falls through to the real
// probe, since a bloom filter only ever rules absence in, never presence.
type termFilter[T term.Term] struct {
	f *bloom.BloomFilter
}

// newTermFilter sizes the filter for n expected entries at a 1% false
// positive rate, the teacher's default for its SST filters.
func newTermFilter[T term.Term](n uint) *termFilter[T] {
	if n == 0 {
		n = 1024
	}
	return &termFilter[T]{f: bloom.NewWithEstimates(n, 0.01)}
}

func (tf *termFilter[T]) add(t T) {
	tf.f.Add(t.Bytes())
}

// mayContain returns false only when t is definitely absent.
func (tf *termFilter[T]) mayContain(t T) bool {
	return tf.f.Test(t.Bytes())
}
