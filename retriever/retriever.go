// Package retriever implements the retrieval algorithms (C6): a union
// retriever over postings iterators with optional dedup, and an
// intersection retriever via k-way min-merge, both as lazy iter.Seq[uint64]
// streams over storage-ids.
package retriever

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Source is the subset of the postings component a retriever needs: a
// finite, single-pass, lazy sequence of storage-ids for one (posting-list,
// term-id) pair. *postings.Postings satisfies this.
type Source interface {
	PostingListCount() int
	PostingRetriever(listIdx int, t uint32) (iter.Seq[uint64], error)
}

func seqOrEmpty(src Source, list int, t uint32) iter.Seq[uint64] {
	seq, err := src.PostingRetriever(list, t)
	if err != nil || seq == nil {
		return func(func(uint64) bool) {}
	}
	return seq
}

// Union emits every storage-id appearing under any (term, posting-list)
// pair in termIDs × lists, in term-major-then-posting-major order: the
// term list is consumed from the tail, so storage-ids for the last term-id
// are emitted first; within a term, posting-lists are scanned in the
// order given. When unique is true, a seen-set suppresses repeats.
func Union(src Source, termIDs []uint32, lists []int, unique bool) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		var seen *bitsetSeen
		if unique {
			seen = newBitsetSeen()
		}
		for i := len(termIDs) - 1; i >= 0; i-- {
			tid := termIDs[i]
			for _, list := range lists {
				for id := range seqOrEmpty(src, list, tid) {
					if seen != nil {
						if seen.testAndSet(id) {
							continue
						}
					}
					if !yield(id) {
						return
					}
				}
			}
		}
	}
}

// Intersection emits every storage-id present under every term-id in
// termIDs (within the union of the selected posting-lists per term),
// ascending. It requires each source (p, t) sequence to already be sorted
// ascending (i.e. the postings editor's finish() was called with sorting
// armed); unsorted input produces undefined results.
//
// Construction builds one group per term-id — the union of that term's
// selected posting-list iterators — then runs a k-way min-merge across
// groups: advance a candidate, catch every other group up to it, adopt a
// larger value as the new candidate and recheck from the first group, and
// yield whenever every group's head equals the candidate.
func Intersection(src Source, termIDs []uint32, lists []int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if len(termIDs) == 0 {
			return
		}
		groups := make([]*group, len(termIDs))
		for i, tid := range termIDs {
			seqs := make([]iter.Seq[uint64], len(lists))
			for j, list := range lists {
				seqs[j] = seqOrEmpty(src, list, tid)
			}
			groups[i] = newGroup(seqs)
		}
		defer func() {
			for _, g := range groups {
				g.close()
			}
		}()

		candidate, ok := groups[0].peek()
		if !ok {
			return
		}
		for {
			matchedAll := true
			i := 0
			for i < len(groups) {
				for {
					v, ok := groups[i].peek()
					if !ok {
						return
					}
					if v < candidate {
						groups[i].advance()
						continue
					}
					break
				}
				v, _ := groups[i].peek()
				if v > candidate {
					candidate = v
					matchedAll = false
					i = 0
					continue
				}
				i++
			}
			if matchedAll {
				if !yield(candidate) {
					return
				}
				for _, g := range groups {
					g.advance()
				}
				v, ok := groups[0].peek()
				if !ok {
					return
				}
				candidate = v
			}
		}
	}
}

// bitsetSeen is the unique-flag seen-set: a growable bit set over
// storage-ids. Set auto-grows the backing word slice to cover whatever
// index is touched, so storage-ids need not be pre-bounded.
type bitsetSeen struct {
	bits *bitset.BitSet
}

func newBitsetSeen() *bitsetSeen {
	return &bitsetSeen{bits: bitset.New(0)}
}

// testAndSet reports whether id was already seen, marking it seen either way.
func (s *bitsetSeen) testAndSet(id uint64) bool {
	seen := s.bits.Test(uint(id))
	s.bits.Set(uint(id))
	return seen
}
