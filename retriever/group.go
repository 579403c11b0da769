package retriever

import "iter"

// group is one term's cursor over the union of its selected posting-lists,
// exposing a min_next-style cursor: peek reports the smallest currently
// buffered head across its member iterators, without consuming it; advance
// consumes that head and pulls the one iterator it came from forward.
//
// k (the number of posting-lists in a group) is expected to be small, so a
// linear scan for the minimum is used rather than a heap.
type group struct {
	next  []func() (uint64, bool)
	stop  []func()
	head  []uint64
	valid []bool
}

func newGroup(seqs []iter.Seq[uint64]) *group {
	g := &group{
		next:  make([]func() (uint64, bool), len(seqs)),
		stop:  make([]func(), len(seqs)),
		head:  make([]uint64, len(seqs)),
		valid: make([]bool, len(seqs)),
	}
	for i, seq := range seqs {
		next, stop := iter.Pull(seq)
		g.next[i] = next
		g.stop[i] = stop
		g.head[i], g.valid[i] = next()
	}
	return g
}

// close stops every member iterator that has not already run to
// completion, releasing the goroutine iter.Pull parks behind it.
func (g *group) close() {
	for i, valid := range g.valid {
		if valid {
			g.stop[i]()
		}
	}
}

func (g *group) minIdx() int {
	idx := -1
	var best uint64
	for i, ok := range g.valid {
		if !ok {
			continue
		}
		if idx == -1 || g.head[i] < best {
			best = g.head[i]
			idx = i
		}
	}
	return idx
}

// peek returns the group's smallest buffered value without consuming it.
func (g *group) peek() (uint64, bool) {
	idx := g.minIdx()
	if idx == -1 {
		return 0, false
	}
	return g.head[idx], true
}

// advance consumes the group's smallest buffered value and pulls its
// source iterator forward.
func (g *group) advance() (uint64, bool) {
	idx := g.minIdx()
	if idx == -1 {
		return 0, false
	}
	v := g.head[idx]
	g.head[idx], g.valid[idx] = g.next[idx]()
	return v, true
}
