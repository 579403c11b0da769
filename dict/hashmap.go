package dict

import (
	"sort"

	"github.com/arjunsr/invdx/term"
	"github.com/cespare/xxhash/v2"
)

// growThreshold is the load factor past which the table doubles.
const growThreshold = 0.75

// openHashMap is an open-addressed hash map keyed by T with uint32 values,
// probed linearly and hashed via xxhash.Sum64 of the term's stable byte
// encoding. It backs the Default dictionary (C1).
type openHashMap[T term.Term] struct {
	slots []hashSlot[T]
	count int
}

type hashSlot[T term.Term] struct {
	used bool
	key  T
	val  uint32
}

func newOpenHashMap[T term.Term]() *openHashMap[T] {
	return &openHashMap[T]{slots: make([]hashSlot[T], 16)}
}

func hashOf[T term.Term](key T) uint64 {
	return xxhash.Sum64(key.Bytes())
}

// find returns the value for key and true, or the zero value and false.
func (m *openHashMap[T]) find(key T) (uint32, bool) {
	if len(m.slots) == 0 {
		return 0, false
	}
	mask := uint64(len(m.slots) - 1)
	i := hashOf(key) & mask
	for {
		s := &m.slots[i]
		if !s.used {
			return 0, false
		}
		if s.key == key {
			return s.val, true
		}
		i = (i + 1) & mask
	}
}

// insert assigns val to key unconditionally, overwriting any prior value.
// Used by the n-gram dictionary's unconditional-append insert path.
func (m *openHashMap[T]) insert(key T, val uint32) {
	if float64(m.count+1) >= growThreshold*float64(len(m.slots)) {
		m.grow(len(m.slots) * 2)
	}
	m.insertNoGrow(key, val)
}

func (m *openHashMap[T]) insertNoGrow(key T, val uint32) {
	mask := uint64(len(m.slots) - 1)
	i := hashOf(key) & mask
	for {
		s := &m.slots[i]
		if !s.used {
			s.used = true
			s.key = key
			s.val = val
			m.count++
			return
		}
		if s.key == key {
			s.val = val
			return
		}
		i = (i + 1) & mask
	}
}

// findOrInsert returns the existing value for key, or inserts newVal and
// returns it if key is absent. The bool reports whether key was already
// present.
func (m *openHashMap[T]) findOrInsert(key T, newVal func() uint32) (uint32, bool) {
	if v, ok := m.find(key); ok {
		return v, true
	}
	v := newVal()
	m.insert(key, v)
	return v, false
}

func (m *openHashMap[T]) grow(newSize int) {
	if newSize <= len(m.slots) {
		return
	}
	old := m.slots
	m.slots = make([]hashSlot[T], newSize)
	m.count = 0
	for _, s := range old {
		if s.used {
			m.insertNoGrow(s.key, s.val)
		}
	}
}

// reserveBytes pre-grows the table so that at least n additional entries
// can be inserted without further rehashing. avgBytes is accepted to match
// the dictionary contract's announce_new_terms signature but does not
// influence table sizing (Go's map slots are fixed-size regardless of key
// byte length).
func (m *openHashMap[T]) reserveBytes(n int, avgBytes int) {
	need := m.count + n
	size := len(m.slots)
	if size == 0 {
		size = 16
	}
	for float64(need) >= growThreshold*float64(size) {
		size *= 2
	}
	m.grow(size)
}

func (m *openHashMap[T]) len() int {
	return m.count
}

// optimize re-inserts every live entry into a fresh table of the same
// capacity, in cmp-sorted order, so that higher-ranked keys are probed
// earlier on future lookups. Advisory: no semantic change.
func (m *openHashMap[T]) optimize(cmp func(a, b T) int) {
	entries := make([]hashSlot[T], 0, m.count)
	for _, s := range m.slots {
		if s.used {
			entries = append(entries, s)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return cmp(entries[i].key, entries[j].key) < 0
	})

	fresh := make([]hashSlot[T], len(m.slots))
	m.slots = fresh
	m.count = 0
	for _, e := range entries {
		m.insertNoGrow(e.key, e.val)
	}
}

// entries returns all live (key, value) pairs in unspecified order.
func (m *openHashMap[T]) entries() []hashSlot[T] {
	out := make([]hashSlot[T], 0, m.count)
	for _, s := range m.slots {
		if s.used {
			out = append(out, s)
		}
	}
	return out
}
