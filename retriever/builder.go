package retriever

import (
	"iter"

	"github.com/arjunsr/invdx/dict"
	"github.com/arjunsr/invdx/term"
)

// Builder accumulates the inputs to a retriever: which terms, which
// posting-lists, and whether duplicates should be suppressed. Unknown
// terms passed to AddTerm are silently dropped — they contribute no
// matches, which is semantically correct for "not in the dictionary".
//
// Neither InPostingLists nor InAllPostings called means every posting-list
// in the source is used (InAllPostings is the implicit default).
type Builder[T term.Term] struct {
	dict     dict.Dictionary[T]
	src      Source
	termIDs  []uint32
	lists    []int
	allLists bool
	unique   bool
}

// NewBuilder starts a retriever build over d (for term-to-id resolution)
// and src (for posting iteration).
func NewBuilder[T term.Term](d dict.Dictionary[T], src Source) *Builder[T] {
	return &Builder[T]{dict: d, src: src, allLists: true}
}

// AddTerm resolves t via the dictionary and, if found, adds its id.
func (b *Builder[T]) AddTerm(t T) *Builder[T] {
	if id, ok := b.dict.TermID(t); ok {
		b.termIDs = append(b.termIDs, id)
	}
	return b
}

// AddTermID adds an already-resolved term-id directly.
func (b *Builder[T]) AddTermID(id uint32) *Builder[T] {
	b.termIDs = append(b.termIDs, id)
	return b
}

// InPostingLists restricts the retriever to exactly these posting-lists.
func (b *Builder[T]) InPostingLists(lists ...int) *Builder[T] {
	b.lists = append(b.lists, lists...)
	b.allLists = false
	return b
}

// InAllPostings restores the default of using every posting-list in the
// source.
func (b *Builder[T]) InAllPostings() *Builder[T] {
	b.lists = nil
	b.allLists = true
	return b
}

// Unique arms duplicate suppression for Union.
func (b *Builder[T]) Unique() *Builder[T] {
	b.unique = true
	return b
}

func (b *Builder[T]) resolveLists() []int {
	if b.allLists || len(b.lists) == 0 {
		out := make([]int, b.src.PostingListCount())
		for i := range out {
			out[i] = i
		}
		return out
	}
	return b.lists
}

// Union builds the any-term union retriever (DefaultRetriever).
func (b *Builder[T]) Union() iter.Seq[uint64] {
	return Union(b.src, b.termIDs, b.resolveLists(), b.unique)
}

// Intersection builds the all-terms intersection retriever
// (AllTermRetriever). It requires the underlying postings to be sorted.
func (b *Builder[T]) Intersection() iter.Seq[uint64] {
	return Intersection(b.src, b.termIDs, b.resolveLists())
}
