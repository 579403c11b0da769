package postings

import (
	"iter"

	"github.com/arjunsr/invdx/backend"
	"github.com/arjunsr/invdx/errs"
)

// Postings is the read view over a set of posting-lists, each backed by its
// own IndexedFile with one record per term-id.
type Postings struct {
	lists []*backend.IndexedFile
	enc   Encoding
}

// New wraps one IndexedFile per posting-list, sharing enc for encode/decode.
func New(lists []*backend.IndexedFile, enc Encoding) *Postings {
	return &Postings{lists: lists, enc: enc}
}

func (p *Postings) PostingListCount() int {
	return len(p.lists)
}

// PostingRetriever returns a lazy, single-pass, finite sequence of the
// storage-ids recorded for term t in posting-list listIdx, in stored order.
// A term-id beyond the posting-list's current length yields an empty
// sequence rather than an error.
func (p *Postings) PostingRetriever(listIdx int, t uint32) (iter.Seq[uint64], error) {
	if listIdx < 0 || listIdx >= len(p.lists) {
		return nil, errs.ErrOutOfBounds
	}
	file := p.lists[listIdx]
	if t >= file.Len() {
		return func(func(uint64) bool) {}, nil
	}
	raw, err := file.Get(t)
	if err != nil {
		return nil, err
	}
	return p.enc.Decode(raw), nil
}

// TermCount reports the number of term-id slots materialized in
// posting-list listIdx.
func (p *Postings) TermCount(listIdx int) uint32 {
	return p.lists[listIdx].Len()
}

// Editor returns a bulk editor sharing this Postings' backing files.
func (p *Postings) Editor() *Editor {
	return newEditor(p.lists, p.enc)
}
