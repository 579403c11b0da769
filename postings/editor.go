package postings

import (
	"sort"
	"sync"

	"github.com/arjunsr/invdx/backend"
	"github.com/arjunsr/invdx/errs"
)

type editorState int

const (
	stateStaging editorState = iota
	stateSorted
)

// Editor is the postings component's bulk mutation side. Its staging
// structure is pending[p]: map<term_id, encoded bytes>, where the bytes are
// the concatenation of encoded storage-ids accumulated so far for that
// term-id — the ingestion loop variable is storage-id, but staging is keyed
// by term-id so writes to one term-id land sequentially.
//
// State machine: Staging -> (Commit) -> Staging, re-usable; -> (Finish) ->
// Sorted. Sort* is only legal from Staging with an empty pending set.
type Editor struct {
	mu      sync.Mutex
	lists   []*backend.IndexedFile
	enc     Encoding
	pending []map[uint32][]byte
	state   editorState
}

func newEditor(lists []*backend.IndexedFile, enc Encoding) *Editor {
	pending := make([]map[uint32][]byte, len(lists))
	for i := range pending {
		pending[i] = make(map[uint32][]byte)
	}
	return &Editor{lists: lists, enc: enc, pending: pending}
}

// AnnounceTermCount hints that posting-list p will receive roughly count
// distinct term-ids; the editor does not act on it beyond accepting it
// (the underlying IndexedFile grows precisely on commit, not speculatively).
func (e *Editor) AnnounceTermCount(p int, count int) {}

// InsertPosts records storageID against every term-id in termIDs, for
// posting-list p.
func (e *Editor) InsertPosts(p int, storageID uint64, termIDs []uint32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	enc := e.enc.EncodeOne(storageID)
	for _, tid := range termIDs {
		e.pending[p][tid] = append(e.pending[p][tid], enc...)
	}
}

// Commit runs the per-posting-list commit algorithm for every posting-list
// with pending writes:
//  1. take pending entries, sorted ascending by term-id;
//  2. compute max_tid, padding empty records up to it if the posting-list
//     doesn't yet have that many term slots;
//  3. pre-grow the record region once, sized by the total pending bytes;
//  4. append every (term_id, bytes) pair in one pass over the record table.
//
// Steps 3 and 4 are both performed by IndexedFile.AppendToRecords, which
// sizes its single Grow call from the sum of relocated record lengths.
// Commit is idempotent when there is nothing pending.
func (e *Editor) Commit() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for p, pending := range e.pending {
		if len(pending) == 0 {
			continue
		}
		file := e.lists[p]

		tids := make([]uint32, 0, len(pending))
		for tid := range pending {
			tids = append(tids, tid)
		}
		sort.Slice(tids, func(i, j int) bool { return tids[i] < tids[j] })

		maxTid := tids[len(tids)-1]
		if uint32(file.Len()) <= maxTid {
			pad := int(maxTid) + 1 - int(file.Len())
			if err := file.PadEmpty(pad); err != nil {
				return err
			}
		}

		updates := make(map[uint32][]byte, len(tids))
		for _, tid := range tids {
			updates[tid] = pending[tid]
		}
		if err := file.AppendToRecords(updates); err != nil {
			return err
		}

		e.pending[p] = make(map[uint32][]byte)
	}
	return nil
}

// SortPostings decodes record (p, t) into a scratch slice, sorts it
// ascending, and re-encodes it in place. Requires pending to be empty;
// otherwise fails with errs.ErrUnsupported.
func (e *Editor) SortPostings(p int, t uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.pending[p]) != 0 {
		return errs.ErrUnsupported
	}
	return e.sortOne(p, t)
}

// SortAllPostings sorts every (p, t) record across every posting-list.
// Requires pending to be empty everywhere; otherwise fails with
// errs.ErrUnsupported.
func (e *Editor) SortAllPostings() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, pending := range e.pending {
		if len(pending) != 0 {
			return errs.ErrUnsupported
		}
	}
	for p, file := range e.lists {
		n := file.Len()
		for t := uint32(0); t < n; t++ {
			if err := e.sortOne(p, t); err != nil {
				return err
			}
		}
	}
	e.state = stateSorted
	return nil
}

func (e *Editor) sortOne(p int, t uint32) error {
	if e.state != stateStaging {
		return errs.ErrUnsupported
	}
	file := e.lists[p]
	raw, err := file.Get(t)
	if err != nil {
		return err
	}
	ids, err := e.enc.DecodeAll(raw)
	if err != nil {
		return err
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	_, err = file.Replace(t, e.enc.EncodeAll(ids))
	return err
}
