package invdx

import (
	"github.com/arjunsr/invdx/dict"
	"github.com/arjunsr/invdx/errs"
	"github.com/arjunsr/invdx/postings"
	"github.com/arjunsr/invdx/storage"
	"github.com/arjunsr/invdx/term"
)

// Item is one pending insertion: a payload indexed under a set of terms.
type Item[T term.Term, S any] struct {
	Terms   []T
	Payload S
}

type postKey struct {
	list          int
	provStorageID uint32
}

// Editor batches many (terms, payload) insertions to amortize dictionary
// and postings mutations. It owns three staging structures plus a
// cross-commit term-id cache:
//
//   - storedItems: ordered pending payloads, position = provisional
//     storage-id within the batch.
//   - terms / termsOrder: a dense T -> provisional-u32 assignment.
//   - postMap: (posting-list-id, provisional-storage-id) -> provisional
//     term-ids.
//   - termFreqCache: T -> permanent-u32, surviving across commits so a
//     term seen in an earlier commit skips the dictionary lookup.
type Editor[T term.Term, S any] struct {
	dictImpl dict.Dictionary[T]
	storage  storage.Editor[S]
	post     *postings.Editor

	storedItems []S
	terms       map[T]uint32
	termsOrder  []T
	postMap     map[postKey][]uint32

	termFreqCache map[T]uint32

	sortArmed bool
	finished  bool
}

func newEditor[T term.Term, S any](d dict.Dictionary[T], st storage.Editor[S], post *postings.Editor) *Editor[T, S] {
	return &Editor[T, S]{
		dictImpl:      d,
		storage:       st,
		post:          post,
		terms:         make(map[T]uint32),
		postMap:       make(map[postKey][]uint32),
		termFreqCache: make(map[T]uint32),
	}
}

// Insert is shorthand for InsertInPostings(item, []int{0}).
func (e *Editor[T, S]) Insert(item Item[T, S]) bool {
	return e.InsertInPostings(item, []int{0})
}

// InsertInPostings stages item's payload once and, for each posting-list id
// given, records item's terms against that payload's provisional
// storage-id. Returns false (no-op) iff item.Terms or postingListIDs is
// empty.
func (e *Editor[T, S]) InsertInPostings(item Item[T, S], postingListIDs []int) bool {
	if len(item.Terms) == 0 || len(postingListIDs) == 0 {
		return false
	}

	provStorageID := uint32(len(e.storedItems))
	e.storedItems = append(e.storedItems, item.Payload)

	provTermIDs := make([]uint32, len(item.Terms))
	for i, t := range item.Terms {
		if id, ok := e.terms[t]; ok {
			provTermIDs[i] = id
		} else {
			id := uint32(len(e.terms))
			e.terms[t] = id
			e.termsOrder = append(e.termsOrder, t)
			provTermIDs[i] = id
		}
	}

	for _, p := range postingListIDs {
		key := postKey{list: p, provStorageID: provStorageID}
		e.postMap[key] = append(e.postMap[key], provTermIDs...)
	}
	return true
}

// WithSortedPostings arms a post-commit full sort to run during Finish.
func (e *Editor[T, S]) WithSortedPostings() *Editor[T, S] {
	e.sortArmed = true
	return e
}

// Reserve hints that items more payloads and terms more distinct terms are
// coming in the current (not-yet-committed) batch.
func (e *Editor[T, S]) Reserve(items, terms int) {
	if items > 0 && cap(e.storedItems)-len(e.storedItems) < items {
		grown := make([]S, len(e.storedItems), len(e.storedItems)+items)
		copy(grown, e.storedItems)
		e.storedItems = grown
	}
}

// AnnounceDictTermCount forwards a capacity hint to the dictionary.
func (e *Editor[T, S]) AnnounceDictTermCount(count int, avgBytes int) {
	e.dictImpl.AnnounceNewTerms(count, avgBytes)
}

// Commit performs the three-phase write: storage, then dictionary, then
// postings. Idempotent on an empty batch.
func (e *Editor[T, S]) Commit() error {
	if len(e.storedItems) == 0 {
		return nil
	}

	// Phase 1: storage. The provisional storage-id s maps to the
	// permanent id first+s (InsertionResult.First) or ids[s]
	// (InsertionResult.Ids).
	res, err := e.storage.InsertItems(e.storedItems)
	if err != nil {
		return err
	}
	permStorageID := func(s uint32) uint64 {
		if res.Kind == storage.KindFirst {
			return res.First + uint64(s)
		}
		return res.Ids[s]
	}

	// Phase 2: dictionary. For each (t, provisional_id), consult
	// termFreqCache; on miss, call InsertOrGetSingle and cache it. Build a
	// provisional -> permanent term-id table sized to this batch.
	permTermID := make([]uint32, len(e.termsOrder))
	for prov, t := range e.termsOrder {
		if id, ok := e.termFreqCache[t]; ok {
			permTermID[prov] = id
			continue
		}
		id := e.dictImpl.InsertOrGetSingle(t)
		e.termFreqCache[t] = id
		permTermID[prov] = id
	}

	// Phase 3: postings. Translate provisional term-ids and the
	// storage-id, then stage with the postings editor; finally commit it.
	for key, provTermIDs := range e.postMap {
		permTermIDs := make([]uint32, len(provTermIDs))
		for i, pt := range provTermIDs {
			permTermIDs[i] = permTermID[pt]
		}
		e.post.InsertPosts(key.list, permStorageID(key.provStorageID), permTermIDs)
	}
	if err := e.post.Commit(); err != nil {
		return err
	}

	e.storedItems = e.storedItems[:0]
	e.terms = make(map[T]uint32)
	e.termsOrder = e.termsOrder[:0]
	e.postMap = make(map[postKey][]uint32)
	return nil
}

// Finish consumes the editor: if armed, it runs a full sort_all_postings
// pass. Must be called exactly once, after the last Commit.
func (e *Editor[T, S]) Finish() error {
	if e.finished {
		return errs.ErrUnsupported
	}
	e.finished = true
	if e.sortArmed {
		return e.post.SortAllPostings()
	}
	return nil
}
