// Package storage implements the storage component (C2): a mapping from
// storage-id to payload, with a default indexed-file-backed implementation
// and a zero-footprint passthrough implementation.
package storage

import "github.com/arjunsr/invdx/errs"

// InsertionResult reports how an editor's insert_items call laid out its
// payloads. Exactly one of First/Ids is meaningful, selected by Kind.
type InsertionResult struct {
	Kind InsertionKind
	// First is valid when Kind == First: items were laid out contiguously
	// starting at this id.
	First uint64
	// Ids is valid when Kind == Ids: items were mapped by an external
	// rule (Passthrough), one id per input item, in order.
	Ids []uint64
}

type InsertionKind int

const (
	KindFirst InsertionKind = iota
	KindIds
)

// Storage maps storage-ids to payloads of type S.
type Storage[S any] interface {
	GetItem(id uint64) (S, error)
	Len() uint64
	IsEmpty() bool
	HasItem(id uint64) bool
}

// Editor is the mutation side of a Storage.
type Editor[S any] interface {
	// InsertItems lays out items and returns how. Rejects an empty slice
	// with errs.ErrUnsupported.
	InsertItems(items []S) (InsertionResult, error)
}

func errEmptyInsert() error {
	return errs.ErrUnsupported
}
