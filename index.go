package invdx

import (
	"github.com/arjunsr/invdx/backend"
	"github.com/arjunsr/invdx/dict"
	"github.com/arjunsr/invdx/postings"
	"github.com/arjunsr/invdx/storage"
	"github.com/arjunsr/invdx/term"
)

// Index (C4) owns one MultiFile and exposes the three components' views,
// plus the bulk editor.
type Index[T term.Term, S any] struct {
	mf        *backend.MultiFile
	dictImpl  dict.Dictionary[T]
	storage   storage.Storage[S]
	storageEd storage.Editor[S]
	post      *postings.Postings
}

// Dict returns the immutable dictionary view.
func (ix *Index[T, S]) Dict() dict.Dictionary[T] { return ix.dictImpl }

// Storage returns the immutable storage view.
func (ix *Index[T, S]) Storage() storage.Storage[S] { return ix.storage }

// Postings returns the immutable postings view.
func (ix *Index[T, S]) Postings() *postings.Postings { return ix.post }

// Editor returns a fresh bulk editor over this index's components.
func (ix *Index[T, S]) Editor() *Editor[T, S] {
	return newEditor[T, S](ix.dictImpl, ix.storageEd, ix.post.Editor())
}

// Flush delegates to the backend, persisting every region's header and
// contents.
func (ix *Index[T, S]) Flush() error {
	return ix.mf.Flush()
}

// Close releases the backend's resources.
func (ix *Index[T, S]) Close() error {
	return ix.mf.Close()
}
