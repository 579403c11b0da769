// Package backend implements the byte-addressable storage layer that the
// dictionary, storage and postings components are built on: a growable
// byte region (Backend), a set of named sub-regions, each its own Backend,
// under one superblock Backend (MultiFile), and variable-length records
// with an offset table (IndexedFile). A MultiFile does not partition a
// single byte region.
//
// spec.md scopes this layer out as "specified only by interface"; this
// package supplies the two concrete implementations every preset needs.
package backend

import "github.com/arjunsr/invdx/errs"

// Backend is a growable byte region addressed by absolute offset.
type Backend interface {
	// ReadAt returns n bytes starting at off. It fails with
	// errs.ErrOutOfBounds if the range exceeds Len().
	ReadAt(off int64, n int) ([]byte, error)

	// WriteAt overwrites len(data) bytes starting at off. It fails with
	// errs.ErrOutOfBounds if the range exceeds Len().
	WriteAt(off int64, data []byte) error

	// Grow extends the region by extra bytes, zero-filled, and returns the
	// offset at which the new space begins.
	Grow(extra int64) (base int64, err error)

	// Len reports the current region size in bytes.
	Len() int64

	// Flush persists any buffered state to the backing medium.
	Flush() error

	// Close releases resources held by the backend. Flush is not implied.
	Close() error
}

func checkRange(regionLen, off int64, n int) error {
	if off < 0 || n < 0 || off+int64(n) > regionLen {
		return errs.ErrOutOfBounds
	}
	return nil
}
