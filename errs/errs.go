// Package errs defines the sentinel errors observable across the index.
//
// Callers compare with errors.Is. Errors from the os package (file
// backend I/O) are returned as they are, not wrapped in these sentinels.
package errs

import "errors"

var (
	// ErrIO means the underlying byte region reported an I/O failure. No
	// backend in this module returns it: backend.File passes os errors
	// through unwrapped, so errors.Is(err, ErrIO) does not match them.
	ErrIO = errors.New("invdx: io error")

	// ErrOutOfBounds means an index or offset fell outside the allocated region.
	ErrOutOfBounds = errors.New("invdx: out of bounds")

	// ErrDuplicateEntry means the dictionary rejected a duplicate where one
	// was not expected.
	ErrDuplicateEntry = errors.New("invdx: duplicate entry")

	// ErrUnsupported means the operation is not legal in the current state
	// (sort while staged, insert of an empty slice, passthrough misconfiguration).
	ErrUnsupported = errors.New("invdx: unsupported operation")

	// ErrInternal means an invariant of the byte-store layer was violated.
	ErrInternal = errors.New("invdx: internal invariant violation")

	// ErrCorrupt means a serialization/deserialization or checksum failure
	// was detected while reading back persisted data.
	ErrCorrupt = errors.New("invdx: corrupt data")
)
