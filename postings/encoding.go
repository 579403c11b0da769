// Package postings implements the postings component (C3): per posting-list,
// one record per term-id holding that term's ordered sequence of
// storage-ids, in either a fixed 8-byte-big-endian encoding or a
// variable-length unsigned-varint encoding.
package postings

import (
	"encoding/binary"
	"iter"

	"github.com/arjunsr/invdx/errs"
)

// Encoding converts between a storage-id sequence and its on-disk record
// bytes.
type Encoding interface {
	// EncodeOne returns the bytes for a single storage-id, as appended
	// during ingestion.
	EncodeOne(id uint64) []byte

	// EncodeAll returns the bytes for an entire ordered sequence, as
	// written by sort_postings/sort_all_postings.
	EncodeAll(ids []uint64) []byte

	// DecodeAll parses every id out of a record's bytes, in stored order.
	DecodeAll(b []byte) ([]uint64, error)

	// Decode returns a lazy, single-pass, finite sequence over a record's
	// bytes, in stored order.
	Decode(b []byte) iter.Seq[uint64]
}

// DefaultEncoding stores each storage-id as 8 big-endian bytes.
type DefaultEncoding struct{}

func (DefaultEncoding) EncodeOne(id uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	return buf[:]
}

func (e DefaultEncoding) EncodeAll(ids []uint64) []byte {
	buf := make([]byte, 0, 8*len(ids))
	for _, id := range ids {
		buf = append(buf, e.EncodeOne(id)...)
	}
	return buf
}

func (DefaultEncoding) DecodeAll(b []byte) ([]uint64, error) {
	if len(b)%8 != 0 {
		return nil, errs.ErrCorrupt
	}
	out := make([]uint64, 0, len(b)/8)
	for i := 0; i < len(b); i += 8 {
		out = append(out, binary.BigEndian.Uint64(b[i:i+8]))
	}
	return out, nil
}

func (DefaultEncoding) Decode(b []byte) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := 0; i+8 <= len(b); i += 8 {
			if !yield(binary.BigEndian.Uint64(b[i : i+8])) {
				return
			}
		}
	}
}

// CompressedEncoding stores each storage-id as an unsigned varint
// (1-10 bytes), little-endian 7-bit groups with MSB continuation — exactly
// Go's encoding/binary Uvarint scheme.
type CompressedEncoding struct{}

func (CompressedEncoding) EncodeOne(id uint64) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], id)
	return buf[:n]
}

func (e CompressedEncoding) EncodeAll(ids []uint64) []byte {
	buf := make([]byte, 0, len(ids)*2)
	for _, id := range ids {
		buf = append(buf, e.EncodeOne(id)...)
	}
	return buf
}

func (CompressedEncoding) DecodeAll(b []byte) ([]uint64, error) {
	out := make([]uint64, 0, len(b))
	for len(b) > 0 {
		v, n := binary.Uvarint(b)
		if n <= 0 {
			return nil, errs.ErrCorrupt
		}
		out = append(out, v)
		b = b[n:]
	}
	return out, nil
}

func (CompressedEncoding) Decode(b []byte) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for len(b) > 0 {
			v, n := binary.Uvarint(b)
			if n <= 0 {
				return
			}
			if !yield(v) {
				return
			}
			b = b[n:]
		}
	}
}
