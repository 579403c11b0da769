package storage

import (
	"encoding/binary"

	"github.com/arjunsr/invdx/errs"
)

// Codec is the generic serialization collaborator spec.md pushes out of
// scope: a stable, bit-exact encode/decode pair for one payload type.
type Codec[S any] interface {
	Encode(v S) []byte
	Decode(b []byte) (S, error)
}

// BytesCodec is the identity codec for raw []byte payloads.
type BytesCodec struct{}

func (BytesCodec) Encode(v []byte) []byte { return v }

func (BytesCodec) Decode(b []byte) ([]byte, error) {
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Uint64Codec encodes a uint64 payload as 8 big-endian bytes, for Default
// storage of uint64 payloads. The CompressedInt presets' Passthrough storage
// stores no bytes and takes no codec.
type Uint64Codec struct{}

func (Uint64Codec) Encode(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[:]
}

func (Uint64Codec) Decode(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, errs.ErrCorrupt
	}
	return binary.BigEndian.Uint64(b), nil
}
