package storage

import "github.com/arjunsr/invdx/backend"

// Default is the Default storage (C2): payloads serialized via a Codec and
// stored as variable-length records in an IndexedFile.
type Default[S any] struct {
	file  *backend.IndexedFile
	codec Codec[S]
}

// NewDefault wraps file with codec to produce a Default storage.
func NewDefault[S any](file *backend.IndexedFile, codec Codec[S]) *Default[S] {
	return &Default[S]{file: file, codec: codec}
}

func (d *Default[S]) GetItem(id uint64) (S, error) {
	var zero S
	raw, err := d.file.Get(uint32(id))
	if err != nil {
		return zero, err
	}
	return d.codec.Decode(raw)
}

func (d *Default[S]) Len() uint64 { return uint64(d.file.Len()) }

func (d *Default[S]) IsEmpty() bool { return d.file.Len() == 0 }

func (d *Default[S]) HasItem(id uint64) bool { return id < uint64(d.file.Len()) }

// InsertItems appends every item in one call and returns First(firstID).
func (d *Default[S]) InsertItems(items []S) (InsertionResult, error) {
	if len(items) == 0 {
		return InsertionResult{}, errEmptyInsert()
	}
	encoded := make([][]byte, len(items))
	for i, item := range items {
		encoded[i] = d.codec.Encode(item)
	}
	first, err := d.file.AppendMulti(encoded)
	if err != nil {
		return InsertionResult{}, err
	}
	return InsertionResult{Kind: KindFirst, First: uint64(first)}, nil
}
