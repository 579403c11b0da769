// Package invdx assembles the dictionary (C1), storage (C2) and postings
// (C3) components into a complete Index (C4) behind six typed presets, and
// implements the bulk editor (C5) that batches writes across all three.
//
// spec.md's exactly-three-sub-regions partition describes the logical
// split {dict, storage, postings}; storage and postings each need two
// growable areas internally (a blob region and an offset table), so the
// concrete MultiFile backing an Index carries one raw sub-region per
// growable area those three logical components need, in that logical
// order, rather than exactly three raw regions.
package invdx

import (
	"fmt"

	"github.com/arjunsr/invdx/backend"
	"github.com/arjunsr/invdx/dict"
	"github.com/arjunsr/invdx/postings"
	"github.com/arjunsr/invdx/storage"
	"github.com/arjunsr/invdx/term"
)

// Preset names the six dict × storage × postings combinations spec.md
// §4.4 specifies.
type Preset int

const (
	PresetDefault Preset = iota
	PresetCompressed
	PresetCompressedInt
	PresetDefaultNgram
	PresetCompressedNgram
	PresetCompressedIntNgram
)

func (p Preset) String() string {
	switch p {
	case PresetDefault:
		return "Default"
	case PresetCompressed:
		return "Compressed"
	case PresetCompressedInt:
		return "CompressedInt"
	case PresetDefaultNgram:
		return "DefaultNgram"
	case PresetCompressedNgram:
		return "CompressedNgram"
	case PresetCompressedIntNgram:
		return "CompressedIntNgram"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// RegionFactory produces one fresh growable Backend per call. MemoryRegions
// and FileRegions are the two backends this module ships.
type RegionFactory func() (backend.Backend, error)

// MemoryRegions returns a RegionFactory backed entirely by backend.Memory,
// for tests and pure in-RAM indexes.
func MemoryRegions() RegionFactory {
	return func() (backend.Backend, error) {
		return backend.NewMemory(), nil
	}
}

// FileRegions returns a RegionFactory that opens one disk file per region
// under dir, named by creation order (region-001.bin, region-002.bin, ...).
func FileRegions(dir string) RegionFactory {
	n := 0
	return func() (backend.Backend, error) {
		n++
		return backend.OpenFile(fmt.Sprintf("%s/region-%03d.bin", dir, n))
	}
}

// regionLayout is the raw sub-region assignment under one MultiFile:
// region 0 is reserved for the dictionary (nothing reads or writes it; the
// dictionary lives in memory only), 1/2 are the storage
// IndexedFile's blob/index pair, and the remaining pairs are one
// blob/index pair per posting-list, in posting-list order.
type regionLayout struct {
	mf           *backend.MultiFile
	dictRegion   backend.Backend
	storageFile  *backend.IndexedFile
	postingFiles []*backend.IndexedFile
}

func buildRegions(numPostingLists int, rf RegionFactory) (*regionLayout, error) {
	n := 3 + 2*numPostingLists
	regions := make([]backend.Backend, n)
	magics := make([][8]byte, n)
	for i := range regions {
		b, err := rf()
		if err != nil {
			return nil, err
		}
		regions[i] = b
	}
	copy(magics[0][:], []byte("dict"))
	copy(magics[1][:], []byte("stblob"))
	copy(magics[2][:], []byte("stidx"))
	for i := 0; i < numPostingLists; i++ {
		copy(magics[3+2*i][:], []byte(fmt.Sprintf("pb%03d", i)))
		copy(magics[3+2*i+1][:], []byte(fmt.Sprintf("pi%03d", i)))
	}

	super, err := rf()
	if err != nil {
		return nil, err
	}
	mf, err := backend.NewMultiFile(super, regions, magics)
	if err != nil {
		return nil, err
	}

	storageFile := backend.NewIndexedFile(mf.Region(1), mf.Region(2))
	postingFiles := make([]*backend.IndexedFile, numPostingLists)
	for i := 0; i < numPostingLists; i++ {
		postingFiles[i] = backend.NewIndexedFile(mf.Region(3+2*i), mf.Region(3+2*i+1))
	}

	return &regionLayout{
		mf:           mf,
		dictRegion:   mf.Region(0),
		storageFile:  storageFile,
		postingFiles: postingFiles,
	}, nil
}

// NewDefault builds the Default preset: hash dictionary, Default storage,
// Default (8-byte) postings, generic term type T and payload type S.
func NewDefault[T term.Term, S any](numPostingLists int, codec storage.Codec[S], rf RegionFactory) (*Index[T, S], error) {
	rl, err := buildRegions(numPostingLists, rf)
	if err != nil {
		return nil, err
	}
	st := storage.NewDefault[S](rl.storageFile, codec)
	return &Index[T, S]{
		mf:        rl.mf,
		dictImpl:  dict.NewDefault[T](),
		storage:   st,
		storageEd: st,
		post:      postings.New(rl.postingFiles, postings.DefaultEncoding{}),
	}, nil
}

// NewCompressed builds the Compressed preset: hash dictionary, Default
// storage, varint postings.
func NewCompressed[T term.Term, S any](numPostingLists int, codec storage.Codec[S], rf RegionFactory) (*Index[T, S], error) {
	rl, err := buildRegions(numPostingLists, rf)
	if err != nil {
		return nil, err
	}
	st := storage.NewDefault[S](rl.storageFile, codec)
	return &Index[T, S]{
		mf:        rl.mf,
		dictImpl:  dict.NewDefault[T](),
		storage:   st,
		storageEd: st,
		post:      postings.New(rl.postingFiles, postings.CompressedEncoding{}),
	}, nil
}

// NewCompressedInt builds the CompressedInt preset: hash dictionary,
// Passthrough storage keyed by the storage-id itself, varint postings.
// The payload type is uint64.
func NewCompressedInt[T term.Term](numPostingLists int, rf RegionFactory) (*Index[T, uint64], error) {
	rl, err := buildRegions(numPostingLists, rf)
	if err != nil {
		return nil, err
	}
	pt := storage.NewPassthrough[uint64](
		func(id uint64) uint64 { return id },
		func(v uint64) uint64 { return v },
	)
	_ = rl.storageFile // unused: Passthrough stores nothing
	return &Index[T, uint64]{
		mf:        rl.mf,
		dictImpl:  dict.NewDefault[T](),
		storage:   pt,
		storageEd: pt,
		post:      postings.New(rl.postingFiles, postings.CompressedEncoding{}),
	}, nil
}

// NewDefaultNgram builds the DefaultNgram preset: n-gram dictionary,
// Default storage, Default postings.
func NewDefaultNgram[T term.Term, S any](numPostingLists int, codec storage.Codec[S], rf RegionFactory) (*Index[T, S], error) {
	rl, err := buildRegions(numPostingLists, rf)
	if err != nil {
		return nil, err
	}
	st := storage.NewDefault[S](rl.storageFile, codec)
	return &Index[T, S]{
		mf:        rl.mf,
		dictImpl:  dict.NewNgram[T](),
		storage:   st,
		storageEd: st,
		post:      postings.New(rl.postingFiles, postings.DefaultEncoding{}),
	}, nil
}

// NewCompressedNgram builds the CompressedNgram preset: n-gram dictionary,
// Default storage, varint postings.
func NewCompressedNgram[T term.Term, S any](numPostingLists int, codec storage.Codec[S], rf RegionFactory) (*Index[T, S], error) {
	rl, err := buildRegions(numPostingLists, rf)
	if err != nil {
		return nil, err
	}
	st := storage.NewDefault[S](rl.storageFile, codec)
	return &Index[T, S]{
		mf:        rl.mf,
		dictImpl:  dict.NewNgram[T](),
		storage:   st,
		storageEd: st,
		post:      postings.New(rl.postingFiles, postings.CompressedEncoding{}),
	}, nil
}

// NewCompressedIntNgram builds the CompressedIntNgram preset: n-gram
// dictionary, Passthrough storage, varint postings.
func NewCompressedIntNgram[T term.Term](numPostingLists int, rf RegionFactory) (*Index[T, uint64], error) {
	rl, err := buildRegions(numPostingLists, rf)
	if err != nil {
		return nil, err
	}
	pt := storage.NewPassthrough[uint64](
		func(id uint64) uint64 { return id },
		func(v uint64) uint64 { return v },
	)
	return &Index[T, uint64]{
		mf:        rl.mf,
		dictImpl:  dict.NewNgram[T](),
		storage:   pt,
		storageEd: pt,
		post:      postings.New(rl.postingFiles, postings.CompressedEncoding{}),
	}, nil
}
