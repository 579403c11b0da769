package backend

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/arjunsr/invdx/errs"
)

// regionHeaderSize is the on-disk width of one region's superblock entry:
// an 8-byte magic tag, a uint64 length and a uint32 CRC32 over the region's
// live bytes.
const regionHeaderSize = 8 + 8 + 4

// MultiFile partitions a fixed number of named sub-regions, each its own
// growable Backend, under one small superblock Backend that records each
// region's length and checksum at a fixed offset — grounded on the
// teacher's footer-at-a-fixed-offset SST layout, inverted to sit at the
// front since sub-regions grow independently rather than being flushed once.
type MultiFile struct {
	super   Backend
	regions []Backend
	magics  [][8]byte
}

// NewMultiFile creates a fresh superblock for the given regions, each
// tagged with an 8-byte magic string (truncated/zero-padded to 8 bytes).
func NewMultiFile(super Backend, regions []Backend, magics [][8]byte) (*MultiFile, error) {
	if len(regions) != len(magics) {
		return nil, errs.ErrInternal
	}
	need := int64(len(regions) * regionHeaderSize)
	if super.Len() < need {
		if _, err := super.Grow(need - super.Len()); err != nil {
			return nil, err
		}
	}
	mf := &MultiFile{super: super, regions: regions, magics: magics}
	for i := range regions {
		if err := mf.writeHeader(i); err != nil {
			return nil, err
		}
	}
	return mf, nil
}

// OpenMultiFile reopens an existing superblock, verifying every region's
// recorded length and checksum against its backend's current contents.
func OpenMultiFile(super Backend, regions []Backend) (*MultiFile, error) {
	n := len(regions)
	need := int64(n * regionHeaderSize)
	if super.Len() < need {
		return nil, errs.ErrCorrupt
	}
	mf := &MultiFile{super: super, regions: regions, magics: make([][8]byte, n)}
	for i := range regions {
		hdr, err := super.ReadAt(int64(i*regionHeaderSize), regionHeaderSize)
		if err != nil {
			return nil, err
		}
		copy(mf.magics[i][:], hdr[0:8])
		length := binary.BigEndian.Uint64(hdr[8:16])
		wantCRC := binary.BigEndian.Uint32(hdr[16:20])

		if length > uint64(regions[i].Len()) {
			return nil, errs.ErrCorrupt
		}
		body, err := regions[i].ReadAt(0, int(length))
		if err != nil {
			return nil, err
		}
		if crc32.ChecksumIEEE(body) != wantCRC {
			return nil, errs.ErrCorrupt
		}
	}
	return mf, nil
}

func (mf *MultiFile) writeHeader(i int) error {
	var hdr [regionHeaderSize]byte
	copy(hdr[0:8], mf.magics[i][:])

	length := mf.regions[i].Len()
	body, err := mf.regions[i].ReadAt(0, int(length))
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(hdr[8:16], uint64(length))
	binary.BigEndian.PutUint32(hdr[16:20], crc32.ChecksumIEEE(body))

	return mf.super.WriteAt(int64(i*regionHeaderSize), hdr[:])
}

// Region returns the i'th sub-region's backend.
func (mf *MultiFile) Region(i int) Backend {
	return mf.regions[i]
}

// Flush recomputes and persists every region's header, then flushes the
// superblock and every region backend.
func (mf *MultiFile) Flush() error {
	for i := range mf.regions {
		if err := mf.writeHeader(i); err != nil {
			return err
		}
		if err := mf.regions[i].Flush(); err != nil {
			return err
		}
	}
	return mf.super.Flush()
}

// Close closes the superblock and every region backend.
func (mf *MultiFile) Close() error {
	var first error
	for _, r := range mf.regions {
		if err := r.Close(); err != nil && first == nil {
			first = err
		}
	}
	if err := mf.super.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
