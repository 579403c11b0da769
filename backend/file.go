package backend

import (
	"os"
	"sync"

	"github.com/edsrzf/mmap-go"
)

// File is a disk-backed Backend: an os.File truncated to grow, with a
// read-only mmap view refreshed after every growth. This mirrors the
// teacher's segment-growth-then-reopen pattern, but for a single region
// that is never rotated — postings are addressed by absolute offset within
// one region, so segment rotation would break that addressing.
type File struct {
	mu   sync.Mutex
	f    *os.File
	size int64
	view mmap.MMap
}

// OpenFile opens or creates path as a growable disk backend.
func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	b := &File{f: f, size: fi.Size()}
	if b.size > 0 {
		if err := b.remap(); err != nil {
			f.Close()
			return nil, err
		}
	}
	return b, nil
}

func (b *File) remap() error {
	if b.view != nil {
		if err := b.view.Unmap(); err != nil {
			return err
		}
		b.view = nil
	}
	if b.size == 0 {
		return nil
	}
	view, err := mmap.MapRegion(b.f, int(b.size), mmap.RDWR, 0, 0)
	if err != nil {
		return err
	}
	b.view = view
	return nil
}

func (b *File) ReadAt(off int64, n int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := checkRange(b.size, off, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b.view[off:off+int64(n)])
	return out, nil
}

func (b *File) WriteAt(off int64, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := checkRange(b.size, off, len(data)); err != nil {
		return err
	}
	copy(b.view[off:], data)
	return nil
}

func (b *File) Grow(extra int64) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	base := b.size
	newSize := b.size + extra
	if err := b.f.Truncate(newSize); err != nil {
		return 0, err
	}
	b.size = newSize
	if err := b.remap(); err != nil {
		return 0, err
	}
	return base, nil
}

func (b *File) Len() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

func (b *File) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.view != nil {
		if err := b.view.Flush(); err != nil {
			return err
		}
	}
	return b.f.Sync()
}

func (b *File) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.view != nil {
		if err := b.view.Unmap(); err != nil {
			return err
		}
		b.view = nil
	}
	return b.f.Close()
}
