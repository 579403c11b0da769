package storage

import (
	"errors"
	"testing"

	"github.com/arjunsr/invdx/backend"
	"github.com/arjunsr/invdx/errs"
)

func newTestDefault() *Default[[]byte] {
	file := backend.NewIndexedFile(backend.NewMemory(), backend.NewMemory())
	return NewDefault[[]byte](file, BytesCodec{})
}

func TestDefaultInsertAndGet(t *testing.T) {
	d := newTestDefault()
	res, err := d.InsertItems([][]byte{[]byte("a"), []byte("bb"), []byte("ccc")})
	if err != nil {
		t.Fatalf("InsertItems: %v", err)
	}
	if res.Kind != KindFirst || res.First != 0 {
		t.Fatalf("res = %+v, want First(0)", res)
	}

	for i, want := range [][]byte{[]byte("a"), []byte("bb"), []byte("ccc")} {
		got, err := d.GetItem(uint64(i))
		if err != nil || string(got) != string(want) {
			t.Fatalf("GetItem(%d) = %q, %v, want %q", i, got, err, want)
		}
	}
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	if !d.HasItem(2) || d.HasItem(3) {
		t.Fatal("HasItem boundary mismatch")
	}
}

func TestDefaultRejectsEmptyInsert(t *testing.T) {
	d := newTestDefault()
	_, err := d.InsertItems(nil)
	if !errors.Is(err, errs.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestDefaultSecondInsertContinuesIds(t *testing.T) {
	d := newTestDefault()
	d.InsertItems([][]byte{[]byte("x")})
	res, err := d.InsertItems([][]byte{[]byte("y"), []byte("z")})
	if err != nil {
		t.Fatalf("InsertItems: %v", err)
	}
	if res.First != 1 {
		t.Fatalf("First = %d, want 1", res.First)
	}
}

func TestPassthroughIdentityRoundTrip(t *testing.T) {
	p := NewPassthrough[uint64](
		func(id uint64) uint64 { return id },
		func(v uint64) uint64 { return v },
	)

	res, err := p.InsertItems([]uint64{42, 7, 100})
	if err != nil {
		t.Fatalf("InsertItems: %v", err)
	}
	if res.Kind != KindIds {
		t.Fatalf("Kind = %v, want KindIds", res.Kind)
	}
	if res.Ids[0] != 42 || res.Ids[1] != 7 || res.Ids[2] != 100 {
		t.Fatalf("Ids = %v", res.Ids)
	}

	got, err := p.GetItem(42)
	if err != nil || got != 42 {
		t.Fatalf("GetItem(42) = %v, %v", got, err)
	}
}

func TestPassthroughLenIsZeroByContract(t *testing.T) {
	p := NewPassthrough[uint64](func(id uint64) uint64 { return id }, func(v uint64) uint64 { return v })
	if p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", p.Len())
	}
	// GetItem must still work for arbitrarily large ids despite Len()==0.
	got, err := p.GetItem(1_000_000)
	if err != nil || got != 1_000_000 {
		t.Fatalf("GetItem = %v, %v", got, err)
	}
}

func TestPassthroughRejectsEmptyInsert(t *testing.T) {
	p := NewPassthrough[uint64](func(id uint64) uint64 { return id }, func(v uint64) uint64 { return v })
	_, err := p.InsertItems(nil)
	if !errors.Is(err, errs.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
