package backend

import "testing"

func TestMemoryGrowWriteRead(t *testing.T) {
	m := NewMemory()
	base, err := m.Grow(8)
	if err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if base != 0 {
		t.Fatalf("base = %d, want 0", base)
	}
	if m.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", m.Len())
	}

	if err := m.WriteAt(0, []byte("hello!!!")); err != nil {
		t.Fatalf("WriteAt: %v", err)
	}
	got, err := m.ReadAt(0, 8)
	if err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if string(got) != "hello!!!" {
		t.Fatalf("got %q", got)
	}
}

func TestMemorySecondGrowAppendsAtTail(t *testing.T) {
	m := NewMemory()
	b1, _ := m.Grow(4)
	b2, _ := m.Grow(4)
	if b1 != 0 || b2 != 4 {
		t.Fatalf("bases = %d, %d, want 0, 4", b1, b2)
	}
}

func TestMemoryOutOfBounds(t *testing.T) {
	m := NewMemory()
	m.Grow(4)
	if _, err := m.ReadAt(0, 8); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
	if err := m.WriteAt(2, []byte("abc")); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
}
