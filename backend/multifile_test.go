package backend

import "testing"

func TestMultiFileRoundTrip(t *testing.T) {
	super := NewMemory()
	regions := []Backend{NewMemory(), NewMemory(), NewMemory()}
	magics := [][8]byte{{'d', 'i', 'c', 't'}, {'s', 't', 'o', 'r'}, {'p', 'o', 's', 't'}}

	mf, err := NewMultiFile(super, regions, magics)
	if err != nil {
		t.Fatalf("NewMultiFile: %v", err)
	}

	regions[0].Grow(4)
	regions[0].WriteAt(0, []byte("abcd"))
	regions[1].Grow(2)
	regions[1].WriteAt(0, []byte("xy"))

	if err := mf.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reopened, err := OpenMultiFile(super, regions)
	if err != nil {
		t.Fatalf("OpenMultiFile: %v", err)
	}
	got, err := reopened.Region(0).ReadAt(0, 4)
	if err != nil || string(got) != "abcd" {
		t.Fatalf("region 0 = %q, %v", got, err)
	}
}

func TestMultiFileDetectsCorruption(t *testing.T) {
	super := NewMemory()
	regions := []Backend{NewMemory()}
	magics := [][8]byte{{'d', 'i', 'c', 't'}}

	mf, err := NewMultiFile(super, regions, magics)
	if err != nil {
		t.Fatalf("NewMultiFile: %v", err)
	}
	regions[0].Grow(4)
	regions[0].WriteAt(0, []byte("abcd"))
	if err := mf.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	// Corrupt the region after the checksum was recorded.
	regions[0].WriteAt(0, []byte("zzzz"))

	if _, err := OpenMultiFile(super, regions); err == nil {
		t.Fatal("expected corruption to be detected")
	}
}
