package dict

import (
	"strconv"
	"testing"

	"github.com/arjunsr/invdx/term"
)

func TestDefaultInsertOrGetSingleDedupes(t *testing.T) {
	d := NewDefault[term.String]()

	id1 := d.InsertOrGetSingle("apple")
	id2 := d.InsertOrGetSingle("banana")
	id3 := d.InsertOrGetSingle("apple")

	if id1 != id3 {
		t.Fatalf("expected re-insert of existing term to return same id: %d != %d", id1, id3)
	}
	if id1 == id2 {
		t.Fatal("expected distinct terms to get distinct ids")
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
}

func TestDefaultTermIDLookupWithoutMutation(t *testing.T) {
	d := NewDefault[term.String]()
	if _, ok := d.TermID("missing"); ok {
		t.Fatal("expected lookup of absent term to report not found")
	}
	if d.Len() != 0 {
		t.Fatalf("lookup must not mutate dictionary, Len() = %d", d.Len())
	}

	id := d.InsertOrGetSingle("present")
	got, ok := d.TermID("present")
	if !ok || got != id {
		t.Fatalf("TermID = (%d, %v), want (%d, true)", got, ok, id)
	}
}

func TestDefaultIdsAreDenseFromZero(t *testing.T) {
	d := NewDefault[term.String]()
	for i := 0; i < 5; i++ {
		got := d.InsertOrGetSingle(term.String(strconv.Itoa(i)))
		if got != uint32(i) {
			t.Fatalf("insert %d got id %d, want %d", i, got, i)
		}
	}
}

func TestDefaultGrowsAcrossManyInserts(t *testing.T) {
	d := NewDefault[term.String]()
	const n = 10_000
	for i := 0; i < n; i++ {
		d.InsertOrGetSingle(term.String(strconv.Itoa(i)))
	}
	if d.Len() != n {
		t.Fatalf("Len() = %d, want %d", d.Len(), n)
	}
	for i := 0; i < n; i++ {
		id, ok := d.TermID(term.String(strconv.Itoa(i)))
		if !ok || id != uint32(i) {
			t.Fatalf("TermID(%d) = (%d, %v)", i, id, ok)
		}
	}
}

func TestDefaultAnnounceNewTermsDoesNotChangeSemantics(t *testing.T) {
	d := NewDefault[term.String]()
	d.AnnounceNewTerms(1000, 16)
	id := d.InsertOrGetSingle("x")
	if id != 0 {
		t.Fatalf("id = %d, want 0", id)
	}
	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
}

func TestDefaultOptimizePreservesLookups(t *testing.T) {
	d := NewDefault[term.String]()
	ids := map[term.String]uint32{}
	for i := 0; i < 50; i++ {
		key := term.String(strconv.Itoa(i))
		ids[key] = d.InsertOrGetSingle(key)
	}

	d.Optimize(func(a, b term.String) int {
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})

	for k, want := range ids {
		got, ok := d.TermID(k)
		if !ok || got != want {
			t.Fatalf("after optimize, TermID(%q) = (%d, %v), want (%d, true)", k, got, ok, want)
		}
	}
	if d.Len() != 50 {
		t.Fatalf("Len() after optimize = %d, want 50", d.Len())
	}
}

func TestNgramInsertUnconditionallyAppends(t *testing.T) {
	d := NewNgram[term.String]()

	id1 := d.InsertOrGetSingle("aa")
	id2 := d.InsertOrGetSingle("aa")

	if id1 == id2 {
		t.Fatal("n-gram dictionary must assign a fresh id per insert, even for a repeated key")
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (one slot per insert call)", d.Len())
	}

	// TermID reflects only the most recent insert of a repeated key; it is
	// not a record of insertion history.
	got, ok := d.TermID("aa")
	if !ok || got != id2 {
		t.Fatalf("TermID(\"aa\") = (%d, %v), want (%d, true)", got, ok, id2)
	}
}

func TestNgramIdsAreDenseFromZero(t *testing.T) {
	d := NewNgram[term.String]()
	for i := 0; i < 5; i++ {
		got := d.InsertOrGetSingle(term.String(strconv.Itoa(i)))
		if got != uint32(i) {
			t.Fatalf("insert %d got id %d, want %d", i, got, i)
		}
	}
	if d.IsEmpty() {
		t.Fatal("expected non-empty dictionary")
	}
}
