package ngram

import (
	"errors"
	"testing"

	"github.com/arjunsr/invdx/errs"
)

func TestNewExact(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  [3]rune
	}{
		{"ascii", "cat", [3]rune{'c', 'a', 't'}},
		{"exact length unicode", "あb漢", [3]rune{'あ', 'b', '漢'}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New[[3]rune](tc.input)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if g.runes != tc.want {
				t.Fatalf("got %v, want %v", g.runes, tc.want)
			}
		})
	}
}

func TestNewTruncatesExtra(t *testing.T) {
	g, err := New[[2]rune]("hello")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.runes != [2]rune{'h', 'e'} {
		t.Fatalf("got %v", g.runes)
	}
}

func TestNewTooShort(t *testing.T) {
	_, err := New[[3]rune]("あb")
	if !errors.Is(err, errs.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestNewEmpty(t *testing.T) {
	_, err := New[[1]rune]("")
	if !errors.Is(err, errs.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestFromRunes(t *testing.T) {
	g, err := FromRunes[[4]rune]([]rune("golang"))
	if err != nil {
		t.Fatalf("FromRunes: %v", err)
	}
	if got := g.Runes(); string(got) != "gola" {
		t.Fatalf("got %q", string(got))
	}
}

func TestBytesRoundTrip(t *testing.T) {
	g1, err := New[[3]rune]("あb漢"[:0] + "あb漢")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g2, err := FromRunes[[3]rune](g1.Runes())
	if err != nil {
		t.Fatalf("FromRunes: %v", err)
	}
	if g1 != g2 {
		t.Fatalf("round trip mismatch: %v != %v", g1, g2)
	}
	if string(g1.Bytes()) != "あb漢" {
		t.Fatalf("Bytes: got %q", string(g1.Bytes()))
	}
}

func TestEqualityAndMapKey(t *testing.T) {
	a, _ := New[[2]rune]("ab")
	b, _ := New[[2]rune]("ab")
	c, _ := New[[2]rune]("ac")

	if a != b {
		t.Fatal("expected equal ngrams to compare equal")
	}
	if a == c {
		t.Fatal("expected distinct ngrams to compare unequal")
	}

	m := map[Ngram2]int{a: 1}
	if _, ok := m[b]; !ok {
		t.Fatal("expected equal ngram to hit same map key")
	}
}

func TestLenAndAt(t *testing.T) {
	g, err := New[[4]rune]("wxyz")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", g.Len())
	}
	if g.At(0) != 'w' || g.At(3) != 'z' {
		t.Fatalf("At() mismatch: %v", g)
	}
}
