// Package ngram implements the fixed-length character-tuple term shape used
// for substring indexing (spec.md §3, "N-gram<N>").
//
// Go has no const generics, so the tuple's length is carried by the array
// type itself rather than by an integer type parameter: Ngram[[3]rune] is
// the 3-gram, Ngram[[4]rune] the 4-gram, and so on. Ngram2/Ngram3/Ngram4/
// Ngram5 are the arities callers actually need. New and FromRunes take the
// array type as their type argument: New[[3]rune] returns an Ngram3.
package ngram

import (
	"fmt"
	"unicode/utf8"

	"github.com/arjunsr/invdx/errs"
)

// arr is the set of fixed-size rune arrays an Ngram may wrap. Each member
// fixes N at compile time via its array length.
type arr interface {
	~[1]rune | ~[2]rune | ~[3]rune | ~[4]rune | ~[5]rune | ~[6]rune | ~[7]rune | ~[8]rune
}

// Ngram is an ordered tuple of exactly N Unicode scalars. Equality and
// hashing are over the tuple (Go structs of comparable arrays are
// comparable, so Ngram values can be used directly as map keys).
type Ngram[A arr] struct {
	runes A
}

type (
	Ngram2 = Ngram[[2]rune]
	Ngram3 = Ngram[[3]rune]
	Ngram4 = Ngram[[4]rune]
	Ngram5 = Ngram[[5]rune]
)

// New builds an Ngram from the first N scalars of s, where N is fixed by A's
// array length. It fails if s has fewer than N scalars.
func New[A arr](s string) (Ngram[A], error) {
	var g Ngram[A]
	n := len(g.runes)

	i := 0
	for _, r := range s {
		if i >= n {
			break
		}
		g.runes[i] = r
		i++
	}
	if i < n {
		return g, fmt.Errorf("ngram: need %d scalars, got %d: %w", n, i, errs.ErrUnsupported)
	}
	return g, nil
}

// FromRunes builds an Ngram from the first N elements of rs, failing if rs
// is shorter than N.
func FromRunes[A arr](rs []rune) (Ngram[A], error) {
	var g Ngram[A]
	n := len(g.runes)
	if len(rs) < n {
		return g, fmt.Errorf("ngram: need %d scalars, got %d: %w", n, len(rs), errs.ErrUnsupported)
	}
	for i := 0; i < n; i++ {
		g.runes[i] = rs[i]
	}
	return g, nil
}

// Len reports N, the arity of the ngram.
func (g Ngram[A]) Len() int {
	return len(g.runes)
}

// At returns the i'th scalar of the tuple.
func (g Ngram[A]) At(i int) rune {
	return g.runes[i]
}

// Runes returns the tuple's scalars as a freshly allocated slice.
func (g Ngram[A]) Runes() []rune {
	out := make([]rune, len(g.runes))
	for i := range out {
		out[i] = g.runes[i]
	}
	return out
}

// Bytes returns the concatenation of the N scalar UTF-8 encodings in tuple
// order, with no separator. This is bit-exact regardless of platform, per
// spec.md §6.
func (g Ngram[A]) Bytes() []byte {
	buf := make([]byte, 0, utf8.UTFMax*len(g.runes))
	for i := 0; i < len(g.runes); i++ {
		buf = utf8.AppendRune(buf, g.runes[i])
	}
	return buf
}

func (g Ngram[A]) String() string {
	return string(g.Bytes())
}
