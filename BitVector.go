/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package succinct9 provides an immutable succinct bit vector: a caller-
// supplied array of 64-bit words augmented with the Rank9/Select9 broadword
// index (Vigna, "Broadword Implementation of Rank/Select Queries"), which
// answers rank(n) (the number of 1-bits strictly before position n) in a
// handful of memory accesses and builds the inventory select(n) needs.
//
// The three cooperating pieces live in their own packages: broadword (the
// SWAR popcount and bit-scan primitives), rank9 (the two-level rank table),
// and select9 (the density-adaptive select inventory, plus a query built
// against it). This package ties them into one immutable aggregate.
package succinct9

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unsafe"

	"github.com/vigna9/succinct9/fingerprint"
	"github.com/vigna9/succinct9/rank9"
	"github.com/vigna9/succinct9/select9"
)

const _BITS_PER_WORD = 64

// SuccinctBitVector is an immutable bit vector over a caller-supplied array
// of 64-bit words, augmented with the Rank9 table and Select9 inventory.
// It exclusively owns words, its rank table, and its select inventory;
// none of the three is mutated after Prepare returns, so any number of
// goroutines may call its query methods concurrently without
// synchronization.
type SuccinctBitVector struct {
	words []uint64
	size  int
	rank  *rank9.Table
	sel   *select9.Inventory
}

// Prepare takes ownership of words (a bit vector padded to a whole word;
// any bits beyond size in the final word must be zero) and builds the
// Rank9 table and Select9 inventory over it. An empty words slice is
// accepted and yields the unique empty succinct vector (size 0).
func Prepare(words []uint64, opts ...Option) (*SuccinctBitVector, error) {
	cfg := &buildConfig{}

	for _, opt := range opts {
		opt(cfg)
	}

	size := len(words) * _BITS_PER_WORD

	table := rank9.Build(words)

	if len(cfg.listeners) > 0 {
		h := fingerprint.XXHash64Words(words, 0)
		cfg.notify(NewEvent(EventRank9Built, int64(len(words)), h, EventHash64Bits, time.Time{}))
	}

	inv := select9.Build(words, table)

	if len(cfg.listeners) > 0 {
		h := fingerprint.XXHash64Words(words, 0)
		cfg.notify(NewEvent(EventSelect9Built, int64(len(words)), h, EventHash64Bits, time.Time{}))
	}

	return &SuccinctBitVector{words: words, size: size, rank: table, sel: inv}, nil
}

// Size returns the number of bits in the vector (len(words) * 64).
func (this *SuccinctBitVector) Size() int {
	return this.size
}

// Len is an alias for Size.
func (this *SuccinctBitVector) Len() int {
	return this.size
}

// PopCount returns the total number of 1-bits in the vector.
func (this *SuccinctBitVector) PopCount() int {
	return int(this.rank.NumOnes())
}

// UncheckedIndex returns the bit at position n. The caller must guarantee
// 0 <= n < Size(); behavior is undefined otherwise.
func (this *SuccinctBitVector) UncheckedIndex(n int) bool {
	w := n / _BITS_PER_WORD
	b := uint(n % _BITS_PER_WORD)
	return (this.words[w]>>b)&1 != 0
}

// Index returns the bit at position n, or an error if n is out of range.
func (this *SuccinctBitVector) Index(n int) (bool, error) {
	if n < 0 || n >= this.size {
		return false, indexOutOfRangeError(n, this.size)
	}

	return this.UncheckedIndex(n), nil
}

// UncheckedRank returns the number of 1-bits at positions strictly less
// than p. The caller must guarantee 0 <= p <= Size(); behavior is
// undefined otherwise.
func (this *SuccinctBitVector) UncheckedRank(p int) int {
	return int(this.rank.Rank(this.words, p))
}

// Rank returns the number of 1-bits at positions strictly less than p, or
// an error if p is outside [0, Size()].
func (this *SuccinctBitVector) Rank(p int) (int, error) {
	if p < 0 || p > this.size {
		return 0, rankOutOfRangeError(p, this.size)
	}

	return this.UncheckedRank(p), nil
}

// Select returns the bit position of the n-th 1-bit (0-indexed), or an
// error if n names no 1-bit in the vector. This query is not present in
// the source this library's algorithm was distilled from; it is built
// directly against the Select9 inventory contracts that are.
func (this *SuccinctBitVector) Select(n int) (int, error) {
	pos, err := this.sel.Select(this.words, this.rank, n)

	if err != nil {
		return 0, selectOutOfRangeError(n, int(this.sel.NumOnes()))
	}

	return pos, nil
}

// SizeBytes returns the approximate in-memory footprint of the vector:
// the raw words plus the Rank9 table and Select9 inventory arrays.
func (this *SuccinctBitVector) SizeBytes() int {
	sizeofInt := int(unsafe.Sizeof(int(0)))
	sizeofUint64 := int(unsafe.Sizeof(uint64(0)))

	size := len(this.words) * sizeofUint64
	size += (2*this.rank.NumBlocks() + 1) * sizeofUint64
	size += len(this.sel.Primary) * sizeofUint64
	size += len(this.sel.Secondary) * sizeofUint64
	size += len(this.sel.Offsets) * sizeofInt

	return size
}

// Hash returns an XXHash64 fingerprint of the underlying words, useful for
// cheap equality/debug checks without re-walking the vector.
func (this *SuccinctBitVector) Hash() uint64 {
	return fingerprint.XXHash64Words(this.words, 0)
}

// String returns a bit-string representation of the vector, one word per
// line, least-significant bit first to match the vector's little-endian
// bit order (bit 0 is the lowest-order bit of words[0]).
func (this *SuccinctBitVector) String() string {
	buf := new(bytes.Buffer)

	for i, w := range this.words {
		bits := fmt.Sprintf("%064b", w)
		bits = reverse(bits)
		fmt.Fprintf(buf, "%s [%d-%d]\n", bits, i*64, i*64+63)
	}

	return strings.TrimRight(buf.String(), "\n")
}

func reverse(s string) string {
	r := []byte(s)

	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return string(r)
}
