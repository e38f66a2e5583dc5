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

// Package select9 builds the Select9 inventory: a primary array of sampled
// 1-bit positions and a density-adaptive secondary array that refines the
// location of 1-bits within each sample, plus a query built against that
// inventory (not present in the source this was distilled from).
package select9

import (
	"github.com/vigna9/succinct9/broadword"
	"github.com/vigna9/succinct9/rank9"
)

const (
	_SAMPLE_INTERVAL = 512
	_BITS_PER_BLOCK  = 512
	_WORDS_PER_BLOCK = 8
	_SENTINEL_16     = uint64(0xFFFF)
)

// Inventory is the two-level Select9 structure: Primary samples every
// 512th 1-bit's position, terminated by a sentinel equal to the vector
// size. Secondary holds one variable-length, density-adaptive record per
// consecutive pair of primary samples; Offsets[k] is the start of pair
// k's record in Secondary.
type Inventory struct {
	Primary   []uint64
	Secondary []uint64
	Offsets   []int
	ones      uint64
}

// Build scans the 1-bit positions of words (via broadword bit-scan, never
// materializing a boolean per bit) to produce the primary array, then
// walks consecutive primary pairs to emit the density-adaptive secondary
// records. table supplies the block-level rank deltas the coarse and mid
// encodings need.
func Build(words []uint64, table *rank9.Table) *Inventory {
	size := len(words) * 64

	primary, ones := buildPrimary(words, size)
	numBlocks := table.NumBlocks()
	secondary, offsets := buildSecondary(words, table, primary, numBlocks)

	return &Inventory{Primary: primary, Secondary: secondary, Offsets: offsets, ones: ones}
}

// NumOnes returns the total number of 1-bits scanned while building the
// primary array.
func (this *Inventory) NumOnes() uint64 {
	return this.ones
}

func buildPrimary(words []uint64, size int) ([]uint64, uint64) {
	var primary []uint64

	var onesSeen uint64

	for wi, word := range words {
		for w := word; w != 0; w = broadword.ClearLowest(w) {
			if onesSeen%_SAMPLE_INTERVAL == 0 {
				pos := wi*64 + broadword.TrailingZeros(w)
				primary = append(primary, uint64(pos))
			}

			onesSeen++
		}
	}

	primary = append(primary, uint64(size))

	return primary, onesSeen
}

func buildSecondary(words []uint64, table *rank9.Table, primary []uint64, numBlocks int) ([]uint64, []int) {
	numPairs := len(primary) - 1
	offsets := make([]int, numPairs)

	var secondary []uint64

	for k := 0; k < numPairs; k++ {
		offsets[k] = len(secondary)

		start := int(primary[k])
		end := int(primary[k+1])
		a := start / _BITS_PER_BLOCK
		b := end / _BITS_PER_BLOCK
		blockSpan := b - a

		switch {
		case blockSpan < 1:
			// Empty record: the pair's ones all live in block a, found by
			// scanning that single block directly at query time.

		case blockSpan < 8:
			secondary = append(secondary, encodeCoarseOnly(table, numBlocks, a, blockSpan)...)

		case blockSpan < 64:
			secondary = append(secondary, encodeCoarseMid(table, numBlocks, a, blockSpan)...)

		case blockSpan < 128:
			ones := extractOnes(words, a, b)
			secondary = append(secondary, encodeExplicit16(ones, blockSpan)...)

		case blockSpan < 256:
			ones := extractOnes(words, a, b)
			secondary = append(secondary, encodeExplicit32(ones, blockSpan)...)

		default:
			ones := extractOnes(words, a, b)
			secondary = append(secondary, encodeExplicit64(a, ones, blockSpan)...)
		}
	}

	return secondary, offsets
}

// blockDelta16 returns count(a+offset) - count(a), the 16-bit rank delta
// the coarse and mid encodings pack, or the 0xFFFF sentinel when the block
// a+offset lies past the end of the table.
func blockDelta16(table *rank9.Table, numBlocks, a, offset int) uint64 {
	j := a + offset

	if j >= numBlocks {
		return _SENTINEL_16
	}

	return (table.FirstLevel(j) - table.FirstLevel(a)) & 0xFFFF
}

func packCoarseWord(table *rank9.Table, numBlocks, a int, offsets [4]int) uint64 {
	var w uint64

	for i, off := range offsets {
		d := blockDelta16(table, numBlocks, a, off)
		w |= (d & 0xFFFF) << uint(16*i)
	}

	return w
}

// encodeCoarseOnly is the 1<=B<8 "sparse blocks, coarse only" encoding:
// two words of coarse deltas at offsets 0,4,8,12,16,20,24,28, the rest of
// the 2*blockSpan-word record left zero.
func encodeCoarseOnly(table *rank9.Table, numBlocks, a, blockSpan int) []uint64 {
	rec := make([]uint64, 2*blockSpan)
	rec[0] = packCoarseWord(table, numBlocks, a, [4]int{0, 4, 8, 12})
	rec[1] = packCoarseWord(table, numBlocks, a, [4]int{16, 20, 24, 28})

	return rec
}

// encodeCoarseMid is the 8<=B<64 "coarse + mid" encoding: the same two
// coarse words, followed by up to 16 words of fine per-block deltas covering
// block offsets 0..63 from a, four per word. At B == 8 the 16-word record
// holds only 14 mid words (offsets 0..55), which still reach block b.
func encodeCoarseMid(table *rank9.Table, numBlocks, a, blockSpan int) []uint64 {
	rec := make([]uint64, 2*blockSpan)
	rec[0] = packCoarseWord(table, numBlocks, a, [4]int{0, 4, 8, 12})
	rec[1] = packCoarseWord(table, numBlocks, a, [4]int{16, 20, 24, 28})

	for i := 2; i <= 17 && i < len(rec); i++ {
		base := 4 * (i - 2)

		var w uint64

		for j := 0; j < 4; j++ {
			d := blockDelta16(table, numBlocks, a, base+j)
			w |= (d & 0xFFFF) << uint(16*j)
		}

		rec[i] = w
	}

	return rec
}

// extractOnes returns, in order, the bit positions of every 1-bit in words
// [a*8, b*8), relative to the block-aligned span start a*512. This anchor,
// rather than the primary sample itself, is shared by every explicit
// encoding below.
func extractOnes(words []uint64, a, b int) []int {
	base := a * _BITS_PER_BLOCK

	var ones []int

	start := a * _WORDS_PER_BLOCK
	end := b * _WORDS_PER_BLOCK

	if end > len(words) {
		end = len(words)
	}

	for wi := start; wi < end; wi++ {
		for w := words[wi]; w != 0; w = broadword.ClearLowest(w) {
			pos := wi*64 + broadword.TrailingZeros(w) - base
			ones = append(ones, pos)
		}
	}

	return ones
}

// encodeExplicit16 is the 64<=B<128 encoding: four 16-bit relative
// positions per word, zero-padded past the end of ones.
func encodeExplicit16(ones []int, blockSpan int) []uint64 {
	rec := make([]uint64, 2*blockSpan)

	for i := range rec {
		var w uint64

		for j := 0; j < 4; j++ {
			idx := 4*i + j

			var v uint64

			if idx < len(ones) {
				v = uint64(ones[idx]) & 0xFFFF
			}

			w |= v << uint(16*j)
		}

		rec[i] = w
	}

	return rec
}

// encodeExplicit32 is the 128<=B<256 encoding: two 32-bit relative
// positions per word.
func encodeExplicit32(ones []int, blockSpan int) []uint64 {
	rec := make([]uint64, 2*blockSpan)

	for i := range rec {
		var w uint64

		for j := 0; j < 2; j++ {
			idx := 2*i + j

			var v uint64

			if idx < len(ones) {
				v = uint64(ones[idx]) & 0xFFFFFFFF
			}

			w |= v << uint(32*j)
		}

		rec[i] = w
	}

	return rec
}

// encodeExplicit64 is the B>=256 encoding: one absolute bit position per
// word (a*512 plus the relative offset of the i-th one in the span).
func encodeExplicit64(a int, ones []int, blockSpan int) []uint64 {
	rec := make([]uint64, 2*blockSpan)
	base := uint64(a * _BITS_PER_BLOCK)

	for i := range rec {
		if i < len(ones) {
			rec[i] = base + uint64(ones[i])
		}
	}

	return rec
}
