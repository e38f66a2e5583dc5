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

package select9

import (
	"errors"

	"github.com/vigna9/succinct9/broadword"
	"github.com/vigna9/succinct9/rank9"
)

// ErrOutOfRange is returned by Select when n does not name an existing
// 1-bit.
var ErrOutOfRange = errors.New("select9: select index out of range")

// Select returns the bit position of the n-th 1-bit (0-indexed) in words,
// built directly against the primary/secondary inventory contracts above.
func (this *Inventory) Select(words []uint64, table *rank9.Table, n int) (int, error) {
	if n < 0 || uint64(n) >= this.ones {
		return 0, ErrOutOfRange
	}

	k := n / _SAMPLE_INTERVAL

	start := int(this.Primary[k])
	end := int(this.Primary[k+1])
	a := start / _BITS_PER_BLOCK
	b := end / _BITS_PER_BLOCK
	blockSpan := b - a

	// rem counts from the start of block a, the anchor every record uses.
	rem := n - int(table.FirstLevel(a))

	if blockSpan < 1 {
		return scanBlockForOne(words, a, rem)
	}

	if blockSpan >= 64 {
		// Explicit records list only the ones in blocks [a, b), and only as
		// many as the record has slots; any other one is found by scanning.
		inSpan := int(table.FirstLevel(b) - table.FirstLevel(a))
		slots := 2 * blockSpan

		if blockSpan < 128 {
			slots *= 4
		} else if blockSpan < 256 {
			slots *= 2
		}

		if rem >= inSpan || rem >= slots {
			return scanBlocksForOne(words, a, blockSpan, rem)
		}
	}

	recOffset := this.Offsets[k]

	switch {
	case blockSpan < 8:
		// No per-block deltas at this density: just walk the (at most 8)
		// blocks a..b directly, popcounting each with broadword.PopCount.
		return scanBlocksForOne(words, a, blockSpan, rem)

	case blockSpan < 64:
		rec := this.Secondary[recOffset : recOffset+2*blockSpan]
		return selectFromCoarseMid(words, table, a, numBlocksFrom(table), rec, rem)

	case blockSpan < 128:
		rec := this.Secondary[recOffset : recOffset+2*blockSpan]
		idx := rem
		word := rec[idx/4]
		pos := int((word >> uint(16*(idx%4))) & 0xFFFF)
		return a*_BITS_PER_BLOCK + pos, nil

	case blockSpan < 256:
		rec := this.Secondary[recOffset : recOffset+2*blockSpan]
		idx := rem
		word := rec[idx/2]
		pos := int((word >> uint(32*(idx%2))) & 0xFFFFFFFF)
		return a*_BITS_PER_BLOCK + pos, nil

	default:
		rec := this.Secondary[recOffset : recOffset+2*blockSpan]
		return int(rec[rem]), nil
	}
}

func numBlocksFrom(table *rank9.Table) int {
	return table.NumBlocks()
}

// selectFromCoarseMid uses the fine per-block deltas packed in the mid
// section (record words 2..17, or as many as the record holds) of an
// 8<=B<64 record to find the basic
// block containing the rem-th one of the span, then scans that block
// directly. The coarse words (0,1) are coarser samples of the same
// quantity at every 4th block and are redundant with the mid section for
// this purpose, so they are not consulted here.
func selectFromCoarseMid(words []uint64, table *rank9.Table, a, numBlocks int, rec []uint64, rem int) (int, error) {
	target := a

	for i := 0; i < 64 && 2+i/4 < len(rec); i++ {
		wordIdx := 2 + i/4
		shift := 16 * (i % 4)
		d := (rec[wordIdx] >> uint(shift)) & 0xFFFF

		if d == 0xFFFF || int(d) > rem {
			break
		}

		target = a + i
	}

	base := table.FirstLevel(target) - table.FirstLevel(a)

	return scanBlockForOne(words, target, rem-int(base))
}

// scanBlocksForOne walks up to blockSpan+1 basic blocks starting at a,
// popcounting whole blocks until the one holding the rem-th bit is found.
func scanBlocksForOne(words []uint64, a, blockSpan, rem int) (int, error) {
	skip := rem

	for bi := a; bi <= a+blockSpan; bi++ {
		start := bi * _WORDS_PER_BLOCK
		end := start + _WORDS_PER_BLOCK

		if end > len(words) {
			end = len(words)
		}

		count := 0

		for wi := start; wi < end; wi++ {
			count += int(broadword.PopCount(words[wi]))
		}

		if skip < count {
			return scanBlockForOne(words, bi, skip)
		}

		skip -= count
	}

	return 0, ErrOutOfRange
}

// scanBlockForOne returns the position of the skip-th (0-indexed) 1-bit
// within basic block blockIdx, or ErrOutOfRange if that block holds no more
// than skip ones.
func scanBlockForOne(words []uint64, blockIdx, skip int) (int, error) {
	start := blockIdx * _WORDS_PER_BLOCK
	end := start + _WORDS_PER_BLOCK

	if end > len(words) {
		end = len(words)
	}

	for wi := start; wi < end; wi++ {
		w := words[wi]
		count := int(broadword.PopCount(w))

		if skip < count {
			for i := 0; i < skip; i++ {
				w = broadword.ClearLowest(w)
			}

			return wi*64 + broadword.TrailingZeros(w), nil
		}

		skip -= count
	}

	return 0, ErrOutOfRange
}
