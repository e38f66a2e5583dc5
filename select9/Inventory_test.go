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
	"math/rand"
	"testing"

	"github.com/vigna9/succinct9/rank9"
)

func naiveSelect(words []uint64, n int) (int, bool) {
	seen := 0

	for i := 0; i < len(words)*64; i++ {
		w := i / 64
		b := uint(i % 64)

		if (words[w]>>b)&1 != 0 {
			if seen == n {
				return i, true
			}

			seen++
		}
	}

	return 0, false
}

func countOnes(words []uint64) int {
	n := 0

	for i := 0; i < len(words)*64; i++ {
		w := i / 64
		b := uint(i % 64)

		if (words[w]>>b)&1 != 0 {
			n++
		}
	}

	return n
}

func TestBuildEmpty(t *testing.T) {
	table := rank9.Build(nil)
	inv := Build(nil, table)

	if inv.NumOnes() != 0 {
		t.Fatalf("NumOnes() = %d, want 0", inv.NumOnes())
	}

	if _, err := inv.Select(nil, table, 0); err == nil {
		t.Fatalf("Select(0) on empty vector should fail")
	}
}

func TestSelectAgainstNaiveSparse(t *testing.T) {
	words := make([]uint64, 8*20)
	words[0] = 1
	words[8] = 1 << 3
	words[8*19+7] = 1 << 63

	table := rank9.Build(words)
	inv := Build(words, table)

	want := countOnes(words)

	if int(inv.NumOnes()) != want {
		t.Fatalf("NumOnes() = %d, want %d", inv.NumOnes(), want)
	}

	for n := 0; n < want; n++ {
		got, err := inv.Select(words, table, n)

		if err != nil {
			t.Fatalf("Select(%d) returned error: %v", n, err)
		}

		wantPos, ok := naiveSelect(words, n)

		if !ok || got != wantPos {
			t.Fatalf("Select(%d) = %d, want %d", n, got, wantPos)
		}
	}

	if _, err := inv.Select(words, table, want); err == nil {
		t.Fatalf("Select(%d) should be out of range", want)
	}
}

// sparseWordsSpanningBlocks returns a word array whose single primary pair
// (there are under 512 ones in total, so Primary is [firstOnePos, size])
// spans exactly numBlocks basic blocks, with a handful of 1-bits scattered
// across the span at extraPositions (bit offsets, must be < numBlocks*512
// and distinct from 0).
func sparseWordsSpanningBlocks(numBlocks int, extraPositions ...int) []uint64 {
	words := make([]uint64, numBlocks*8)
	words[0] = 1

	for _, pos := range extraPositions {
		words[pos/64] |= uint64(1) << uint(pos%64)
	}

	return words
}

func testSelectAgainstNaiveOnFixture(t *testing.T, words []uint64) {
	t.Helper()

	table := rank9.Build(words)
	inv := Build(words, table)

	want := countOnes(words)

	if int(inv.NumOnes()) != want {
		t.Fatalf("NumOnes() = %d, want %d", inv.NumOnes(), want)
	}

	for n := 0; n < want; n++ {
		got, err := inv.Select(words, table, n)

		if err != nil {
			t.Fatalf("Select(%d) returned error: %v", n, err)
		}

		wantPos, ok := naiveSelect(words, n)

		if !ok || got != wantPos {
			t.Fatalf("Select(%d) = %d, want %d", n, got, wantPos)
		}
	}
}

// TestSelectAgainstNaiveExplicitEncodings exercises the three explicit-
// position secondary encodings (64<=B<128, 128<=B<256, B>=256), none of
// which any other fixture in this file reaches: the dense fixtures never
// separate 512 ones by more than a handful of blocks, and the sparse
// fixture above tops out at blockSpan=20 (the coarse+mid encoding).
func TestSelectAgainstNaiveExplicitEncodings(t *testing.T) {
	t.Run("explicit16_64<=B<128", func(t *testing.T) {
		// a=0, b=90: blockSpan=90 falls in [64,128).
		words := sparseWordsSpanningBlocks(90, 6400, 23040, 46079)
		testSelectAgainstNaiveOnFixture(t, words)
	})

	t.Run("explicit32_128<=B<256", func(t *testing.T) {
		// a=0, b=150: blockSpan=150 falls in [128,256).
		words := sparseWordsSpanningBlocks(150, 10000, 40000, 76799)
		testSelectAgainstNaiveOnFixture(t, words)
	})

	t.Run("explicit64_B>=256", func(t *testing.T) {
		// a=0, b=300: blockSpan=300 is >=256.
		words := sparseWordsSpanningBlocks(300, 20000, 80000, 153599)
		testSelectAgainstNaiveOnFixture(t, words)
	})
}

func TestSelectAgainstNaiveDense(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	words := make([]uint64, 8*40+3)

	for i := range words {
		words[i] = rng.Uint64()
	}

	table := rank9.Build(words)
	inv := Build(words, table)

	want := countOnes(words)

	if int(inv.NumOnes()) != want {
		t.Fatalf("NumOnes() = %d, want %d", inv.NumOnes(), want)
	}

	for _, n := range []int{0, 1, 2, 100, 500, 511, 512, 513, want/2, want - 1} {
		if n < 0 || n >= want {
			continue
		}

		got, err := inv.Select(words, table, n)

		if err != nil {
			t.Fatalf("Select(%d) returned error: %v", n, err)
		}

		wantPos, ok := naiveSelect(words, n)

		if !ok || got != wantPos {
			t.Fatalf("Select(%d) = %d, want %d", n, got, wantPos)
		}
	}
}

func TestSelectAllOnesThenZeros(t *testing.T) {
	words := make([]uint64, 8*9)

	for i := 0; i < 8*4; i++ {
		words[i] = ^uint64(0)
	}

	table := rank9.Build(words)
	inv := Build(words, table)

	want := countOnes(words)

	for _, n := range []int{0, 1, 256, 511, want - 1} {
		got, err := inv.Select(words, table, n)

		if err != nil {
			t.Fatalf("Select(%d) returned error: %v", n, err)
		}

		wantPos, _ := naiveSelect(words, n)

		if got != wantPos {
			t.Fatalf("Select(%d) = %d, want %d", n, got, wantPos)
		}
	}
}

func TestSelectNegativeOutOfRange(t *testing.T) {
	words := []uint64{1}
	table := rank9.Build(words)
	inv := Build(words, table)

	if _, err := inv.Select(words, table, -1); err == nil {
		t.Fatalf("Select(-1) should be out of range")
	}
}
