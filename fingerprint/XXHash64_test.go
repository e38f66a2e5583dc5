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

package fingerprint

import "testing"

func TestXXHash64WordsDeterministic(t *testing.T) {
	words := []uint64{1, 2, 3, 4, 5}

	h1 := XXHash64Words(words, 0)
	h2 := XXHash64Words(words, 0)

	if h1 != h2 {
		t.Errorf("XXHash64Words is not deterministic: %#x != %#x", h1, h2)
	}
}

func TestXXHash64WordsSensitiveToContent(t *testing.T) {
	a := []uint64{1, 2, 3, 4, 5}
	b := []uint64{1, 2, 3, 4, 6}

	if XXHash64Words(a, 0) == XXHash64Words(b, 0) {
		t.Errorf("XXHash64Words collided on differing inputs")
	}
}

func TestXXHash64WordsEmpty(t *testing.T) {
	// Must not panic on an empty word slice.
	_ = XXHash64Words(nil, 0)
	_ = XXHash64Words([]uint64{}, 42)
}

func TestXXHash64WordsSeedChangesHash(t *testing.T) {
	words := []uint64{1, 2, 3}

	if XXHash64Words(words, 0) == XXHash64Words(words, 1) {
		t.Errorf("different seeds produced the same hash")
	}
}
