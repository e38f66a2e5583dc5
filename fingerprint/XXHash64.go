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

// Package fingerprint hashes the raw word array backing a SuccinctBitVector,
// so construction events and debug output can carry a cheap content
// fingerprint without re-walking the words. Adapted from Kanzi's
// v2/hash/XXHash64.go (itself a port of Yann Collet's xxHash) to operate
// directly on []uint64 rather than a byte slice.
package fingerprint

const (
	_XXHASH_PRIME64_1 = uint64(0x9E3779B185EBCA87)
	_XXHASH_PRIME64_2 = uint64(0xC2B2AE3D27D4EB4F)
	_XXHASH_PRIME64_3 = uint64(0x165667B19E3779F9)
	_XXHASH_PRIME64_4 = uint64(0x85EBCA77C2b2AE63)
	_XXHASH_PRIME64_5 = uint64(0x27D4EB2F165667C5)
)

// XXHash64Words hashes a slice of 64-bit words with the xxHash64 algorithm,
// treating each word as 8 little-endian input bytes. seed is typically 0.
func XXHash64Words(words []uint64, seed uint64) uint64 {
	end := len(words)
	var h64 uint64
	n := 0

	if end >= 4 {
		end4 := end - 4
		v1 := seed + _XXHASH_PRIME64_1 + _XXHASH_PRIME64_2
		v2 := seed + _XXHASH_PRIME64_2
		v3 := seed
		v4 := seed - _XXHASH_PRIME64_1

		for n <= end4 {
			v1 = xxHash64Round(v1, words[n])
			v2 = xxHash64Round(v2, words[n+1])
			v3 = xxHash64Round(v3, words[n+2])
			v4 = xxHash64Round(v4, words[n+3])
			n += 4
		}

		h64 = ((v1 << 1) | (v1 >> 63)) + ((v2 << 7) | (v2 >> 57)) +
			((v3 << 12) | (v3 >> 52)) + ((v4 << 18) | (v4 >> 46))

		h64 = xxHash64MergeRound(h64, v1)
		h64 = xxHash64MergeRound(h64, v2)
		h64 = xxHash64MergeRound(h64, v3)
		h64 = xxHash64MergeRound(h64, v4)
	} else {
		h64 = seed + _XXHASH_PRIME64_5
	}

	h64 += uint64(end) * 8

	for ; n < end; n++ {
		h64 ^= xxHash64Round(0, words[n])
		h64 = ((h64 << 27) | (h64 >> 37)) * _XXHASH_PRIME64_1
		h64 += _XXHASH_PRIME64_4
	}

	h64 ^= (h64 >> 33)
	h64 *= _XXHASH_PRIME64_2
	h64 ^= (h64 >> 29)
	h64 *= _XXHASH_PRIME64_3
	return h64 ^ (h64 >> 32)
}

func xxHash64Round(acc, val uint64) uint64 {
	acc += (val * _XXHASH_PRIME64_2)
	return ((acc << 31) | (acc >> 33)) * _XXHASH_PRIME64_1
}

func xxHash64MergeRound(acc, val uint64) uint64 {
	acc ^= xxHash64Round(0, val)
	return acc*_XXHASH_PRIME64_1 + _XXHASH_PRIME64_4
}
