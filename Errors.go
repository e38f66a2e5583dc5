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

package succinct9

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel wrapped by every out-of-range error this
// package returns; check with errors.Is(err, succinct9.ErrOutOfRange).
var ErrOutOfRange = errors.New("succinct9: index out of range")

func indexOutOfRangeError(n, size int) error {
	return fmt.Errorf("succinct9: index %d out of range [0, %d): %w", n, size, ErrOutOfRange)
}

func rankOutOfRangeError(p, size int) error {
	return fmt.Errorf("succinct9: rank position %d out of range [0, %d]: %w", p, size, ErrOutOfRange)
}

func selectOutOfRangeError(n int, numOnes int) error {
	return fmt.Errorf("succinct9: select index %d out of range [0, %d): %w", n, numOnes, ErrOutOfRange)
}
