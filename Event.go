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
	"fmt"
	"time"
)

const (
	// EventRank9Built fires once the Rank9 table has been built.
	EventRank9Built = 0
	// EventSelect9Built fires once the Select9 inventory has been built.
	EventSelect9Built = 1

	// EventHashNone means the Event carries no content fingerprint.
	EventHashNone = 0
	// EventHash64Bits means Event.Hash() holds an XXHash64 fingerprint.
	EventHash64Bits = 64
)

// Event reports progress during Prepare. It mirrors the shape Kanzi uses
// for compression progress events (type, id, size, hash, hashType, time),
// retargeted here to the two phases of index construction.
type Event struct {
	eventType int
	size      int64
	hash      uint64
	hashType  int
	eventTime time.Time
}

// NewEvent creates an Event carrying the number of words processed so far
// and a content fingerprint.
func NewEvent(eventType int, size int64, hash uint64, hashType int, eventTime time.Time) *Event {
	if eventTime.IsZero() {
		eventTime = time.Now()
	}

	return &Event{eventType: eventType, size: size, hash: hash, hashType: hashType, eventTime: eventTime}
}

// Type returns the event type (EventRank9Built or EventSelect9Built).
func (this *Event) Type() int {
	return this.eventType
}

// Size returns the number of 64-bit words processed by the phase this
// event reports on.
func (this *Event) Size() int64 {
	return this.size
}

// Hash returns the content fingerprint, meaningful only when HashType() is
// not EventHashNone.
func (this *Event) Hash() uint64 {
	return this.hash
}

// HashType returns EventHashNone or EventHash64Bits.
func (this *Event) HashType() int {
	return this.hashType
}

// Time returns when the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// String returns a human-readable representation of the event.
func (this *Event) String() string {
	t := "RANK9_BUILT"

	if this.eventType == EventSelect9Built {
		t = "SELECT9_BUILT"
	}

	hash := ""

	if this.hashType != EventHashNone {
		hash = fmt.Sprintf(", \"hash\":\"%016x\"", this.hash)
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"words\":%d%s }", t, this.size, hash)
}

// Listener receives Events emitted during Prepare.
type Listener interface {
	// ProcessEvent is called synchronously whenever Prepare completes a
	// construction phase.
	ProcessEvent(evt *Event)
}
