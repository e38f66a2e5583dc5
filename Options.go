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

// buildConfig holds the handful of knobs Prepare accepts. Rank9's 8-word
// basic block and Select9's 512-one sampling interval are fixed by the
// algorithm, so the only configurable knob today is listener registration.
type buildConfig struct {
	listeners []Listener
}

// Option configures a call to Prepare.
type Option func(*buildConfig)

// WithListener registers a Listener to receive construction-progress
// Events. Multiple listeners may be registered; each receives every event.
func WithListener(l Listener) Option {
	return func(c *buildConfig) {
		c.listeners = append(c.listeners, l)
	}
}

func (this *buildConfig) notify(evt *Event) {
	for _, l := range this.listeners {
		l.ProcessEvent(evt)
	}
}
