/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dist

// Clip holds optional bounds applied to a draw. A nil bound is absent;
// a bound of 0 is a real bound.
type Clip struct {
	Lower *float64
	Upper *float64
}

// ClipOption sets a clip bound on a specification.
type ClipOption func(*Clip)

// LClip sets the lower clip bound.
func LClip(v float64) ClipOption {
	return func(c *Clip) {
		c.Lower = &v
	}
}

// RClip sets the upper clip bound.
func RClip(v float64) ClipOption {
	return func(c *Clip) {
		c.Upper = &v
	}
}

func newClip(opts []ClipOption) Clip {
	var c Clip
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply clamps v into the present bounds.
func (c Clip) Apply(v float64) float64 {
	if c.Lower != nil && v < *c.Lower {
		v = *c.Lower
	}
	if c.Upper != nil && v > *c.Upper {
		v = *c.Upper
	}
	return v
}
