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

import (
	"github.com/fentec-project/credsim/sample"
	"golang.org/x/exp/rand"
)

// Sampler draws from specifications with one random source and one
// credibility. It must not be shared across goroutines.
type Sampler struct {
	src         rand.Source
	credibility float64
}

// NewSampler returns a Sampler reading from src at DefaultCredibility.
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{
		src:         src,
		credibility: DefaultCredibility,
	}
}

// WithCredibility returns a copy of s with the given credibility. Both
// copies read from the same source.
func (s *Sampler) WithCredibility(credibility float64) *Sampler {
	return &Sampler{
		src:         s.src,
		credibility: credibility,
	}
}

// Credibility returns the credibility used for every draw.
func (s *Sampler) Credibility() float64 {
	return s.credibility
}

// Source returns the underlying random source.
func (s *Sampler) Source() rand.Source {
	return s.src
}

// Sample draws one value from spec.
func (s *Sampler) Sample(spec Spec) (float64, error) {
	return Sample(s.src, spec, s.credibility)
}

// Event reports whether an event of probability p occurs.
func (s *Sampler) Event(p float64) bool {
	return sample.Event(s.src, p)
}

type bound struct {
	spec        Spec
	src         rand.Source
	credibility float64
}

func (b bound) Sample() (float64, error) {
	return Sample(b.src, b.spec, b.credibility)
}

// Bind fixes a random source and credibility for spec, producing a
// sample.Sampler.
func Bind(spec Spec, src rand.Source, credibility float64) sample.Sampler {
	return bound{
		spec:        spec,
		src:         src,
		credibility: credibility,
	}
}
