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

package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform returns a value sampled uniformly from [0, 1).
func Uniform(src rand.Source) float64 {
	return distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand()
}

// Event reports whether an event of probability p occurs: it returns
// true iff a uniform draw from [0, 1) is below p. Each call is
// independent.
func Event(src rand.Source, p float64) bool {
	return Uniform(src) < p
}
