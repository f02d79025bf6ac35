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

package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

var malformedStr = "is not of the proper form"

// Errors shared by the sampling packages. They are re-exported by
// package sample and package dist, where callers match them with
// errors.Is.
var (
	ErrInvalidRange     = errors.New("high value cannot be lower than low value")
	ErrNegativeValue    = errors.New("log-space sampler cannot handle negative values")
	ErrInvalidParameter = errors.New("sampler parameter out of range")
	ErrMalformedSpec    = errors.New(fmt.Sprintf("specification %s", malformedStr))
	ErrWeightMismatch   = errors.New("weights do not match distributions")
	ErrUnknownSampler   = errors.New("sampler not found")
)

// ValidCredibility reports whether c can serve as the probability mass
// of a central credible interval.
func ValidCredibility(c float64) bool {
	return c > 0 && c < 1
}
