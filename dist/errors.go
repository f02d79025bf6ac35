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
	"github.com/fentec-project/credsim/internal"
	"github.com/fentec-project/credsim/sample"
)

var (
	// ErrMalformedSpec is returned for a nil specification or one that
	// cannot be decoded.
	ErrMalformedSpec = internal.ErrMalformedSpec
	// ErrWeightMismatch is returned when mixture weights do not sum to 1
	// (within 0.01) or do not match the number of ranges.
	ErrWeightMismatch = internal.ErrWeightMismatch
	// ErrUnknownSampler is returned for a specification kind that has no
	// sampler.
	ErrUnknownSampler = internal.ErrUnknownSampler

	ErrInvalidRange     = sample.ErrInvalidRange
	ErrNegativeValue    = sample.ErrNegativeValue
	ErrInvalidParameter = sample.ErrInvalidParameter
)
