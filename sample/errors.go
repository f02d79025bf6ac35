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
	"github.com/fentec-project/credsim/internal"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidRange is returned when low > high.
	ErrInvalidRange = internal.ErrInvalidRange
	// ErrNegativeValue is returned when a log-space sampler gets low < 0.
	ErrNegativeValue = internal.ErrNegativeValue
	// ErrInvalidParameter is returned for a credibility outside (0, 1),
	// non-positive degrees of freedom or a zero low bound in log space.
	ErrInvalidParameter = internal.ErrInvalidParameter
)

func checkRange(low, high float64) error {
	if low > high {
		return errors.Wrapf(ErrInvalidRange, "low %v, high %v", low, high)
	}
	return nil
}

func checkLogRange(low, high float64) error {
	if err := checkRange(low, high); err != nil {
		return err
	}
	if low < 0 {
		return errors.Wrapf(ErrNegativeValue, "low %v", low)
	}
	if low == 0 && high > 0 {
		return errors.Wrap(ErrInvalidParameter, "log-space range cannot start at 0")
	}
	return nil
}

func checkCredibility(credibility float64) error {
	if !internal.ValidCredibility(credibility) {
		return errors.Wrapf(ErrInvalidParameter, "credibility %v not in (0, 1)", credibility)
	}
	return nil
}

func checkDegrees(df float64) error {
	if !(df > 0) {
		return errors.Wrapf(ErrInvalidParameter, "degrees of freedom %v", df)
	}
	return nil
}
