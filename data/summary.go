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

package data

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DefaultPercentiles are reported when no percentiles are requested.
var DefaultPercentiles = []float64{1, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99}

// Mean returns the arithmetic mean of v, or NaN for an empty vector.
func (v Vector) Mean() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	return stat.Mean(v, nil)
}

// StdDev returns the sample standard deviation of v, or NaN when v has
// fewer than two elements.
func (v Vector) StdDev() float64 {
	if len(v) < 2 {
		return math.NaN()
	}
	return stat.StdDev(v, nil)
}

// Sorted returns a sorted copy of v.
func (v Vector) Sorted() Vector {
	res := v.Copy()
	sort.Float64s(res)
	return res
}

// Percentiles returns the percentiles of v, keyed by the requested
// percentile in [0, 100]. DefaultPercentiles are used if none are given.
// It returns nil for an empty vector.
//
// Percentiles interpolate linearly between the two closest ranks, the
// default method of numpy.percentile: the p-th percentile of n sorted
// values lies at rank (n-1)*p/100.
func (v Vector) Percentiles(ps ...float64) map[float64]float64 {
	if len(v) == 0 {
		return nil
	}
	if len(ps) == 0 {
		ps = DefaultPercentiles
	}

	sorted := v.Sorted()
	res := make(map[float64]float64, len(ps))
	for _, p := range ps {
		q := math.Min(math.Max(p/100, 0), 1)
		res[p] = interpolate(sorted, q)
	}
	return res
}

// interpolate returns the q-quantile of sorted, q in [0, 1].
func interpolate(sorted Vector, q float64) float64 {
	h := q * float64(len(sorted)-1)
	lo := math.Floor(h)
	i := int(lo)
	if h == lo {
		return sorted[i]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Fraction returns the share of elements for which pred holds.
func (v Vector) Fraction(pred func(float64) bool) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	n := 0
	for _, vi := range v {
		if pred(vi) {
			n++
		}
	}
	return float64(n) / float64(len(v))
}
