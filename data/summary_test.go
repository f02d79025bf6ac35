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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentiles(t *testing.T) {
	v := make(Vector, 100)
	for i := range v {
		v[i] = float64(100 - i)
	}

	p := v.Percentiles(0, 1, 50, 99, 100)
	assert.Equal(t, 1.0, p[0])
	assert.InDelta(t, 1.99, p[1], 1e-9)
	assert.InDelta(t, 50.5, p[50], 1e-9)
	assert.InDelta(t, 99.01, p[99], 1e-9)
	assert.Equal(t, 100.0, p[100])

	assert.Len(t, v.Percentiles(), len(DefaultPercentiles))
	assert.Nil(t, Vector{}.Percentiles(50))
	assert.Equal(t, 100.0, v[0], "percentiles should not reorder the vector")
}

func TestPercentiles_Interpolated(t *testing.T) {
	v := Vector{4, 1, 3, 2}

	p := v.Percentiles(25, 50, 90)
	assert.InDelta(t, 1.75, p[25], 1e-9)
	assert.InDelta(t, 2.5, p[50], 1e-9)
	assert.InDelta(t, 3.7, p[90], 1e-9)

	assert.Equal(t, 7.0, Vector{7}.Percentiles(30)[30])
	assert.Equal(t, 2.0, Vector{2, 2, 2}.Percentiles(40)[40])
}

func TestSummary(t *testing.T) {
	v := Vector{1, 2, 3, 4}
	assert.Equal(t, 2.5, v.Mean())
	assert.InDelta(t, 1.2910, v.StdDev(), 1e-4)
	assert.Equal(t, 0.5, v.Fraction(func(x float64) bool { return x > 2 }))
	assert.Equal(t, Vector{1, 2, 3, 4}, Vector{3, 1, 4, 2}.Sorted())

	assert.True(t, math.IsNaN(Vector{}.Mean()))
	assert.True(t, math.IsNaN(Vector{1}.StdDev()))
	assert.True(t, math.IsNaN(Vector{}.Fraction(func(float64) bool { return true })))
}
