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

	"github.com/fentec-project/credsim/dist"
	"github.com/fentec-project/credsim/sample"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func TestVector(t *testing.T) {
	l := 1000
	sampler := dist.Bind(dist.NewNorm(0, 10), rand.NewSource(1), 0.9)

	x, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	y, err := NewRandomVector(l, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	assert.Len(t, x, l)
	assert.NotEqual(t, x, y, "a bound sampler should keep advancing its source")
	for i := 0; i < l; i++ {
		assert.False(t, math.IsNaN(x[i]))
	}
	assert.InDelta(t, 5, x.Mean(), 0.5)
}

type failing struct{}

func (failing) Sample() (float64, error) {
	return 0, sample.ErrInvalidRange
}

func TestNewRandomVector_Error(t *testing.T) {
	_, err := NewRandomVector(3, failing{})
	assert.ErrorIs(t, err, sample.ErrInvalidRange)

	_, err = NewRandomVector(3, dist.Bind(dist.NewLogNorm(-1, 1), nil, 0.9))
	assert.ErrorIs(t, err, sample.ErrNegativeValue)
}

func TestVector_Copy(t *testing.T) {
	v := NewVector([]float64{1.5, 1.5, 1.5, 1.5})
	c := v.Copy()
	c[0] = 3

	assert.Equal(t, Vector{1.5, 1.5, 1.5, 1.5}, v)
	assert.Equal(t, Vector{3, 1.5, 1.5, 1.5}, c)
}
