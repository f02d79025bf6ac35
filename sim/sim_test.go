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

package sim_test

import (
	"context"
	"testing"

	"github.com/fentec-project/credsim/dist"
	"github.com/fentec-project/credsim/sim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normTrial(i int, s *dist.Sampler) (float64, error) {
	return s.Sample(dist.NewNorm(0, 10))
}

func TestRun_Reproducible(t *testing.T) {
	ctx := context.Background()

	one, err := sim.Run(ctx, sim.Config{Trials: 500, Workers: 1, Seed: 7}, normTrial)
	require.NoError(t, err)
	four, err := sim.Run(ctx, sim.Config{Trials: 500, Workers: 4, Seed: 7}, normTrial)
	require.NoError(t, err)
	other, err := sim.Run(ctx, sim.Config{Trials: 500, Workers: 4, Seed: 8}, normTrial)
	require.NoError(t, err)

	assert.Equal(t, one, four, "results should not depend on the number of workers")
	assert.NotEqual(t, one, other, "different seeds should give different results")
	assert.InDelta(t, 5, one.Mean(), 0.5)
}

func TestRun_Keyed(t *testing.T) {
	var key [32]byte
	key[12] = 3
	cfg := sim.Config{Trials: 200, Workers: 3, Seed: 1, Key: &key}

	a, err := sim.Run(context.Background(), cfg, normTrial)
	require.NoError(t, err)
	b, err := sim.Run(context.Background(), cfg, normTrial)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	key[12] = 4
	c, err := sim.Run(context.Background(), cfg, normTrial)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	key[12] = 3
	key[0] = 1
	d, err := sim.Run(context.Background(), cfg, normTrial)
	require.NoError(t, err)
	assert.NotEqual(t, a, d, "every key byte should affect the draws")
}

func TestRun_Error(t *testing.T) {
	boom := errors.New("boom")
	_, err := sim.Run(context.Background(), sim.Config{Trials: 1000, Workers: 4},
		func(i int, s *dist.Sampler) (float64, error) {
			if i == 100 {
				return 0, boom
			}
			return s.Sample(dist.NewConst(1))
		})
	assert.ErrorIs(t, err, boom)

	_, err = sim.Run(context.Background(), sim.Config{Trials: 10},
		func(i int, s *dist.Sampler) (float64, error) {
			return s.Sample(dist.NewLogNorm(-1, 2))
		})
	assert.ErrorIs(t, err, dist.ErrNegativeValue)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Run(ctx, sim.Config{Trials: 100}, normTrial)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Config(t *testing.T) {
	_, err := sim.Run(context.Background(), sim.Config{Trials: -1}, normTrial)
	assert.Error(t, err)

	_, err = sim.Run(context.Background(), sim.Config{Trials: 1, Credibility: 2}, normTrial)
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)

	res, err := sim.Run(context.Background(), sim.Config{}, normTrial)
	assert.NoError(t, err)
	assert.Len(t, res, 0)

	// a narrow credibility widens the fitted distribution
	narrow, err := sim.Run(context.Background(), sim.Config{Trials: 5000, Credibility: 0.5}, normTrial)
	require.NoError(t, err)
	wide, err := sim.Run(context.Background(), sim.Config{Trials: 5000, Credibility: 0.99}, normTrial)
	require.NoError(t, err)
	assert.True(t, narrow.StdDev() > wide.StdDev())
}

func TestRunModel(t *testing.T) {
	m := sim.Model{
		Variables: map[string]dist.Spec{
			"cost":  dist.NewLogNorm(10, 1000, dist.RClip(5000)),
			"fixed": dist.NewConst(3),
		},
		Events: map[string]float64{
			"never":    0,
			"always":   1,
			"accident": 0.2,
		},
	}

	res, err := sim.RunModel(context.Background(), sim.Config{Trials: 10000, Seed: 3}, m)
	require.NoError(t, err)
	require.Len(t, res, 5)

	assert.Equal(t, 0.0, res["never"].Mean())
	assert.Equal(t, 1.0, res["always"].Mean())
	assert.InDelta(t, 0.2, res["accident"].Mean(), 0.02)
	assert.Equal(t, 3.0, res["fixed"].Mean())
	assert.InDelta(t, 100, res["cost"].Percentiles(50)[50], 10)
	assert.True(t, res["cost"].Sorted()[9999] <= 5000)

	again, err := sim.RunModel(context.Background(), sim.Config{Trials: 10000, Seed: 3, Workers: 2}, m)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestRunModel_Invalid(t *testing.T) {
	ctx := context.Background()
	cfg := sim.Config{Trials: 10}

	_, err := sim.RunModel(ctx, cfg, sim.Model{
		Variables: map[string]dist.Spec{"x": dist.NewNorm(3, 1)},
	})
	assert.ErrorIs(t, err, dist.ErrInvalidRange)

	_, err = sim.RunModel(ctx, cfg, sim.Model{Events: map[string]float64{"x": 1.5}})
	assert.ErrorIs(t, err, dist.ErrInvalidParameter)

	_, err = sim.RunModel(ctx, cfg, sim.Model{
		Variables: map[string]dist.Spec{"x": dist.NewConst(1)},
		Events:    map[string]float64{"x": 0.5},
	})
	assert.Error(t, err)
}
