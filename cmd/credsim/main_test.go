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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fentec-project/credsim/data"
	"github.com/fentec-project/credsim/dist"
	"github.com/fentec-project/credsim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModel = `
trials: 2000
seed: 11
credibility: 0.8
variables:
  cost: {kind: log, low: 1000, high: 100000, lclip: 10}
  delay: [1, 5, "tdist", 3, 0, 20]
  share: {kind: distributed_log, ranges: [[1, 2], [3, 4]], weights: [0.4, 0.6]}
events:
  accident: 0.02
`

func TestLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testModel), 0o600))

	m, err := loadModel(path)
	require.NoError(t, err)
	assert.Equal(t, 2000, m.Trials)
	assert.Equal(t, uint64(11), m.Seed)
	assert.Equal(t, 0.8, m.Credibility)
	assert.Len(t, m.Variables, 3)
	assert.Equal(t, 0.02, m.Events["accident"])
	assert.Equal(t, dist.NewTDist(1, 5, 3, dist.RClip(20)), m.Variables["delay"].Spec)

	_, err = loadModel(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseModel_Errors(t *testing.T) {
	_, err := parseModel([]byte("trials: 10\n"))
	assert.Error(t, err)

	_, err = parseModel([]byte("variables:\n  x: null\n"))
	assert.ErrorIs(t, err, dist.ErrMalformedSpec)

	_, err = parseModel([]byte("variables:\n  x: [1, 2, \"gamma\", null, null]\n"))
	assert.ErrorIs(t, err, dist.ErrUnknownSampler)
}

func TestReport(t *testing.T) {
	m, err := parseModel([]byte(testModel))
	require.NoError(t, err)

	cfg := sim.Config{Trials: m.Trials, Seed: m.Seed, Credibility: m.Credibility}
	res, err := sim.RunModel(context.Background(), cfg, m.model())
	require.NoError(t, err)

	ps, exceed := []float64{5, 50, 95}, []float64{3}
	sums := summarize(res, m.Events, ps, exceed)
	require.Len(t, sums, 4)
	assert.Equal(t, "accident", sums[0].Name)
	assert.True(t, sums[0].Event)
	assert.Nil(t, sums[0].Percentiles)
	assert.Nil(t, sums[0].Exceed)
	assert.Len(t, sums[1].Percentiles, 3)
	assert.InDelta(t, 1, float64(sums[1].Exceed["3"]), 1e-9, "cost is clipped far above 3")

	var text bytes.Buffer
	require.NoError(t, writeText(&text, sums, ps, exceed))
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "name"))
	assert.Contains(t, lines[0], ">3")

	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, sums))
	var decoded []summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "share", decoded[3].Name)
	assert.Contains(t, decoded[3].Percentiles, "50")

	assert.Error(t, report(&out, "xml", sums, ps, exceed))
}

func TestSummarize_Single(t *testing.T) {
	sums := summarize(map[string]data.Vector{"x": {4}}, nil, []float64{50}, nil)
	require.Len(t, sums, 1)
	assert.Equal(t, number(4), sums[0].Mean)
	assert.Equal(t, number(0), sums[0].StdDev)
	assert.Equal(t, number(4), sums[0].Percentiles["50"])
	assert.Nil(t, sums[0].Exceed)
}

func TestSummarize_Exceed(t *testing.T) {
	v := data.Vector{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sums := summarize(map[string]data.Vector{"x": v}, nil, nil, []float64{0, 7.5, 10})
	require.Len(t, sums, 1)
	assert.Equal(t, number(1), sums[0].Exceed["0"])
	assert.Equal(t, number(0.3), sums[0].Exceed["7.5"])
	assert.Equal(t, number(0), sums[0].Exceed["10"])
}

func TestWriteJSON_NonFinite(t *testing.T) {
	res := map[string]data.Vector{
		"wide":  {1, math.Inf(1)},
		"empty": {},
	}
	sums := summarize(res, nil, []float64{50}, nil)

	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, sums))
	assert.Contains(t, out.String(), `"mean": "+Inf"`)
	assert.Contains(t, out.String(), `"mean": "NaN"`)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Len(t, decoded, 2)
}

func TestWriteJSON_WideLogNorm(t *testing.T) {
	m := sim.Model{Variables: map[string]dist.Spec{"wide": dist.NewLogNorm(1e-300, 1e300)}}
	res, err := sim.RunModel(context.Background(), sim.Config{Trials: 200, Seed: 5}, m)
	require.NoError(t, err)

	var out bytes.Buffer
	assert.NoError(t, writeJSON(&out, summarize(res, nil, []float64{50}, nil)))
}
