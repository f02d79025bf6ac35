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
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal draws from the normal distribution whose central credible
// interval at the given credibility is [low, high].
//
// The mean is the midpoint of the interval and the standard deviation is
// back-solved from the inverse CDF of the standard normal, so that
// P(low <= X <= high) = credibility. If low == high, low is returned
// without consuming randomness.
func Normal(src rand.Source, low, high, credibility float64) (float64, error) {
	if err := checkRange(low, high); err != nil {
		return 0, err
	}
	if low == high {
		return low, nil
	}
	if err := checkCredibility(credibility); err != nil {
		return 0, err
	}

	mu, sigma := fitNormal(low, high, credibility)
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}.Rand(), nil
}

// LogNormal draws from the log-normal distribution whose central
// credible interval at the given credibility is [low, high]. The fit is
// done as in Normal, on log(low) and log(high).
//
// If low == high, low itself is returned.
func LogNormal(src rand.Source, low, high, credibility float64) (float64, error) {
	if err := checkLogRange(low, high); err != nil {
		return 0, err
	}
	if low == high {
		return low, nil
	}
	if err := checkCredibility(credibility); err != nil {
		return 0, err
	}

	mu, sigma := fitNormal(math.Log(low), math.Log(high), credibility)
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: src}.Rand(), nil
}

// fitNormal returns the mean and standard deviation of the normal
// distribution with central credible interval [low, high].
func fitNormal(low, high, credibility float64) (float64, float64) {
	mu := (low + high) / 2
	z := distuv.UnitNormal.Quantile(0.5 + 0.5*credibility)
	return mu, (high - mu) / z
}
