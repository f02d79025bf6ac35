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

// tScale relates the half-width of the stated interval to the scale of
// the standard Student's t draw.
const tScale = 0.6

// StudentT draws from a Student's t distribution with df degrees of
// freedom, centered on the midpoint of [low, high].
//
// Unlike Normal, the interval is not inverted exactly: a standard t draw
// is scaled by half the interval width times 0.6/credibility.
func StudentT(src rand.Source, low, high, df, credibility float64) (float64, error) {
	if err := checkRange(low, high); err != nil {
		return 0, err
	}
	if low == high {
		return low, nil
	}
	if err := checkT(df, credibility); err != nil {
		return 0, err
	}

	return scaledT(src, low, high, df, credibility), nil
}

// LogStudentT is StudentT performed on log(low) and log(high), with the
// result exponentiated.
func LogStudentT(src rand.Source, low, high, df, credibility float64) (float64, error) {
	if err := checkLogRange(low, high); err != nil {
		return 0, err
	}
	if low == high {
		return low, nil
	}
	if err := checkT(df, credibility); err != nil {
		return 0, err
	}

	return math.Exp(scaledT(src, math.Log(low), math.Log(high), df, credibility)), nil
}

func checkT(df, credibility float64) error {
	if err := checkDegrees(df); err != nil {
		return err
	}
	return checkCredibility(credibility)
}

func scaledT(src rand.Source, low, high, df, credibility float64) float64 {
	mu := (low + high) / 2
	halfRange := (high - low) / 2
	raw := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df, Src: src}.Rand()
	return raw*halfRange*tScale/credibility + mu
}
