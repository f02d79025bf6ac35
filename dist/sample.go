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
	"github.com/fentec-project/credsim/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// DefaultCredibility is the credibility of the stated ranges when none
// is given.
const DefaultCredibility = 0.9

// Tolerance on the sum of mixture weights.
const (
	minWeightSum = 0.99
	maxWeightSum = 1.01
)

// Sample draws one value from spec. Every [low, high] range in spec is
// read as a central credible interval holding the given credibility.
//
// Const and Custom values are returned as is. For the other kinds the
// draw is clamped into the clip bounds of spec.
func Sample(src rand.Source, spec Spec, credibility float64) (float64, error) {
	var (
		out  float64
		clip Clip
		err  error
	)

	switch s := spec.(type) {
	case nil:
		return 0, errors.Wrap(ErrMalformedSpec, "nil specification")
	case Const:
		return s.Value, nil
	case Custom:
		if s == nil {
			return 0, errors.Wrap(ErrMalformedSpec, "nil custom sampler")
		}
		return s(src)
	case Norm:
		out, err = sample.Normal(src, s.Low, s.High, credibility)
		clip = s.Clip
	case LogNorm:
		out, err = sample.LogNormal(src, s.Low, s.High, credibility)
		clip = s.Clip
	case WeightedLogNorm:
		out, err = sampleWeighted(src, s.Ranges, s.Weights, credibility)
		clip = s.Clip
	case DistributedLogNorm:
		out, err = sampleDistributed(src, s.Ranges, s.Weights, credibility)
		clip = s.Clip
	case TDist:
		out, err = sample.StudentT(src, s.Low, s.High, s.DF, credibility)
		clip = s.Clip
	case LogTDist:
		out, err = sample.LogStudentT(src, s.Low, s.High, s.DF, credibility)
		clip = s.Clip
	default:
		return 0, errors.Wrapf(ErrUnknownSampler, "%s (%T)", spec.Kind(), spec)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "%s sampler", spec.Kind())
	}

	return clip.Apply(out), nil
}

// sampleWeighted returns the weighted sum of one independent log-normal
// draw per range.
func sampleWeighted(src rand.Source, ranges []Range, weights []float64, credibility float64) (float64, error) {
	if err := checkWeights(KindWeightedLogNorm, ranges, weights); err != nil {
		return 0, err
	}

	res := 0.0
	for i, r := range ranges {
		v, err := sample.LogNormal(src, r.Low, r.High, credibility)
		if err != nil {
			return 0, errors.Wrapf(err, "component %d", i)
		}
		res += v * weights[i]
	}
	return res, nil
}

// sampleDistributed selects a single range with probability equal to its
// weight and draws from it.
func sampleDistributed(src rand.Source, ranges []Range, weights []float64, credibility float64) (float64, error) {
	if err := checkWeights(KindDistributedLogNorm, ranges, weights); err != nil {
		return 0, err
	}

	u := sample.Uniform(src)
	cumu := floats.CumSum(make([]float64, len(weights)), weights)
	// weights may sum to slightly less than 1
	chosen := len(ranges) - 1
	for i, c := range cumu {
		if u <= c {
			chosen = i
			break
		}
	}

	r := ranges[chosen]
	v, err := sample.LogNormal(src, r.Low, r.High, credibility)
	if err != nil {
		return 0, errors.Wrapf(err, "component %d", chosen)
	}
	return v, nil
}

func checkWeights(kind Kind, ranges []Range, weights []float64) error {
	sum := floats.Sum(weights)
	if !(sum >= minWeightSum && sum <= maxWeightSum) {
		return errors.Wrapf(ErrWeightMismatch, "%s weights don't sum to 1 - they sum to %v", kind, sum)
	}
	if len(weights) != len(ranges) {
		return errors.Wrapf(ErrWeightMismatch, "%s has %d weights for %d distributions",
			kind, len(weights), len(ranges))
	}
	return nil
}

// Validate checks spec for errors that Sample would report, without
// drawing any values.
func Validate(spec Spec) error {
	var ranges []Range
	switch s := spec.(type) {
	case nil:
		return errors.Wrap(ErrMalformedSpec, "nil specification")
	case Const:
		return nil
	case Custom:
		if s == nil {
			return errors.Wrap(ErrMalformedSpec, "nil custom sampler")
		}
		return nil
	case Norm:
		return validateRange(spec.Kind(), s.Low, s.High, false)
	case LogNorm:
		return validateRange(spec.Kind(), s.Low, s.High, true)
	case TDist:
		return validateT(spec.Kind(), s.Low, s.High, s.DF, false)
	case LogTDist:
		return validateT(spec.Kind(), s.Low, s.High, s.DF, true)
	case WeightedLogNorm:
		if err := checkWeights(spec.Kind(), s.Ranges, s.Weights); err != nil {
			return err
		}
		ranges = s.Ranges
	case DistributedLogNorm:
		if err := checkWeights(spec.Kind(), s.Ranges, s.Weights); err != nil {
			return err
		}
		ranges = s.Ranges
	default:
		return errors.Wrapf(ErrUnknownSampler, "%s (%T)", spec.Kind(), spec)
	}

	for i, r := range ranges {
		if err := validateRange(spec.Kind(), r.Low, r.High, true); err != nil {
			return errors.Wrapf(err, "component %d", i)
		}
	}
	return nil
}

func validateRange(kind Kind, low, high float64, logSpace bool) error {
	if low > high {
		return errors.Wrapf(ErrInvalidRange, "%s: low %v, high %v", kind, low, high)
	}
	if !logSpace {
		return nil
	}
	if low < 0 {
		return errors.Wrapf(ErrNegativeValue, "%s: low %v", kind, low)
	}
	if low == 0 && high > 0 {
		return errors.Wrapf(ErrInvalidParameter, "%s: log-space range cannot start at 0", kind)
	}
	return nil
}

func validateT(kind Kind, low, high, df float64, logSpace bool) error {
	if err := validateRange(kind, low, high, logSpace); err != nil {
		return err
	}
	if low != high && !(df > 0) {
		return errors.Wrapf(ErrInvalidParameter, "%s: degrees of freedom %v", kind, df)
	}
	return nil
}
