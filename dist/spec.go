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

import "golang.org/x/exp/rand"

// Kind is the tag of a specification.
type Kind string

const (
	KindConst              Kind = "const"
	KindNorm               Kind = "norm"
	KindLogNorm            Kind = "log"
	KindWeightedLogNorm    Kind = "weighted_log"
	KindDistributedLogNorm Kind = "distributed_log"
	KindTDist              Kind = "tdist"
	KindLogTDist           Kind = "log-tdist"
	KindCustom             Kind = "custom"
)

// Spec is a specification of a random quantity. The set of
// implementations is closed; they are the types declared in this
// package.
type Spec interface {
	Kind() Kind
	isSpec()
}

// Range is a credible interval [Low, High].
type Range struct {
	Low  float64
	High float64
}

// Const is a point mass. It is never clipped.
type Const struct {
	Value float64
}

// Norm is a normal distribution calibrated to [Low, High].
type Norm struct {
	Low, High float64
	Clip      Clip
}

// LogNorm is a log-normal distribution calibrated to [Low, High].
type LogNorm struct {
	Low, High float64
	Clip      Clip
}

// WeightedLogNorm draws one log-normal value per range and returns their
// weighted sum.
type WeightedLogNorm struct {
	Ranges  []Range
	Weights []float64
	Clip    Clip
}

// DistributedLogNorm picks one range with probability given by its
// weight and draws a single log-normal value from it.
type DistributedLogNorm struct {
	Ranges  []Range
	Weights []float64
	Clip    Clip
}

// TDist is a Student's t distribution with DF degrees of freedom
// centered on [Low, High].
type TDist struct {
	Low, High float64
	DF        float64
	Clip      Clip
}

// LogTDist is TDist in log space.
type LogTDist struct {
	Low, High float64
	DF        float64
	Clip      Clip
}

// Custom is a caller-supplied sampler. It receives the random source of
// the sampling call and is neither validated nor clipped.
type Custom func(src rand.Source) (float64, error)

func (Const) Kind() Kind              { return KindConst }
func (Norm) Kind() Kind               { return KindNorm }
func (LogNorm) Kind() Kind            { return KindLogNorm }
func (WeightedLogNorm) Kind() Kind    { return KindWeightedLogNorm }
func (DistributedLogNorm) Kind() Kind { return KindDistributedLogNorm }
func (TDist) Kind() Kind              { return KindTDist }
func (LogTDist) Kind() Kind           { return KindLogTDist }
func (Custom) Kind() Kind             { return KindCustom }

func (Const) isSpec()              {}
func (Norm) isSpec()               {}
func (LogNorm) isSpec()            {}
func (WeightedLogNorm) isSpec()    {}
func (DistributedLogNorm) isSpec() {}
func (TDist) isSpec()              {}
func (LogTDist) isSpec()           {}
func (Custom) isSpec()             {}

// NewConst returns a point mass at v.
func NewConst(v float64) Const {
	return Const{Value: v}
}

// NewNorm returns a normal specification calibrated to [low, high].
func NewNorm(low, high float64, opts ...ClipOption) Norm {
	return Norm{Low: low, High: high, Clip: newClip(opts)}
}

// NewLogNorm returns a log-normal specification calibrated to
// [low, high].
func NewLogNorm(low, high float64, opts ...ClipOption) LogNorm {
	return LogNorm{Low: low, High: high, Clip: newClip(opts)}
}

// NewWeightedLogNorm returns a weighted combination of log-normals.
// The slices are copied.
func NewWeightedLogNorm(ranges []Range, weights []float64, opts ...ClipOption) WeightedLogNorm {
	return WeightedLogNorm{
		Ranges:  append([]Range(nil), ranges...),
		Weights: append([]float64(nil), weights...),
		Clip:    newClip(opts),
	}
}

// NewDistributedLogNorm returns a mixture of log-normals from which a
// single component is selected per draw. The slices are copied.
func NewDistributedLogNorm(ranges []Range, weights []float64, opts ...ClipOption) DistributedLogNorm {
	return DistributedLogNorm{
		Ranges:  append([]Range(nil), ranges...),
		Weights: append([]float64(nil), weights...),
		Clip:    newClip(opts),
	}
}

// NewTDist returns a Student's t specification.
func NewTDist(low, high, df float64, opts ...ClipOption) TDist {
	return TDist{Low: low, High: high, DF: df, Clip: newClip(opts)}
}

// NewLogTDist returns a log-space Student's t specification.
func NewLogTDist(low, high, df float64, opts ...ClipOption) LogTDist {
	return LogTDist{Low: low, High: high, DF: df, Clip: newClip(opts)}
}
