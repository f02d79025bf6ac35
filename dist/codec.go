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
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Definition decodes a specification from YAML (and therefore JSON).
//
// Two forms are accepted. The named form is a mapping:
//
//	{kind: norm, low: 1, high: 2, lclip: 0, rclip: 5}
//	{kind: tdist, low: 1, high: 2, df: 3}
//	{kind: weighted_log, ranges: [[1, 2], [3, 4]], weights: [0.5, 0.5]}
//	{kind: const, value: 5}
//
// The positional form is the tagged record with 5 or 6 entries, where
// the t kinds carry their degrees of freedom before the clip bounds:
//
//	[1, 2, "norm", null, null]
//	[1, 2, "tdist", 3, null, 10]
//	[[[1, 2], [3, 4]], [0.5, 0.5], "distributed_log", null, null]
//	[5, null, "const", null, null]
//
// In the positional form a clip bound of 0 is treated as absent.
type Definition struct {
	Spec Spec
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	spec, err := decodeNode(node)
	if err != nil {
		return err
	}
	d.Spec = spec
	return nil
}

// Decode parses a single specification from YAML or JSON.
func Decode(b []byte) (Spec, error) {
	var d Definition
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	if d.Spec == nil {
		return nil, errors.Wrap(ErrMalformedSpec, "empty document")
	}
	return d.Spec, nil
}

// kindAliases maps the accepted spellings of a tag to its kind.
var kindAliases = map[string]Kind{
	"const":               KindConst,
	"norm":                KindNorm,
	"log":                 KindLogNorm,
	"lognorm":             KindLogNorm,
	"weighted_log":        KindWeightedLogNorm,
	"weighted_lognorm":    KindWeightedLogNorm,
	"distributed_log":     KindDistributedLogNorm,
	"distributed_lognorm": KindDistributedLogNorm,
	"tdist":               KindTDist,
	"log-tdist":           KindLogTDist,
	"log_tdist":           KindLogTDist,
}

func parseKind(tag string) (Kind, error) {
	kind, ok := kindAliases[tag]
	if !ok {
		return "", errors.Wrapf(ErrUnknownSampler, "%q", tag)
	}
	return kind, nil
}

func decodeNode(node *yaml.Node) (Spec, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return decodeNamed(node)
	case yaml.SequenceNode:
		return decodePositional(node)
	default:
		return nil, errors.Wrapf(ErrMalformedSpec, "line %d: expected a mapping or a sequence", node.Line)
	}
}

type namedSpec struct {
	Kind    string      `yaml:"kind"`
	Value   *float64    `yaml:"value"`
	Low     *float64    `yaml:"low"`
	High    *float64    `yaml:"high"`
	DF      *float64    `yaml:"df"`
	LClip   *float64    `yaml:"lclip"`
	RClip   *float64    `yaml:"rclip"`
	Ranges  [][]float64 `yaml:"ranges"`
	Weights []float64   `yaml:"weights"`
}

func decodeNamed(node *yaml.Node) (Spec, error) {
	var n namedSpec
	if err := node.Decode(&n); err != nil {
		return nil, errors.Wrapf(ErrMalformedSpec, "line %d: %v", node.Line, err)
	}
	if n.Kind == "" {
		return nil, errors.Wrapf(ErrMalformedSpec, "line %d: missing kind", node.Line)
	}
	kind, err := parseKind(n.Kind)
	if err != nil {
		return nil, err
	}

	clip := Clip{Lower: n.LClip, Upper: n.RClip}
	missing := func(field string) error {
		return errors.Wrapf(ErrMalformedSpec, "line %d: %s needs %s", node.Line, kind, field)
	}

	switch kind {
	case KindConst:
		if n.Value == nil {
			return nil, missing("value")
		}
		return NewConst(*n.Value), nil
	case KindWeightedLogNorm, KindDistributedLogNorm:
		if n.Ranges == nil || n.Weights == nil {
			return nil, missing("ranges and weights")
		}
		ranges, err := toRanges(n.Ranges)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		if kind == KindWeightedLogNorm {
			return WeightedLogNorm{Ranges: ranges, Weights: n.Weights, Clip: clip}, nil
		}
		return DistributedLogNorm{Ranges: ranges, Weights: n.Weights, Clip: clip}, nil
	}

	if n.Low == nil || n.High == nil {
		return nil, missing("low and high")
	}
	low, high := *n.Low, *n.High

	switch kind {
	case KindNorm:
		return Norm{Low: low, High: high, Clip: clip}, nil
	case KindLogNorm:
		return LogNorm{Low: low, High: high, Clip: clip}, nil
	}

	if n.DF == nil {
		return nil, missing("df")
	}
	if kind == KindTDist {
		return TDist{Low: low, High: high, DF: *n.DF, Clip: clip}, nil
	}
	return LogTDist{Low: low, High: high, DF: *n.DF, Clip: clip}, nil
}

func decodePositional(node *yaml.Node) (Spec, error) {
	fields := node.Content
	if len(fields) != 5 && len(fields) != 6 {
		return nil, errors.Wrapf(ErrMalformedSpec, "line %d: record has %d entries, want 5 or 6",
			node.Line, len(fields))
	}

	var tag string
	if fields[2].ShortTag() != "!!str" || fields[2].Decode(&tag) != nil {
		return nil, errors.Wrapf(ErrMalformedSpec, "line %d: third entry must be the sampler name", node.Line)
	}
	kind, err := parseKind(tag)
	if err != nil {
		return nil, err
	}

	want := 5
	if kind == KindTDist || kind == KindLogTDist {
		want = 6
	}
	if len(fields) != want {
		return nil, errors.Wrapf(ErrMalformedSpec, "line %d: %s record has %d entries, want %d",
			node.Line, kind, len(fields), want)
	}

	if kind == KindConst {
		v, err := decodeFloat(fields[0])
		if err != nil {
			return nil, err
		}
		return NewConst(v), nil
	}

	clip, err := decodeLegacyClip(fields[want-2], fields[want-1])
	if err != nil {
		return nil, err
	}

	if kind == KindWeightedLogNorm || kind == KindDistributedLogNorm {
		var raw [][]float64
		var weights []float64
		if err := fields[0].Decode(&raw); err != nil {
			return nil, errors.Wrapf(ErrMalformedSpec, "line %d: %v", fields[0].Line, err)
		}
		if err := fields[1].Decode(&weights); err != nil {
			return nil, errors.Wrapf(ErrMalformedSpec, "line %d: %v", fields[1].Line, err)
		}
		ranges, err := toRanges(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		if kind == KindWeightedLogNorm {
			return WeightedLogNorm{Ranges: ranges, Weights: weights, Clip: clip}, nil
		}
		return DistributedLogNorm{Ranges: ranges, Weights: weights, Clip: clip}, nil
	}

	low, err := decodeFloat(fields[0])
	if err != nil {
		return nil, err
	}
	high, err := decodeFloat(fields[1])
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindNorm:
		return Norm{Low: low, High: high, Clip: clip}, nil
	case KindLogNorm:
		return LogNorm{Low: low, High: high, Clip: clip}, nil
	}

	df, err := decodeFloat(fields[3])
	if err != nil {
		return nil, err
	}
	if kind == KindTDist {
		return TDist{Low: low, High: high, DF: df, Clip: clip}, nil
	}
	return LogTDist{Low: low, High: high, DF: df, Clip: clip}, nil
}

func decodeFloat(node *yaml.Node) (float64, error) {
	var v float64
	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return 0, errors.Wrapf(ErrMalformedSpec, "line %d: expected a number", node.Line)
	}
	if err := node.Decode(&v); err != nil {
		return 0, errors.Wrapf(ErrMalformedSpec, "line %d: %v", node.Line, err)
	}
	return v, nil
}

// decodeLegacyClip reads positional clip bounds, where null and 0 both
// mean "no bound".
func decodeLegacyClip(lower, upper *yaml.Node) (Clip, error) {
	var c Clip
	for _, f := range []struct {
		node *yaml.Node
		dst  **float64
	}{{lower, &c.Lower}, {upper, &c.Upper}} {
		if f.node.ShortTag() == "!!null" {
			continue
		}
		v, err := decodeFloat(f.node)
		if err != nil {
			return Clip{}, err
		}
		if v != 0 {
			*f.dst = &v
		}
	}
	return c, nil
}

func toRanges(raw [][]float64) ([]Range, error) {
	ranges := make([]Range, len(raw))
	for i, r := range raw {
		if len(r) != 2 {
			return nil, errors.Wrapf(ErrMalformedSpec, "range %d has %d bounds, want 2", i, len(r))
		}
		ranges[i] = Range{Low: r[0], High: r[1]}
	}
	return ranges, nil
}
