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
	"os"

	"github.com/fentec-project/credsim/dist"
	"github.com/fentec-project/credsim/sim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// modelFile is the YAML layout of a simulation model.
//
//	trials: 10000
//	seed: 42
//	credibility: 0.9
//	variables:
//	  cost: {kind: log, low: 1000, high: 100000, lclip: 10}
//	  delay: [1, 5, "tdist", 3, 0, 20]
//	events:
//	  accident: 0.02
type modelFile struct {
	Trials      int                        `yaml:"trials"`
	Seed        uint64                     `yaml:"seed"`
	Credibility float64                    `yaml:"credibility"`
	Variables   map[string]dist.Definition `yaml:"variables"`
	Events      map[string]float64         `yaml:"events"`
}

func loadModel(path string) (*modelFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read model")
	}
	return parseModel(b)
}

func parseModel(b []byte) (*modelFile, error) {
	var m modelFile
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, errors.Wrap(err, "cannot parse model")
	}
	if len(m.Variables) == 0 && len(m.Events) == 0 {
		return nil, errors.New("model defines no variables and no events")
	}
	for name, d := range m.Variables {
		if d.Spec == nil {
			return nil, errors.Wrapf(dist.ErrMalformedSpec, "variable %q is empty", name)
		}
	}
	return &m, nil
}

// model converts the file into a simulation model.
func (m *modelFile) model() sim.Model {
	vars := make(map[string]dist.Spec, len(m.Variables))
	for name, d := range m.Variables {
		vars[name] = d.Spec
	}
	return sim.Model{Variables: vars, Events: m.Events}
}
