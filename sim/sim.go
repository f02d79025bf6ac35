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

// Package sim runs Monte Carlo simulations over specifications.
//
// Trials are spread across worker goroutines. Every worker owns its own
// random source and reseeds it at the start of each trial from the run
// seed and the trial index, so a run is reproducible from its seed
// regardless of the number of workers.
package sim

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/fentec-project/credsim/data"
	"github.com/fentec-project/credsim/dist"
	"github.com/fentec-project/credsim/internal"
	"github.com/fentec-project/credsim/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Config configures a simulation run.
type Config struct {
	// Trials is the number of trials to run.
	Trials int
	// Workers is the number of goroutines. Zero means GOMAXPROCS.
	Workers int
	// Seed determines every draw of the run.
	Seed uint64
	// Key, when set, makes workers draw from a sample.KeyedSource
	// instead of a PCG source.
	Key *[32]byte
	// Credibility of the stated ranges. Zero means
	// dist.DefaultCredibility.
	Credibility float64
}

func (c Config) withDefaults() (Config, error) {
	if c.Trials < 0 {
		return c, errors.Errorf("trials should be non-negative, got %d", c.Trials)
	}
	if c.Workers < 0 {
		return c, errors.Errorf("workers should be non-negative, got %d", c.Workers)
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Workers > c.Trials && c.Trials > 0 {
		c.Workers = c.Trials
	}
	if c.Credibility == 0 {
		c.Credibility = dist.DefaultCredibility
	}
	if !internal.ValidCredibility(c.Credibility) {
		return c, errors.Wrapf(dist.ErrInvalidParameter, "credibility %v", c.Credibility)
	}
	return c, nil
}

func (c Config) newSource() rand.Source {
	if c.Key != nil {
		return sample.NewKeyedSource(c.Key)
	}
	return rand.NewSource(c.Seed)
}

// Trial computes the outcome of trial i, drawing from s.
type Trial func(i int, s *dist.Sampler) (float64, error)

// Run executes cfg.Trials trials and returns their outcomes in trial
// order. It stops at the first failing trial or when ctx is done.
func Run(ctx context.Context, cfg Config, trial Trial) (data.Vector, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	res := make(data.Vector, cfg.Trials)
	err = run(ctx, cfg, func(i int, s *dist.Sampler) error {
		v, err := trial(i, s)
		if err != nil {
			return err
		}
		res[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Model is a set of named quantities and named events evaluated together
// in every trial.
type Model struct {
	Variables map[string]dist.Spec
	// Events maps an event name to its probability per trial.
	Events map[string]float64
}

// RunModel samples every variable and event of m once per trial. Event
// outcomes are recorded as 1 or 0, so the mean of an event vector is its
// observed frequency.
func RunModel(ctx context.Context, cfg Config, m Model) (map[string]data.Vector, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	for name, spec := range m.Variables {
		if err := dist.Validate(spec); err != nil {
			return nil, errors.Wrapf(err, "variable %q", name)
		}
	}
	for name, p := range m.Events {
		if _, ok := m.Variables[name]; ok {
			return nil, errors.Errorf("%q is both a variable and an event", name)
		}
		if !(p >= 0 && p <= 1) {
			return nil, errors.Wrapf(dist.ErrInvalidParameter, "event %q has probability %v", name, p)
		}
	}

	// a fixed order keeps the draws of a trial reproducible
	variables := sortedKeys(m.Variables)
	events := sortedKeys(m.Events)

	res := make(map[string]data.Vector, len(variables)+len(events))
	for _, name := range variables {
		res[name] = make(data.Vector, cfg.Trials)
	}
	for _, name := range events {
		res[name] = make(data.Vector, cfg.Trials)
	}

	err = run(ctx, cfg, func(i int, s *dist.Sampler) error {
		for _, name := range variables {
			v, err := s.Sample(m.Variables[name])
			if err != nil {
				return errors.Wrapf(err, "variable %q", name)
			}
			res[name][i] = v
		}
		for _, name := range events {
			if s.Event(m.Events[name]) {
				res[name][i] = 1
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func run(ctx context.Context, cfg Config, body func(i int, s *dist.Sampler) error) error {
	if cfg.Trials == 0 {
		return ctx.Err()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	trials := make(chan int)
	errc := make(chan error, cfg.Workers)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := cfg.newSource()
			s := dist.NewSampler(src).WithCredibility(cfg.Credibility)
			for i := range trials {
				src.Seed(internal.TrialSeed(cfg.Seed, i))
				if err := body(i, s); err != nil {
					errc <- errors.Wrapf(err, "trial %d", i)
					cancel()
					return
				}
			}
		}()
	}

feed:
	for i := 0; i < cfg.Trials; i++ {
		select {
		case trials <- i:
		case <-runCtx.Done():
			break feed
		}
	}
	close(trials)
	wg.Wait()
	close(errc)

	if err := <-errc; err != nil {
		return err
	}
	return ctx.Err()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
