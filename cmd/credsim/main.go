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

// Command credsim runs Monte Carlo simulations of models whose
// quantities are stated as credible intervals.
//
// Usage:
//
//	credsim run --model model.yaml --trials 100000 --format json
//	credsim run --model model.yaml --exceed 50000 --exceed 90000
//	credsim draw --spec '[1, 10, "log", null, null]' -n 5
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fentec-project/credsim/data"
	"github.com/fentec-project/credsim/dist"
	"github.com/fentec-project/credsim/sim"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/rand"
)

const version = "0.1.0"

const defaultTrials = 10000

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.App{
		Name:    "credsim",
		Usage:   "sample models stated as credible intervals",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level: debug, info, warn, error",
				EnvVars: []string{"CREDSIM_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return errors.Wrap(err, "invalid log level")
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			runCommand(),
			drawCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("credsim failed")
		os.Exit(1)
	}
}

func samplingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "seed of the random source (default: derived from the clock)",
			EnvVars: []string{"CREDSIM_SEED"},
		},
		&cli.Float64Flag{
			Name:    "credibility",
			Usage:   "credibility of the stated ranges",
			Value:   dist.DefaultCredibility,
			EnvVars: []string{"CREDSIM_CREDIBILITY"},
		},
		&cli.Float64SliceFlag{
			Name:  "percentiles",
			Usage: "percentiles to report",
			Value: cli.NewFloat64Slice(data.DefaultPercentiles...),
		},
		&cli.Float64SliceFlag{
			Name:  "exceed",
			Usage: "thresholds whose probability of being exceeded is reported",
		},
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output format: text, json",
			Value:   "text",
			EnvVars: []string{"CREDSIM_FORMAT"},
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "simulate every variable and event of a model file",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "model",
				Aliases:  []string{"m"},
				Usage:    "path to the YAML model",
				Required: true,
				EnvVars:  []string{"CREDSIM_MODEL"},
			},
			&cli.IntFlag{
				Name:    "trials",
				Aliases: []string{"n"},
				Usage:   "number of trials",
				EnvVars: []string{"CREDSIM_TRIALS"},
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "number of workers (default: GOMAXPROCS)",
				EnvVars: []string{"CREDSIM_WORKERS"},
			},
		}, samplingFlags()...),
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	logger := log.With().Str("run", uuid.NewString()).Logger()

	m, err := loadModel(c.String("model"))
	if err != nil {
		return err
	}

	cfg := sim.Config{
		Trials:      m.Trials,
		Workers:     c.Int("workers"),
		Seed:        m.Seed,
		Credibility: m.Credibility,
	}
	if c.IsSet("trials") || cfg.Trials == 0 {
		cfg.Trials = c.Int("trials")
		if cfg.Trials == 0 {
			cfg.Trials = defaultTrials
		}
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	} else if m.Seed == 0 {
		cfg.Seed = clockSeed()
	}
	if c.IsSet("credibility") || cfg.Credibility == 0 {
		cfg.Credibility = c.Float64("credibility")
	}

	logger.Info().
		Str("model", c.String("model")).
		Int("variables", len(m.Variables)).
		Int("events", len(m.Events)).
		Int("trials", cfg.Trials).
		Uint64("seed", cfg.Seed).
		Float64("credibility", cfg.Credibility).
		Msg("Starting simulation")

	start := time.Now()
	res, err := sim.RunModel(c.Context, cfg, m.model())
	if err != nil {
		return errors.Wrap(err, "simulation failed")
	}
	logger.Info().Dur("elapsed", time.Since(start)).Msg("Simulation finished")

	ps, exceed := c.Float64Slice("percentiles"), c.Float64Slice("exceed")
	return report(c.App.Writer, c.String("format"), summarize(res, m.Events, ps, exceed), ps, exceed)
}

func drawCommand() *cli.Command {
	return &cli.Command{
		Name:  "draw",
		Usage: "draw values from a single specification",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "spec",
				Usage:    "specification in YAML or JSON, named or positional",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "n",
				Usage:   "number of draws",
				Value:   1,
				EnvVars: []string{"CREDSIM_DRAWS"},
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "report percentiles instead of the draws",
			},
		}, samplingFlags()...),
		Action: drawAction,
	}
}

func drawAction(c *cli.Context) error {
	spec, err := dist.Decode([]byte(c.String("spec")))
	if err != nil {
		return errors.Wrap(err, "invalid specification")
	}
	if err := dist.Validate(spec); err != nil {
		return errors.Wrap(err, "invalid specification")
	}

	n := c.Int("n")
	if n < 1 {
		return errors.Errorf("number of draws should be positive, got %d", n)
	}

	seed := c.Uint64("seed")
	if !c.IsSet("seed") {
		seed = clockSeed()
	}
	log.Debug().Str("kind", string(spec.Kind())).Uint64("seed", seed).Msg("Drawing")

	sampler := dist.Bind(spec, rand.NewSource(seed), c.Float64("credibility"))
	vec, err := data.NewRandomVector(n, sampler)
	if err != nil {
		return err
	}

	if c.Bool("summary") {
		ps, exceed := c.Float64Slice("percentiles"), c.Float64Slice("exceed")
		res := map[string]data.Vector{string(spec.Kind()): vec}
		return report(c.App.Writer, c.String("format"), summarize(res, nil, ps, exceed), ps, exceed)
	}
	for _, v := range vec {
		fmt.Fprintln(c.App.Writer, formatFloat(v))
	}
	return nil
}

func report(w io.Writer, format string, sums []summary, ps, exceed []float64) error {
	switch format {
	case "json":
		return writeJSON(w, sums)
	case "text":
		return writeText(w, sums, ps, exceed)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func clockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
