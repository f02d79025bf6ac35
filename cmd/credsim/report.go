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
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/fentec-project/credsim/data"
)

// summary is the reported view of one simulated quantity.
type summary struct {
	Name        string            `json:"name"`
	Mean        number            `json:"mean"`
	StdDev      number            `json:"stddev,omitempty"`
	Percentiles map[string]number `json:"percentiles,omitempty"`
	Exceed      map[string]number `json:"exceed,omitempty"`
	Event       bool              `json:"event,omitempty"`
}

// number is a float64 that encodes to JSON even when it is not finite.
// Infinities and NaN, which wide log-normal ranges can produce, are
// written as the strings "+Inf", "-Inf" and "NaN".
type number float64

// MarshalJSON implements json.Marshaler.
func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(formatFloat(f))
	}
	return json.Marshal(f)
}

// summarize reports every quantity of res. Events get their frequency
// only; variables get percentiles ps and the share of trials above each
// threshold of exceed.
func summarize(res map[string]data.Vector, events map[string]float64, ps, exceed []float64) []summary {
	names := make([]string, 0, len(res))
	for name := range res {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]summary, 0, len(names))
	for _, name := range names {
		v := res[name]
		s := summary{Name: name, Mean: number(v.Mean())}
		if _, ok := events[name]; ok {
			s.Event = true
			out = append(out, s)
			continue
		}
		if len(v) > 1 {
			s.StdDev = number(v.StdDev())
		}
		s.Percentiles = make(map[string]number, len(ps))
		for p, q := range v.Percentiles(ps...) {
			s.Percentiles[formatFloat(p)] = number(q)
		}
		if len(exceed) > 0 {
			s.Exceed = make(map[string]number, len(exceed))
			for _, limit := range exceed {
				limit := limit
				s.Exceed[formatFloat(limit)] = number(v.Fraction(func(x float64) bool { return x > limit }))
			}
		}
		out = append(out, s)
	}
	return out
}

func writeJSON(w io.Writer, sums []summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sums)
}

func writeText(w io.Writer, sums []summary, ps, exceed []float64) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "name\tmean")
	for _, p := range ps {
		fmt.Fprintf(tw, "\tp%s", formatFloat(p))
	}
	for _, limit := range exceed {
		fmt.Fprintf(tw, "\t>%s", formatFloat(limit))
	}
	fmt.Fprintln(tw)

	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%.4g", s.Name, float64(s.Mean))
		for _, p := range ps {
			if s.Event {
				fmt.Fprint(tw, "\t-")
				continue
			}
			fmt.Fprintf(tw, "\t%.4g", float64(s.Percentiles[formatFloat(p)]))
		}
		for _, limit := range exceed {
			if s.Event {
				fmt.Fprint(tw, "\t-")
				continue
			}
			fmt.Fprintf(tw, "\t%.4g", float64(s.Exceed[formatFloat(limit)]))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
