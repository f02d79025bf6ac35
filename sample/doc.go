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

// Package sample includes calibrated samplers for drawing random values
// from a small set of parametric distributions.
//
// Every sampler is parametrized the way a forecaster states a belief:
// a low and a high value that bound a central credible interval at a
// given credibility (for instance 0.9). The sampler fits the
// distribution to that interval and draws a single value from it.
//
// Randomness always comes from an explicitly passed rand.Source. A nil
// source falls back to the global source of golang.org/x/exp/rand.
// Sources are not safe for concurrent use; each goroutine should own one.
package sample
