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

// Package dist implements a declarative format for describing random
// quantities and a single function, Sample, that draws from them.
//
// A specification names a distribution family and its calibration range
// without committing to a concrete probability law ahead of time:
//
//	cost := dist.NewLogNorm(1e3, 1e5, dist.LClip(10))
//	delay := dist.NewTDist(1, 5, 3, dist.RClip(20))
//	mix := dist.NewDistributedLogNorm(
//		[]dist.Range{{Low: 1, High: 2}, {Low: 3, High: 4}},
//		[]float64{0.5, 0.5},
//	)
//
// Specifications are immutable values. Sampling applies mixture or
// selection logic first and then clamps the draw into the optional clip
// bounds. Specifications can also be decoded from YAML or JSON, see
// Definition.
package dist
