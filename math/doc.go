// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package math provides elementary functions computed from first principles:
// series expansions, range reduction and a handful of identities. Nothing in
// this package calls the standard library's math routines for a result; the
// standard library only supplies the IEEE-754 sentinels (NaN, ±Inf) and the
// largest finite float64.
//
// # Functions
//
// Primitives:
//   - Abs(x int) int
//   - Fabs(x float64) float64
//   - Fmod(x, y float64) float64 - remainder of truncated division
//   - Floor(x float64) float64
//   - Ceil(x float64) float64
//
// Exponential and logarithmic:
//   - Exp(x float64) float64 - Taylor series, inverted for negative x
//   - Log(x float64) float64 - artanh series on the mantissa
//   - Pow(base, exp float64) float64 - Exp(Log(base)*exp)
//   - Sqrt(x float64) float64 - Exp(Log(x)/2)
//
// Trigonometric:
//   - Sin(x float64) float64
//   - Cos(x float64) float64
//   - Tan(x float64) float64 - Sin(x)/Cos(x)
//
// Inverse trigonometric:
//   - Asin(x float64) float64
//   - Acos(x float64) float64 - π/2 - Asin(x)
//   - Atan(x float64) float64 - 500-term Gregory series
//
// # Accuracy
//
// Results agree with the standard library to about 1e-7 absolute (or relative,
// for large magnitudes) over each function's ordinary domain. Rounding is not
// bit-exact.
//
// Domain errors produce NaN, overflow produces a signed infinity and
// underflow produces 0. NaN inputs always propagate.
//
// # Concurrency
//
// Every function is pure. They may be called from any number of goroutines
// without synchronization.
//
// # Diagnostics
//
// Each convergent series also carries an iteration cap. If a series hits the
// cap the partial sum is returned and a debug entry is written to the logger
// installed with SetLogger (a no-op logger by default).
package math
