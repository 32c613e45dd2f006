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

package math

import stdmath "math"

// Atan returns the arctangent, in radians, of x.
//
// Algorithm:
//   - |x| <= 1: Gregory series sum((-1)^i x^(2i+1) / (2i+1)) over a fixed
//     500 terms; for |x| > 0.5 the argument is halved first with
//     atan(x) = 2*atan(x / (1 + sqrt(1+x^2)))
//   - |x| > 1: atan(x) = sign(x)*π/2 - atan(1/x)
//
// Special cases:
//   - Atan(0) = 0
//   - Atan(±Inf) = ±π/2
//   - Atan(NaN) = NaN
func Atan(x float64) float64 {
	switch {
	case x != x:
		return x
	case stdmath.IsInf(x, 1):
		return halfPi
	case stdmath.IsInf(x, -1):
		return -halfPi
	case x > 1:
		return halfPi - atanSeries(1/x)
	case x < -1:
		return -halfPi - atanSeries(1/x)
	}
	return atanSeries(x)
}

// atanSeries evaluates the Gregory series for |x| <= 1.
func atanSeries(x float64) float64 {
	scale := 1.0
	if Fabs(x) > 0.5 {
		x /= 1 + Sqrt(1+x*x)
		scale = 2
	}

	x2 := x * x
	sum, term := 0.0, x
	for i := range atanTerms {
		sum += term / float64(2*i+1)
		term *= -x2
	}
	return scale * sum
}
