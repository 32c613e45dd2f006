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

// Sin returns the sine of the radian argument x.
//
// Algorithm:
//  1. Range reduction: x = Fmod(x, 2π)
//  2. Exact zero when the reduced x is a multiple of π
//  3. Alternating Taylor series x - x^3/3! + x^5/5! - ... until two partial
//     sums differ by less than 1e-16
//
// The reduction is exact with respect to the float64 value of 2π, which
// differs from 2π by about 2.4e-16. The error therefore grows like
// |x|*4e-17: past roughly 1e9 it exceeds 1e-7, and for huge arguments the
// result is bounded but meaningless.
//
// Special cases:
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin(x float64) float64 {
	x = Fmod(x, twoPi)
	if x != x {
		return x
	}
	if Fmod(x, pi) == 0 {
		return 0
	}
	return trigSeries("Sin", x, x, 3)
}

// Cos returns the cosine of the radian argument x.
//
// Algorithm:
//  1. Range reduction: x = Fmod(x, 2π)
//  2. Exact zero when the reduced x is an odd multiple of π/2
//  3. Alternating Taylor series 1 - x^2/2! + x^4/4! - ... until two partial
//     sums differ by less than 1e-16
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos(x float64) float64 {
	x = Fmod(x, twoPi)
	if x != x {
		return x
	}
	if Fmod(x, halfPi) == 0 && Fmod(x, pi) != 0 {
		return 0
	}
	return trigSeries("Cos", x, 1, 2)
}

// trigSeries sums the alternating series whose first term is first and
// whose next term has degree i. Each step multiplies the term by
// x^2 / (i*(i-1)) and advances i by 2.
func trigSeries(fn string, x, first float64, i int) float64 {
	x2 := x * x
	sum, term := first, first
	sign := 1.0
	for range maxSeriesTerms {
		prev := sum
		sign = -sign
		term *= x2 / float64(i*(i-1))
		sum += sign * term
		i += 2
		if Fabs(sum-prev) < trigEpsilon {
			return sum
		}
	}
	notConverged(fn, x)
	return sum
}

// Tan returns the tangent of the radian argument x, computed as
// Sin(x)/Cos(x).
//
// Where Cos(x) is exactly zero the division yields a signed infinity.
//
// Special cases:
//   - Tan(π/2) = +Inf
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
func Tan(x float64) float64 {
	return Sin(x) / Cos(x)
}
