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

// Pow returns base**exp, computed as Exp(Log(base)*exp).
//
// A negative base with an integral exponent is evaluated on |base| and the
// sign is restored when the exponent is odd. A negative base with a
// fractional exponent reaches Log with a negative argument and the NaN
// propagates.
//
// Special cases:
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(-1, y) = ±1 for integral y, including ±Inf
//	Pow(x, y) = NaN for finite x < 0 and non-integral y
//	Pow(NaN, y) = NaN for y != 0
//	Pow(x, NaN) = NaN for x != 1
//	Pow(0, y) = +Inf for y < 0
//	Pow(0, y) = 0 for y > 0
//	Pow(x, +Inf) = +Inf for |x| > 1, 0 for |x| < 1
//	Pow(x, -Inf) = 0 for |x| > 1, +Inf for |x| < 1
//	Pow(x, y) = ±Inf when the magnitude overflows
func Pow(base, exp float64) float64 {
	if exp == 0 || base == 1 {
		return 1
	}

	sign := 1.0
	if base < 0 && exp == Floor(exp) {
		if isOdd(exp) {
			sign = -1
		}
		base = Fabs(base)
		if base == 1 {
			return sign
		}
	}
	return sign * Exp(Log(base)*exp)
}

// isOdd reports whether the integral value n is odd. From 2^53 up every
// float64 is an even integer, as are the infinities, so the parity test
// never converts a value outside the int64 range.
func isOdd(n float64) bool {
	n = Fabs(n)
	if n >= oddLimit {
		return false
	}
	return int64(n)%2 == 1
}

// Sqrt returns the square root of x, computed as Exp(Log(x)*0.5).
//
// Special cases:
//   - Sqrt(+Inf) = +Inf
//   - Sqrt(±0) = ±0
//   - Sqrt(x < 0) = NaN
//   - Sqrt(NaN) = NaN
func Sqrt(x float64) float64 {
	if x == 0 {
		return x
	}
	return Exp(Log(x) * 0.5)
}
