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

// Asin returns the arcsine, in radians, of x.
//
// Algorithm: power series x + sum((2k-1)!!/(2k)!! * x^(2k+1)/(2k+1)).
// For |x| > 0.5 the argument is first reduced with
// asin(x) = π/2 - 2*asin(sqrt((1-x)/2)), which keeps the series argument at
// or below 0.5 where it converges in a few dozen terms.
//
// Special cases:
//   - Asin(±1) = ±π/2
//   - Asin(x) = NaN if |x| > 1
//   - Asin(NaN) = NaN
func Asin(x float64) float64 {
	switch {
	case x == 1:
		return halfPi
	case x == -1:
		return -halfPi
	case !(Fabs(x) < 1):
		return nan
	}

	ax := Fabs(x)
	if ax <= 0.5 {
		return asinSeries(x)
	}
	r := halfPi - 2*asinSeries(Sqrt((1-ax)*0.5))
	if x < 0 {
		return -r
	}
	return r
}

// asinSeries evaluates the arcsine power series for |x| < 1. The running
// numerator collects x^(2k+1) times the odd factorial and the denominator
// collects the even factorial.
func asinSeries(x float64) float64 {
	x2 := x * x
	sum := x
	numerator, denominator := x, 1.0
	for k, i := 0, 2; k < maxSeriesTerms; k, i = k+1, i+2 {
		prev := sum
		numerator *= x2
		denominator *= float64(i)
		sum += numerator / (denominator * float64(i+1))
		numerator *= float64(i + 1)
		if Fabs(sum-prev) < asinEpsilon {
			return sum
		}
	}
	notConverged("Asin", x)
	return sum
}

// Acos returns the arccosine, in radians, of x, computed as π/2 - Asin(x).
//
// Special cases:
//   - Acos(1) = 0
//   - Acos(-1) = π
//   - Acos(x) = NaN if |x| > 1
//   - Acos(NaN) = NaN
func Acos(x float64) float64 {
	if !(Fabs(x) <= 1) {
		return nan
	}
	return halfPi - Asin(x)
}
