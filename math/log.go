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

// Log returns the natural logarithm of x.
//
// Algorithm:
//  1. Split x = m * 2^k with m in [1/√2, √2), scaling by exact powers of two
//  2. ln(m) = 2*artanh(t) = 2 * sum(t^(2j+1) / (2j+1)), t = (m-1)/(m+1)
//  3. ln(x) = ln(m) + k*ln2
//
// With |t| <= 0.172 the series settles in about a dozen terms for any finite
// positive x.
//
// Special cases:
//   - Log(+Inf) = +Inf
//   - Log(0) = -Inf
//   - Log(x < 0) = NaN
//   - Log(NaN) = NaN
func Log(x float64) float64 {
	switch {
	case x != x:
		return x
	case x < 0:
		return nan
	case x == 0:
		return negInf
	case x == posInf:
		return posInf
	}

	m, k := splitPow2(x)
	t := (m - 1) / (m + 1)
	t2 := t * t

	sum := 0.0
	numerator, denominator := t, 1.0
	converged := false
	for range maxSeriesTerms {
		prev := sum
		sum += numerator / denominator
		numerator *= t2
		denominator += 2
		if Fabs(sum-prev) < logEpsilon {
			converged = true
			break
		}
	}
	if !converged {
		notConverged("Log", x)
	}

	fk := float64(k)
	return fk*ln2Hi + (2*sum + fk*ln2Lo)
}

// splitPow2 returns m and k such that x = m * 2^k and 1/√2 <= m < √2.
// x must be finite and positive. Every step multiplies by a power of two,
// so m carries exactly the significand bits of x.
func splitPow2(x float64) (float64, int) {
	k := 0
	for x >= bigScale {
		x *= bigScaleInv
		k += bigScaleShift
	}
	for x < bigScaleInv {
		x *= bigScale
		k -= bigScaleShift
	}
	for x >= sqrt2 {
		x *= 0.5
		k++
	}
	for x < invSqrt2 {
		x *= 2
		k--
	}
	return x, k
}
