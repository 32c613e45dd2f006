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

// Exp returns e**x.
//
// Algorithm: Taylor series sum(x^i / i!) built incrementally with
// term *= x/i. A negative argument is evaluated as 1/exp(-x) so every term
// is positive. The loop ends when two partial sums differ by less than 1e-20
// or when the sum reaches the largest finite float64, in which case the
// result is +Inf (and 0 for a negative argument).
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
//   - Exp(x) = +Inf for x above ~709.78
//   - Exp(x) = 0 for x below ~-709.78
func Exp(x float64) float64 {
	if x != x {
		return x
	}
	negative := x < 0
	if negative {
		x = -x
	}

	sum, term := 1.0, 1.0
	converged := false
	for i := 1; i <= maxSeriesTerms; i++ {
		prev := sum
		term *= x / float64(i)
		sum += term
		if sum >= expOverflow {
			sum = posInf
			converged = true
			break
		}
		if Fabs(sum-prev) < expEpsilon {
			converged = true
			break
		}
	}
	if !converged {
		notConverged("Exp", x)
	}

	if negative {
		if sum == posInf {
			return 0
		}
		return 1 / sum
	}
	return sum
}
