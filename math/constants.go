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

// =============================================================================
// Constants for the elementary functions
// =============================================================================

const (
	pi       = 3.14159265358979323846264338327950288419716939937510582097494459
	halfPi   = pi / 2
	twoPi    = 2 * pi
	sqrt2    = 1.41421356237309504880168872420969807856967187537694807317667974
	invSqrt2 = 1 / sqrt2

	// ln2 split into a high part with trailing zero bits and a low
	// correction, so k*ln2Hi is exact for the exponents Log produces.
	ln2Hi = 6.93147180369123816490e-01
	ln2Lo = 1.90821492927058770002e-10
)

// Convergence thresholds on successive partial sums.
const (
	expEpsilon  = 1e-20
	trigEpsilon = 1e-16
	logEpsilon  = 1e-16
	asinEpsilon = 1e-16
)

const (
	// atanTerms is the fixed length of the Gregory series.
	atanTerms = 500

	// maxSeriesTerms bounds every epsilon-driven loop. Exp near the
	// overflow threshold is the slowest series and needs under 1000 terms.
	maxSeriesTerms = 1 << 14

	// expOverflow is the accumulator magnitude at which Exp gives up and
	// returns +Inf.
	expOverflow = stdmath.MaxFloat64

	// oddLimit is 2^53: every float64 at or above it is an even integer.
	oddLimit = 1 << 53
)

// Scaling steps used by Log to split x into mantissa and exponent.
const (
	bigScale      = 0x1p64
	bigScaleInv   = 0x1p-64
	bigScaleShift = 64
)

var (
	nan    = stdmath.NaN()
	posInf = stdmath.Inf(1)
	negInf = stdmath.Inf(-1)
)
