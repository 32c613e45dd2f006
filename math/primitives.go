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

// Abs returns the absolute value of x.
//
// The negation of stdmath.MinInt does not fit in an int, so Abs saturates:
//
//	Abs(stdmath.MinInt) = stdmath.MaxInt
func Abs(x int) int {
	if x < 0 {
		if x == stdmath.MinInt {
			return stdmath.MaxInt
		}
		return -x
	}
	return x
}

// Fabs returns the absolute value of x.
//
// Special cases:
//   - Fabs(±0) = +0
//   - Fabs(±Inf) = +Inf
//   - Fabs(NaN) = NaN
func Fabs(x float64) float64 {
	if x < 0 {
		return -x
	}
	if x == 0 {
		return 0
	}
	return x
}

// Fmod returns the remainder of x/y truncated toward zero, that is
// x - y*trunc(x/y) evaluated exactly. The result has the sign of x and a
// magnitude below |y|.
//
// Special cases:
//   - Fmod(x, 0) = NaN
//   - Fmod(±Inf, y) = NaN
//   - Fmod(x, ±Inf) = x for finite x
//   - Fmod(NaN, y) = Fmod(x, NaN) = NaN
func Fmod(x, y float64) float64 {
	switch {
	case x != x || y != y || y == 0:
		return nan
	case stdmath.IsInf(x, 0):
		return nan
	case stdmath.IsInf(y, 0):
		return x
	}
	return modLongDivision(x, y)
}

// modLongDivision subtracts the largest |y|*2^k not above the running
// remainder until it drops below |y|. Each subtraction has operands within a
// factor of two of each other and is therefore exact, so no rounding can
// flip the sign of the result. At most about 2100 steps run.
func modLongDivision(x, y float64) float64 {
	r, ay := Fabs(x), Fabs(y)
	d := ay
	for d <= r*0.5 {
		d *= 2
	}
	for d >= ay {
		if r >= d {
			r -= d
		}
		d *= 0.5
	}
	if stdmath.Signbit(x) {
		return -r
	}
	return r
}

// Floor returns the greatest integer value less than or equal to x.
//
// Special cases:
//   - Floor(±0) = 0
//   - Floor(±Inf) = ±Inf
//   - Floor(NaN) = NaN
func Floor(x float64) float64 {
	if x != x || stdmath.IsInf(x, 0) {
		return x
	}
	r := Fmod(x, 1)
	if x < 0 && r != 0 {
		return x - r - 1
	}
	return x - r
}

// Ceil returns the least integer value greater than or equal to x.
//
// Special cases:
//   - Ceil(±0) = 0
//   - Ceil(±Inf) = ±Inf
//   - Ceil(NaN) = NaN
func Ceil(x float64) float64 {
	if x != x || stdmath.IsInf(x, 0) {
		return x
	}
	r := Fmod(x, 1)
	if x >= 0 && r != 0 {
		return x - r + 1
	}
	return x - r
}
