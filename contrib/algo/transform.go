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

package algo

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-elementary/math"
)

// Floats is the set of element types accepted by the transforms.
type Floats interface {
	~float32 | ~float64
}

type (
	// ScalarFunc is a unary function evaluated in float64.
	ScalarFunc func(float64) float64

	// BinaryFunc is a two-argument function evaluated in float64.
	BinaryFunc func(x, y float64) float64
)

// ErrLengthMismatch is returned when an output or second operand is shorter
// than the input.
var ErrLengthMismatch = errors.New("algo: slice length mismatch")

// Transform sets output[i] = fn(input[i]) for every element of input.
// Elements are widened to float64 and the result narrowed back to T.
//
// Example usage:
//
//	Transform(input, output, func(x float64) float64 { return x*x + x })
func Transform[T Floats](input, output []T, fn ScalarFunc) error {
	if len(output) < len(input) {
		return fmt.Errorf("%w: len(output) = %d < len(input) = %d", ErrLengthMismatch, len(output), len(input))
	}
	apply(input, output, fn)
	return nil
}

// Transform2 sets output[i] = fn(a[i], b[i]) for every element of a.
func Transform2[T Floats](a, b, output []T, fn BinaryFunc) error {
	if err := checkBinary(len(a), len(b), len(output)); err != nil {
		return err
	}
	apply2(a, b, output, fn)
	return nil
}

func checkBinary(na, nb, nout int) error {
	switch {
	case nb < na:
		return fmt.Errorf("%w: len(b) = %d < len(a) = %d", ErrLengthMismatch, nb, na)
	case nout < na:
		return fmt.Errorf("%w: len(output) = %d < len(a) = %d", ErrLengthMismatch, nout, na)
	}
	return nil
}

func apply[T Floats](input, output []T, fn ScalarFunc) {
	output = output[:len(input)]
	for i, x := range input {
		output[i] = T(fn(float64(x)))
	}
}

func apply2[T Floats](a, b, output []T, fn BinaryFunc) {
	b, output = b[:len(a)], output[:len(a)]
	for i, x := range a {
		output[i] = T(fn(float64(x), float64(b[i])))
	}
}

// ExpTransform applies e^x to each element.
func ExpTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Exp)
}

// LogTransform applies ln(x) to each element.
func LogTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Log)
}

// SqrtTransform applies sqrt(x) to each element.
func SqrtTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Sqrt)
}

// SinTransform applies sin(x) to each element.
func SinTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Sin)
}

// CosTransform applies cos(x) to each element.
func CosTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Cos)
}

// TanTransform applies tan(x) to each element.
func TanTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Tan)
}

// AsinTransform applies asin(x) to each element.
func AsinTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Asin)
}

// AcosTransform applies acos(x) to each element.
func AcosTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Acos)
}

// AtanTransform applies atan(x) to each element.
func AtanTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Atan)
}

// FabsTransform applies |x| to each element.
func FabsTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Fabs)
}

// FloorTransform rounds each element toward -Inf.
func FloorTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Floor)
}

// CeilTransform rounds each element toward +Inf.
func CeilTransform[T Floats](input, output []T) error {
	return Transform(input, output, math.Ceil)
}

// PowTransform sets output[i] = base[i]^exp[i].
func PowTransform[T Floats](base, exp, output []T) error {
	return Transform2(base, exp, output, math.Pow)
}

// FmodTransform sets output[i] = fmod(x[i], y[i]).
func FmodTransform[T Floats](x, y, output []T) error {
	return Transform2(x, y, output, math.Fmod)
}
