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
	"slices"

	"github.com/ajroetker/go-elementary/math"
)

// ErrUnknownFunction is returned by Lookup and LookupBinary for names they do
// not know.
var ErrUnknownFunction = errors.New("algo: unknown function")

var unary = map[string]ScalarFunc{
	"exp":   math.Exp,
	"log":   math.Log,
	"sqrt":  math.Sqrt,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"fabs":  math.Fabs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

var binary = map[string]BinaryFunc{
	"pow":  math.Pow,
	"fmod": math.Fmod,
}

// Lookup returns the unary function registered under name, e.g. "sin".
func Lookup(name string) (ScalarFunc, error) {
	if fn, ok := unary[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// LookupBinary returns the two-argument function registered under name,
// "pow" or "fmod".
func LookupBinary(name string) (BinaryFunc, error) {
	if fn, ok := binary[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// Names returns every registered name, unary and binary, in sorted order.
func Names() []string {
	names := make([]string, 0, len(unary)+len(binary))
	for name := range unary {
		names = append(names, name)
	}
	for name := range binary {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
