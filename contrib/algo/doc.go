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

// Package algo applies the elementary functions of package math to whole
// slices.
//
// # Transform API
//
// The generic transforms work on any float32 or float64 slice type and
// evaluate in float64:
//   - Transform(input, output, fn)
//   - Transform2(a, b, output, fn)
//
// Named transforms cover every function in package math:
//   - ExpTransform, LogTransform, SqrtTransform
//   - SinTransform, CosTransform, TanTransform
//   - AsinTransform, AcosTransform, AtanTransform
//   - FabsTransform, FloorTransform, CeilTransform
//   - PowTransform, FmodTransform
//
// Functions can also be resolved by name with Lookup and LookupBinary.
//
// # Parallel evaluation
//
// An Evaluator owns a workerpool.Pool and splits large slices across it on
// cache-line boundaries. Slices shorter than Options.ParallelMin stay on the
// calling goroutine. TransformContext and ApplyContext stop handing out
// chunks once their context is done.
//
//	opts, err := algo.LoadOptions() // reads ELEM_* variables
//	if err != nil {
//	    return err
//	}
//	e := algo.NewEvaluator(opts)
//	defer e.Close()
//
//	if err := algo.ParallelTransform(e, input, output, math.Exp); err != nil {
//	    return err
//	}
package algo
