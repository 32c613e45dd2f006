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
	"context"
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-elementary/contrib/workerpool"
	"github.com/ajroetker/go-elementary/internal/config"
	"github.com/ajroetker/go-elementary/internal/logging"
	"github.com/ajroetker/go-elementary/math"
)

// DefaultParallelMin is the slice length below which an Evaluator stays on
// the calling goroutine.
const DefaultParallelMin = 4096

// chunksPerWorker sets how finely TransformContext splits its input, so a
// cancellation is noticed after roughly 1/chunksPerWorker of the work.
const chunksPerWorker = 4

// Options configure an Evaluator.
type Options struct {
	// Workers is the pool size; 0 means GOMAXPROCS.
	Workers int

	// ParallelMin is the slice length at which work fans out to the pool.
	ParallelMin int

	// Sequential disables the pool entirely.
	Sequential bool

	// Logger receives evaluator events and, between NewEvaluator and Close,
	// the series diagnostics of package math. The math logger is process
	// wide; Close puts back the one that was installed before. Nil leaves
	// both untouched and evaluator events silent.
	Logger *zap.Logger
}

// DefaultOptions returns Options for a GOMAXPROCS pool with no logging.
func DefaultOptions() Options {
	return Options{ParallelMin: DefaultParallelMin}
}

// LoadOptions reads Options from the ELEM_* environment variables:
// ELEM_NO_PARALLEL, ELEM_WORKERS, ELEM_PARALLEL_MIN, ELEM_LOG_LEVEL and
// ELEM_LOG_DEV.
func LoadOptions() (Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return Options{}, err
	}
	logger, err := logging.New(cfg.Logging())
	if err != nil {
		return Options{}, fmt.Errorf("algo: building logger: %w", err)
	}
	return Options{
		Workers:     cfg.Workers,
		ParallelMin: cfg.ParallelMin,
		Sequential:  cfg.NoParallel,
		Logger:      logger,
	}, nil
}

// Evaluator applies functions over slices, in parallel when they are long
// enough. A nil *Evaluator is valid and evaluates sequentially.
type Evaluator struct {
	pool        *workerpool.Pool
	parallelMin int
	logger      *zap.Logger

	// restore is the math logger replaced by NewEvaluator, nil if none was.
	restore   *zap.Logger
	closeOnce sync.Once
}

// NewEvaluator starts an Evaluator. Call Close to stop its workers.
func NewEvaluator(opts Options) *Evaluator {
	e := &Evaluator{parallelMin: max(opts.ParallelMin, 1), logger: opts.Logger}
	if e.logger == nil {
		e.logger = zap.NewNop()
	} else {
		e.restore = math.SetLogger(e.logger)
	}
	if !opts.Sequential {
		e.pool = workerpool.New(opts.Workers)
	}
	e.logger.Debug("evaluator started",
		zap.Int("workers", e.Workers()),
		zap.Int("parallel_min", e.parallelMin))
	return e
}

// Workers returns the number of goroutines work is split across, 1 when
// sequential.
func (e *Evaluator) Workers() int {
	if e == nil || e.pool == nil {
		return 1
	}
	return e.pool.NumWorkers()
}

// Close stops the worker pool and reinstates the math logger that
// NewEvaluator replaced. Later calls run sequentially; repeated calls are
// no-ops.
func (e *Evaluator) Close() {
	if e == nil {
		return
	}
	e.closeOnce.Do(func() {
		if e.pool != nil {
			e.pool.Close()
		}
		if e.restore != nil {
			math.SetLogger(e.restore)
		}
	})
}

func (e *Evaluator) parallel(n int) bool {
	return e != nil && e.pool != nil && n >= e.parallelMin
}

func elemSize[T Floats]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// ParallelTransform is Transform split across e's workers.
func ParallelTransform[T Floats](e *Evaluator, input, output []T, fn ScalarFunc) error {
	if len(output) < len(input) {
		return fmt.Errorf("%w: len(output) = %d < len(input) = %d", ErrLengthMismatch, len(output), len(input))
	}
	if !e.parallel(len(input)) {
		apply(input, output, fn)
		return nil
	}
	e.pool.ParallelForAligned(len(input), elemSize[T](), func(start, end int) {
		apply(input[start:end], output[start:end], fn)
	})
	return nil
}

// ParallelTransform2 is Transform2 split across e's workers.
func ParallelTransform2[T Floats](e *Evaluator, a, b, output []T, fn BinaryFunc) error {
	if err := checkBinary(len(a), len(b), len(output)); err != nil {
		return err
	}
	if !e.parallel(len(a)) {
		apply2(a, b, output, fn)
		return nil
	}
	e.pool.ParallelForAligned(len(a), elemSize[T](), func(start, end int) {
		apply2(a[start:end], b[start:end], output[start:end], fn)
	})
	return nil
}

// TransformContext is ParallelTransform that stops scheduling chunks once
// ctx is done and then returns ctx.Err(). Chunks already running finish, so
// on cancellation output is partially written.
func TransformContext[T Floats](ctx context.Context, e *Evaluator, input, output []T, fn ScalarFunc) error {
	if len(output) < len(input) {
		return fmt.Errorf("%w: len(output) = %d < len(input) = %d", ErrLengthMismatch, len(output), len(input))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	n := len(input)
	if !e.parallel(n) {
		apply(input, output, fn)
		return nil
	}

	workers := e.Workers()
	align := max(workerpool.CacheLineSize/elemSize[T](), 1)
	chunk := (n + workers*chunksPerWorker - 1) / (workers * chunksPerWorker)
	chunk = (chunk + align - 1) / align * align

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		if gctx.Err() != nil {
			break
		}
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			apply(input[start:end], output[start:end], fn)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Debug("bulk transform cancelled", zap.Int("n", n), zap.Error(err))
		return err
	}
	if err := ctx.Err(); err != nil {
		e.logger.Debug("bulk transform cancelled", zap.Int("n", n), zap.Error(err))
		return err
	}
	return nil
}

// Apply evaluates the unary function registered as name over input.
func (e *Evaluator) Apply(name string, input, output []float64) error {
	fn, err := Lookup(name)
	if err != nil {
		return err
	}
	return ParallelTransform(e, input, output, fn)
}

// Apply2 evaluates the binary function registered as name over a and b.
func (e *Evaluator) Apply2(name string, a, b, output []float64) error {
	fn, err := LookupBinary(name)
	if err != nil {
		return err
	}
	return ParallelTransform2(e, a, b, output, fn)
}

// ApplyContext is Apply with cancellation, see TransformContext.
func (e *Evaluator) ApplyContext(ctx context.Context, name string, input, output []float64) error {
	fn, err := Lookup(name)
	if err != nil {
		return err
	}
	return TransformContext(ctx, e, input, output, fn)
}
