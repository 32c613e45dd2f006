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
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-elementary/internal/config"
	"github.com/ajroetker/go-elementary/math"
)

func newTestEvaluator(t *testing.T, opts Options) *Evaluator {
	t.Helper()
	e := NewEvaluator(opts)
	t.Cleanup(func() {
		e.Close()
		math.SetLogger(nil)
	})
	return e
}

func TestParallelTransform_MatchesSequential(t *testing.T) {
	e := newTestEvaluator(t, Options{Workers: 4, ParallelMin: 64})
	assert.Equal(t, 4, e.Workers())

	for _, n := range []int{0, 1, 63, 64, 1000, 4099} {
		input := ramp(max(n, 2), -8, 8)[:n]
		want := make([]float64, n)
		require.NoError(t, Transform(input, want, math.Sin))

		got := make([]float64, n)
		require.NoError(t, ParallelTransform(e, input, got, math.Sin))
		if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("n=%d: parallel Sin differs (-want +got):\n%s", n, diff)
		}
	}
}

func TestParallelTransform_Float32(t *testing.T) {
	e := newTestEvaluator(t, Options{Workers: 3, ParallelMin: 1})

	input := make([]float32, 777)
	for i := range input {
		input[i] = float32(i) * 0.01
	}
	want := make([]float32, len(input))
	got := make([]float32, len(input))
	require.NoError(t, ExpTransform(input, want))
	require.NoError(t, ParallelTransform(e, input, got, math.Exp))
	assert.Equal(t, want, got)
}

func TestParallelTransform2(t *testing.T) {
	e := newTestEvaluator(t, Options{Workers: 4, ParallelMin: 16})

	base := ramp(500, 0.1, 4)
	exp := ramp(500, -3, 3)
	want := make([]float64, len(base))
	got := make([]float64, len(base))
	require.NoError(t, PowTransform(base, exp, want))
	require.NoError(t, ParallelTransform2(e, base, exp, got, math.Pow))
	assert.Equal(t, want, got)

	assert.ErrorIs(t, ParallelTransform2(e, base, exp[:10], got, math.Pow), ErrLengthMismatch)
}

func TestParallelTransform_LengthMismatch(t *testing.T) {
	e := newTestEvaluator(t, DefaultOptions())
	err := ParallelTransform(e, make([]float64, 5), make([]float64, 4), math.Exp)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	err = TransformContext(context.Background(), e, make([]float64, 5), make([]float64, 4), math.Exp)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEvaluator_SequentialModes(t *testing.T) {
	input := ramp(5000, -1, 1)
	want := make([]float64, len(input))
	require.NoError(t, AsinTransform(input, want))

	closed := NewEvaluator(Options{Workers: 2, ParallelMin: 1})
	closed.Close()

	tests := []struct {
		name        string
		e           *Evaluator
		wantWorkers int
	}{
		{"nil", nil, 1},
		{"sequential", newTestEvaluator(t, Options{Workers: 8, ParallelMin: 1, Sequential: true}), 1},
		{"closed", closed, 2},
		{"below threshold", newTestEvaluator(t, Options{Workers: 2, ParallelMin: 1 << 20}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantWorkers, tt.e.Workers())

			got := make([]float64, len(input))
			require.NoError(t, ParallelTransform(tt.e, input, got, math.Asin))
			assert.Equal(t, want, got)

			got = make([]float64, len(input))
			require.NoError(t, TransformContext(context.Background(), tt.e, input, got, math.Asin))
			assert.Equal(t, want, got)
		})
	}
}

func TestApply(t *testing.T) {
	e := newTestEvaluator(t, Options{Workers: 2, ParallelMin: 8})

	input := ramp(100, 0.5, 50)
	got := make([]float64, len(input))
	require.NoError(t, e.Apply("log", input, got))
	want := make([]float64, len(input))
	require.NoError(t, LogTransform(input, want))
	assert.Equal(t, want, got)

	require.NoError(t, e.ApplyContext(context.Background(), "sqrt", input, got))
	require.NoError(t, SqrtTransform(input, want))
	assert.Equal(t, want, got)

	require.NoError(t, e.Apply2("fmod", input, ramp(100, 1, 3), got))
	require.NoError(t, FmodTransform(input, ramp(100, 1, 3), want))
	assert.Equal(t, want, got)

	assert.ErrorIs(t, e.Apply("gamma", input, got), ErrUnknownFunction)
	assert.ErrorIs(t, e.Apply2("exp", input, input, got), ErrUnknownFunction)
	assert.ErrorIs(t, e.ApplyContext(context.Background(), "pow", input, got), ErrUnknownFunction)
}

func TestTransformContext_Parallel(t *testing.T) {
	e := newTestEvaluator(t, Options{Workers: 4, ParallelMin: 1})

	input := ramp(10000, -30, 30)
	want := make([]float64, len(input))
	got := make([]float64, len(input))
	require.NoError(t, AtanTransform(input, want))
	require.NoError(t, TransformContext(context.Background(), e, input, got, math.Atan))
	assert.Equal(t, want, got)
}

func TestTransformContext_Cancelled(t *testing.T) {
	e := newTestEvaluator(t, Options{Workers: 2, ParallelMin: 1})
	input := ramp(4096, 0, 1)
	output := make([]float64, len(input))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	err := TransformContext(ctx, e, input, output, func(x float64) float64 {
		calls.Add(1)
		return x
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	err = TransformContext(ctx, e, input, output, func(x float64) float64 {
		cancel()
		return x
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewEvaluator_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newTestEvaluator(t, Options{Workers: 3, ParallelMin: 10, Logger: zap.New(core)})

	entries := logs.FilterMessage("evaluator started").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["workers"])
	assert.EqualValues(t, 10, fields["parallel_min"])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, TransformContext(ctx, e, ramp(100, 0, 1), make([]float64, 100), math.Exp))
	assert.Zero(t, logs.FilterMessage("bulk transform cancelled").Len())
}

func TestEvaluator_CloseRestoresMathLogger(t *testing.T) {
	before := zap.NewNop()
	math.SetLogger(before)
	t.Cleanup(func() { math.SetLogger(nil) })

	installed := zap.New(zapcore.NewNopCore())
	e := NewEvaluator(Options{Workers: 2, ParallelMin: 1, Logger: installed})
	assert.Same(t, installed, math.SetLogger(installed))

	e.Close()
	assert.Same(t, before, math.SetLogger(before))

	// A second Close must not reinstate anything again.
	other := zap.NewNop()
	math.SetLogger(other)
	e.Close()
	assert.Same(t, other, math.SetLogger(nil))

	silent := NewEvaluator(Options{Sequential: true})
	math.SetLogger(other)
	silent.Close()
	assert.Same(t, other, math.SetLogger(nil))
}

func TestLoadOptions(t *testing.T) {
	t.Setenv("ELEM_NO_PARALLEL", "true")
	t.Setenv("ELEM_WORKERS", "2")
	t.Setenv("ELEM_PARALLEL_MIN", "16")
	t.Setenv("ELEM_LOG_LEVEL", "warn")
	t.Setenv("ELEM_LOG_DEV", "false")

	opts, err := LoadOptions()
	require.NoError(t, err)
	assert.True(t, opts.Sequential)
	assert.Equal(t, 2, opts.Workers)
	assert.Equal(t, 16, opts.ParallelMin)
	require.NotNil(t, opts.Logger)
	assert.True(t, opts.Logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, opts.Logger.Core().Enabled(zapcore.InfoLevel))

	e := newTestEvaluator(t, opts)
	assert.Equal(t, 1, e.Workers())
}

func TestLoadOptions_Invalid(t *testing.T) {
	t.Setenv("ELEM_WORKERS", "-4")

	_, err := LoadOptions()
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func BenchmarkParallelTransform(b *testing.B) {
	e := NewEvaluator(Options{ParallelMin: 1})
	defer e.Close()

	input := ramp(1<<16, -10, 10)
	output := make([]float64, len(input))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ParallelTransform(e, input, output, math.Sin)
	}
}
