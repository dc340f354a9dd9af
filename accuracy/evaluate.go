// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accuracy

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/unixpickle/num-analysis/kahan"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/floats"

	"github.com/pointlander/compensated"
	"github.com/pointlander/compensated/f64"
)

// Algorithm is a named dot product implementation
type Algorithm struct {
	Name string
	Dot  func(x, y []float64) float64
}

// Algorithms returns the dot products compared by Evaluate
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "naive", Dot: compensated.NaiveDot[float64]},
		{Name: "compensated", Dot: compensated.Dot[float64]},
		{Name: "blas", Dot: f64.Dot},
		{Name: "gonum", Dot: gonumDot},
		{Name: "kahan", Dot: kahanDot},
	}
}

func kahanDot(x, y []float64) float64 {
	x, y = shared(x, y)
	s := kahan.NewSummer64()
	for i, v := range x {
		s.Add(float64(v * y[i]))
	}
	return s.Sum()
}

func gonumDot(x, y []float64) float64 {
	x, y = shared(x, y)
	return floats.Dot(x, y)
}

// FMA reports whether the CPU has fused multiply-add instructions, which
// the compiler may use to contract x*y+z
func FMA() bool {
	switch runtime.GOARCH {
	case "arm64", "ppc64", "ppc64le", "riscv64", "s390x":
		return true
	}
	return cpu.X86.HasFMA
}

// Measurement is the error of one algorithm on one case
type Measurement struct {
	Algorithm     string
	Value         float64
	AbsError      float64
	RelativeError float64
	Bits          float64
}

// Result is the outcome of evaluating one case
type Result struct {
	Name         string
	Condition    float64
	Bound        float64
	Measurements []Measurement
}

// Measurement returns the measurement for the named algorithm
func (r *Result) Measurement(algorithm string) (Measurement, bool) {
	for _, m := range r.Measurements {
		if m.Algorithm == algorithm {
			return m, true
		}
	}
	return Measurement{}, false
}

type options struct {
	logger      *slog.Logger
	concurrency int
	algorithms  []Algorithm
}

// Option configures Evaluate
type Option func(*options)

// WithLogger sets the logger, the default discards everything
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency sets how many cases are evaluated at once, the default is
// GOMAXPROCS
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithAlgorithms replaces the algorithms returned by Algorithms
func WithAlgorithms(algorithms ...Algorithm) Option {
	return func(o *options) {
		if len(algorithms) > 0 {
			o.algorithms = algorithms
		}
	}
}

// Evaluate runs every algorithm on every case and measures it against the
// exact dot product. Results are in the order of cases.
func Evaluate(ctx context.Context, cases []Case, opts ...Option) ([]Result, error) {
	o := options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: runtime.GOMAXPROCS(0),
		algorithms:  Algorithms(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := range cases {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = evaluate(&cases[i], o.algorithms)
			for _, m := range results[i].Measurements {
				o.logger.Debug("measured",
					"case", cases[i].Name,
					"algorithm", m.Algorithm,
					"relative_error", m.RelativeError,
					"bits", m.Bits,
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	attrs := []any{"cases", len(cases), "fma", FMA()}
	for _, algorithm := range o.algorithms {
		var worst, bits float64
		for i := range results {
			m, _ := results[i].Measurement(algorithm.Name)
			if m.RelativeError > worst {
				worst = m.RelativeError
			}
			bits += m.Bits
		}
		if len(results) > 0 {
			bits /= float64(len(results))
		}
		attrs = append(attrs, slog.Group(algorithm.Name,
			"worst_relative_error", worst,
			"mean_bits", bits,
		))
	}
	o.logger.Info("evaluated", attrs...)
	return results, nil
}

func evaluate(c *Case, algorithms []Algorithm) Result {
	exact := Exact(c.X, c.Y)
	result := Result{
		Name:         c.Name,
		Condition:    c.Condition,
		Bound:        ErrorBound(c.X, c.Y),
		Measurements: make([]Measurement, 0, len(algorithms)),
	}
	for _, algorithm := range algorithms {
		value := algorithm.Dot(c.X, c.Y)
		result.Measurements = append(result.Measurements, Measurement{
			Algorithm:     algorithm.Name,
			Value:         value,
			AbsError:      AbsError(value, exact),
			RelativeError: RelativeError(value, exact),
			Bits:          Bits(value, exact),
		})
	}
	return result
}
