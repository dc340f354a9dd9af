// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testutil provides reproducible random vectors for tests.
package testutil

import (
	"math/rand"
	"os"
	"strconv"
)

// DefaultSeed is the seed used when SeedEnv is not set
const DefaultSeed int64 = 98712983

// SeedEnv overrides DefaultSeed so that a failing run can be replayed
const SeedEnv = "COMPENSATED_SEED"

// Seed returns the seed for this test run
func Seed() int64 {
	if value, ok := os.LookupEnv(SeedEnv); ok {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return DefaultSeed
}

// RNG is a seeded random source. It is not safe for concurrent use.
type RNG struct {
	*rand.Rand
	seed int64
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed int64) *RNG {
	return &RNG{
		Rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with
func (r *RNG) Seed() int64 {
	return r.seed
}

// Range returns a number uniformly distributed in [lo, hi)
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Uniform returns n numbers uniformly distributed in [lo, hi)
func (r *RNG) Uniform(n int, lo, hi float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = r.Range(lo, hi)
	}
	return v
}

// Uniform32 returns n float32 numbers uniformly distributed in [lo, hi)
func (r *RNG) Uniform32(n int, lo, hi float32) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = lo + (hi-lo)*r.Float32()
	}
	return v
}
