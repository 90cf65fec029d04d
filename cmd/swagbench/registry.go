// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"pgregory.net/rand"

	"code.hybscloud.com/swag"
)

// pairKey identifies one supported (algorithm, function) pair.
func pairKey(algorithm, function string) string {
	return algorithm + "/" + function
}

// runner drives one (algorithm, function) pair over a fixed-size window for
// the given number of push/pop/query cycles, returning the elapsed time.
// Each cycle pushes one fresh value, queries, then pops one value, keeping
// the window size constant after the initial fill.
type runner func(windowSize, iterations int, rng *rand.Rand) time.Duration

func runSumLike(newWindow func() (swag.FifoWindow[int, int], error)) runner {
	return func(windowSize, iterations int, rng *rand.Rand) time.Duration {
		w, err := newWindow()
		if err != nil {
			panic(err)
		}
		for range windowSize {
			w.Push(int(rng.Int63n(1000)))
		}
		start := time.Now()
		for range iterations {
			w.Push(int(rng.Int63n(1000)))
			w.Query()
			w.Pop()
		}
		return time.Since(start)
	}
}

func runMeanLike(newWindow func() (swag.FifoWindow[int, float64], error)) runner {
	return func(windowSize, iterations int, rng *rand.Rand) time.Duration {
		w, err := newWindow()
		if err != nil {
			panic(err)
		}
		for range windowSize {
			w.Push(int(rng.Int63n(1000)))
		}
		start := time.Now()
		for range iterations {
			w.Push(int(rng.Int63n(1000)))
			w.Query()
			w.Pop()
		}
		return time.Since(start)
	}
}

// registry enumerates every supported (algorithm, function) pair, matching
// SPEC_FULL.md §6 exactly: recalc/two_stacks/two_stacks_lite/reactive over
// {sum,max,mean}, soe over {sum,mean}, flatfit over {sum,max,mean}.
var registry = buildRegistry()

func buildRegistry() map[string]runner {
	r := make(map[string]runner)

	monoidSum := func(name string) func() (swag.FifoWindow[int, int], error) {
		return func() (swag.FifoWindow[int, int], error) {
			return swag.NewMonoid(name, swag.SumOp[int]())
		}
	}
	monoidMax := func(name string) func() (swag.FifoWindow[int, int], error) {
		return func() (swag.FifoWindow[int, int], error) {
			return swag.NewMonoid(name, swag.MaxOp[int]())
		}
	}
	monoidMean := func(name string) func() (swag.FifoWindow[int, float64], error) {
		return func() (swag.FifoWindow[int, float64], error) {
			return swag.NewMonoid(name, swag.MeanOp[int, float64]())
		}
	}

	for _, name := range []string{"recalc", "two_stacks", "two_stacks_lite", "reactive", "flatfit"} {
		r[pairKey(name, "sum")] = runSumLike(monoidSum(name))
		r[pairKey(name, "max")] = runSumLike(monoidMax(name))
		r[pairKey(name, "mean")] = runMeanLike(monoidMean(name))
	}

	r[pairKey("soe", "sum")] = runSumLike(func() (swag.FifoWindow[int, int], error) {
		return swag.NewGroup("soe", swag.SumGroupOp[int]())
	})
	r[pairKey("soe", "mean")] = runMeanLike(func() (swag.FifoWindow[int, float64], error) {
		return swag.NewGroup("soe", swag.MeanGroupOp[int, float64]())
	})

	return r
}

// validPairs returns every supported "algorithm/function" key, in map
// iteration order (unsorted).
func validPairs() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	return keys
}
