// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"pgregory.net/rand"
)

func main() {
	app := &cli.App{
		Name:      "swagbench",
		Usage:     "Benchmark sliding-window aggregation algorithms",
		ArgsUsage: "<algorithm> <function> <window_size> <iterations>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "latency",
				Usage: "report mean nanoseconds per cycle instead of aggregate throughput",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "seed for the random number generator",
				Value: 1,
			},
		},
		Action: doBench,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func doBench(context *cli.Context) error {
	if context.Args().Len() < 4 {
		return fmt.Errorf("usage: swagbench <algorithm> <function> <window_size> <iterations>")
	}

	algorithm := context.Args().Get(0)
	function := context.Args().Get(1)
	windowSize, err := parsePositiveInt(context.Args().Get(2))
	if err != nil {
		return fmt.Errorf("window_size: %w", err)
	}
	iterations, err := parsePositiveInt(context.Args().Get(3))
	if err != nil {
		return fmt.Errorf("iterations: %w", err)
	}

	run, ok := registry[pairKey(algorithm, function)]
	if !ok {
		return fmt.Errorf("unrecognized (algorithm, function) pair %q: use one of %v", pairKey(algorithm, function), maps.Keys(registry))
	}

	rng := rand.New(context.Uint64("seed"))
	elapsed := run(windowSize, iterations, rng)

	if context.Bool("latency") {
		nsPerCycle := float64(elapsed.Nanoseconds()) / float64(iterations)
		fmt.Printf("%s/%s window=%d: %.1f ns/cycle\n", algorithm, function, windowSize, nsPerCycle)
		return nil
	}

	rate := float64(iterations) / elapsed.Seconds()
	fmt.Printf("%s/%s window=%d: %s cycles/s (%d cycles in %s)\n",
		algorithm, function, windowSize, unitconv.FormatPrefix(rate, unitconv.SI, 0), iterations, elapsed)
	return nil
}

func parsePositiveInt(s string) (int, error) {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive: %d", v)
	}
	return v, nil
}
