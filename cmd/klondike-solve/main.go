// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Command klondike-solve runs the solvability search against one or
// more 32-bit deal seeds and writes a yaml result record per seed. It
// is a thin driver of internal/search, not the batch win-rate harness
// that remains an external collaborator.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ArthurKValladares/Solitaire-Solvability/internal/config"
	"github.com/ArthurKValladares/Solitaire-Solvability/internal/search"
)

// setLogging installs the default handler. The debug build (see
// main_debug.go) rebinds this to a more verbose one, the same
// func-var-plus-build-tag shape the teacher's own main.go uses.
var setLogging = func() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

func main() {
	setLogging()

	seedsFlag := flag.String("seeds", "0", "comma-separated list of 32-bit deal seeds")
	budget := flag.Duration("budget", 30*time.Second, "wall-clock search budget per seed")
	aggressive := flag.Bool("aggressive", true, "enable the aggressive foundation-first pruning heuristic (unsound: it can hide wins; a state it leaves with no new successor is re-expanded without it)")
	verbose := flag.Bool("verbose", false, "log per-1000-state search progress and raise the log level to debug")
	out := flag.String("out", "", "yaml result file prefix (stdout if empty); multi-seed runs get one file per seed")
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	seeds, err := parseSeeds(*seedsFlag)
	if err != nil {
		slog.Error("klondike: invalid -seeds", "err", err)
		os.Exit(1)
	}

	opts := search.Options{Budget: *budget, Aggressive: *aggressive, Verbose: *verbose}

	if len(seeds) == 1 {
		runOne(seeds[0], opts, *out)
		return
	}
	runMany(seeds, opts, *out)
}

func parseSeeds(s string) ([]uint32, error) {
	var seeds []uint32
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", field, err)
		}
		seeds = append(seeds, uint32(v))
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds given")
	}
	return seeds, nil
}

func runOne(seed uint32, opts search.Options, out string) {
	result := solveOne(seed, opts)
	writeResult(result, out)
}

// runMany fans independent solvers out across goroutines: spec.md's
// concurrency model has no shared mutable state between solver
// instances, so each goroutine owns its own search.Solver.
func runMany(seeds []uint32, opts search.Options, out string) {
	results := make([]config.Result, len(seeds))
	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func(i int, seed uint32) {
			defer wg.Done()
			results[i] = solveOne(seed, opts)
		}(i, seed)
	}
	wg.Wait()

	for _, r := range results {
		writeResult(r, out)
	}
}

func solveOne(seed uint32, opts search.Options) config.Result {
	sv := search.New(opts)
	start := time.Now()
	outcome := sv.Solve(seed)
	elapsed := time.Since(start)

	moves := make([]string, len(outcome.Moves))
	for i, m := range outcome.Moves {
		moves[i] = m.String()
	}
	return config.Result{
		Seed:             seed,
		Status:           outcome.Status.String(),
		Moves:            moves,
		StatesVisited:    outcome.StatesVisited,
		DuplicatesCulled: outcome.DuplicatesCulled,
		DeadEnds:         outcome.DeadEnds,
		ElapsedMillis:    elapsed.Milliseconds(),
	}
}

func writeResult(r config.Result, outPrefix string) {
	if outPrefix == "" {
		data, err := yaml.Marshal(r)
		if err != nil {
			slog.Error("klondike: marshal result", "seed", r.Seed, "err", err)
			return
		}
		fmt.Print(string(data))
		return
	}
	path := fmt.Sprintf("%s-%d.yaml", outPrefix, r.Seed)
	if err := config.PersistResult(path, r); err != nil {
		slog.Error("klondike: write result", "path", path, "err", err)
	}
}
