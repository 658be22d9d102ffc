// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package search drives the best-first graph search over the Klondike
// state space: a container/heap frontier ordered by foundation score,
// a hash-based visited set for duplicate collapsing, and a
// parent-pointer trail for reconstructing the winning move sequence.
// The design is grounded on the two standalone solver sketches in the
// retrieved example pack (a Klotski A* solver and a card-game solver
// built the same way), not on the teacher, which never implements a
// search algorithm of its own.
package search

import (
	"container/heap"
	"log/slog"
	"time"

	"github.com/ArthurKValladares/Solitaire-Solvability/internal/klondike"
)

// Status is the search's verdict for a seed.
type Status int

const (
	StatusUnknown Status = iota
	StatusSolved
	StatusUnsolvable
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	default:
		return "unknown"
	}
}

// Outcome summarizes one Solve call.
type Outcome struct {
	Status            Status
	Seed              uint32
	Moves             []klondike.Move
	StatesVisited     int
	FrontierRemaining int
	DuplicatesCulled  int
	DeadEnds          int
}

// Options controls one search run.
type Options struct {
	Budget     time.Duration
	Aggressive bool
	Verbose    bool
}

// Solver runs independent searches; it holds no state between Solve
// calls, so the same Solver (or distinct ones, each with its own
// frontier and visited set) may be driven from multiple goroutines.
type Solver struct {
	opts   Options
	logger *slog.Logger
}

// New builds a Solver with the given options, logging through the
// default slog logger (overridden process-wide by the debug build, the
// same hook the teacher's own main.go installs).
func New(opts Options) *Solver {
	return &Solver{opts: opts, logger: slog.Default()}
}

// frontier entries; seq breaks ties among equal scores in LIFO order
// (the most recently discovered state at a given score expands next),
// matching the depth-first bias a plain stack gives a backtracking
// solver while keeping the overall search best-first on score.
type item struct {
	state klondike.State
	hash  uint64
	score int
	depth int
	seq   int
	index int
}

type priorityQueue []*item

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score > pq[j].score
	}
	return pq[i].seq > pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
func (pq *priorityQueue) Push(x any) {
	it := x.(*item)
	it.index = len(*pq)
	*pq = append(*pq, it)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]
	return it
}

// parentEdge records the move that first reached a state, so the
// winning path can be walked backward once a win is found. This
// replaces the depth-diff move-stack the original prototype's own
// solver left as an unfinished TODO: that technique only works for
// strict depth-first traversal, and this search is best-first.
type parentEdge struct {
	parentHash uint64
	move       klondike.Move
}

// Solve searches for a winning line from the deal for seed. It
// returns StatusUnknown if the wall-clock budget expires first.
func (sv *Solver) Solve(seed uint32) Outcome {
	return sv.solve(klondike.Deal(seed), seed)
}

// solve runs the search from an arbitrary start state, seed carried
// through only for logging and the returned Outcome. Split out from
// Solve so tests can drive the search from hand-built positions
// without depending on any particular seed's deal being solvable.
func (sv *Solver) solve(start klondike.State, seed uint32) Outcome {
	startFP := klondike.Canonicalize(&start)
	startHash := startFP.Hash()

	deadline := time.Now().Add(sv.opts.Budget)

	visited := map[uint64]struct{}{startHash: {}}
	parents := make(map[uint64]parentEdge)

	var pq priorityQueue
	heap.Init(&pq)
	heap.Push(&pq, &item{state: start, hash: startHash, score: start.Score(), depth: 0, seq: 0})

	var statesVisited, duplicates, deadEnds, seq int

	expand := func(u *item, aggressive bool) int {
		added := 0
		for _, m := range klondike.Generate(&u.state, aggressive) {
			v := klondike.Apply(u.state, m)
			fp := klondike.Canonicalize(&v)
			hash := fp.Hash()
			if _, seen := visited[hash]; seen {
				duplicates++
				continue
			}
			visited[hash] = struct{}{}
			parents[hash] = parentEdge{parentHash: u.hash, move: m}
			seq++
			heap.Push(&pq, &item{state: v, hash: hash, score: v.Score(), depth: u.depth + 1, seq: seq})
			added++
		}
		return added
	}

	for pq.Len() > 0 {
		if time.Now().After(deadline) {
			sv.logger.Info("klondike: search budget exhausted", "seed", seed, "states", statesVisited)
			return Outcome{
				Status:            StatusUnknown,
				Seed:              seed,
				StatesVisited:     statesVisited,
				FrontierRemaining: pq.Len(),
				DuplicatesCulled:  duplicates,
				DeadEnds:          deadEnds,
			}
		}

		u := heap.Pop(&pq).(*item)
		statesVisited++
		if sv.opts.Verbose && statesVisited%1000 == 0 {
			sv.logger.Debug("klondike: search progress", "seed", seed, "states", statesVisited, "score", u.score, "frontier", pq.Len())
		}

		if u.state.Won() {
			sv.logger.Info("klondike: solved", "seed", seed, "states", statesVisited, "moves", u.depth)
			return Outcome{
				Status:            StatusSolved,
				Seed:              seed,
				Moves:             reconstructPath(parents, u.hash),
				StatesVisited:     statesVisited,
				FrontierRemaining: pq.Len(),
				DuplicatesCulled:  duplicates,
				DeadEnds:          deadEnds,
			}
		}

		added := expand(u, sv.opts.Aggressive)
		if sv.opts.Aggressive && added == 0 {
			// Aggressive pruning is unsound: it can starve a state of
			// every successor it actually needs. Retry without it
			// before writing the state off.
			added = expand(u, false)
		}
		if added == 0 && klondike.IsDeadEnd(&u.state) {
			deadEnds++
		}
	}

	sv.logger.Info("klondike: unsolvable", "seed", seed, "states", statesVisited)
	return Outcome{
		Status:           StatusUnsolvable,
		Seed:             seed,
		StatesVisited:    statesVisited,
		DuplicatesCulled: duplicates,
		DeadEnds:         deadEnds,
	}
}

// reconstructPath walks the parent-edge chain backward from hash to
// the start state and returns the moves in play order.
func reconstructPath(parents map[uint64]parentEdge, hash uint64) []klondike.Move {
	var trail []klondike.Move
	for {
		edge, ok := parents[hash]
		if !ok {
			break
		}
		trail = append(trail, edge.move)
		hash = edge.parentHash
	}
	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}
	return trail
}
