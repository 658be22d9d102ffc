// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package klondike

// movegen.go enumerates the legal moves out of a State. Generate never
// mutates s; it only reads the derived FirstUnlocked caches mutate.go
// and recomputeFirstUnlocked keep current.

// Generate returns every legal move out of s. When aggressive is true,
// it applies the spec's aggressive-pruning heuristic: if any move
// would place a card on a foundation, every other move is discarded in
// favor of it. This mirrors the common "always auto-play to
// foundation" shortcut real solvers use to cut branching, and it is
// unsound in the same way that shortcut always is: there exist
// positions where holding a card back from the foundation a little
// longer is the only path to a win, so a caller whose aggressive
// search dead-ends is expected to retry the same state with
// aggressive=false before giving up on it.
func Generate(s *State, aggressive bool) []Move {
	var moves []Move

	if s.StockN > 0 {
		moves = append(moves, Move{Kind: DrawStock})
	} else if s.WasteN > 0 {
		moves = append(moves, Move{Kind: Restock})
	}

	if card := s.WasteTop(); card != NoCard {
		if placeableOnFoundation(s.Foundations[card.Suit()], card) {
			moves = append(moves, Move{Kind: WasteToFoundation})
		}
		for col := range s.Tableaus {
			if canReceive(&s.Tableaus[col], card) {
				moves = append(moves, Move{Kind: WasteToTableau, To: Position{Kind: PosTableau, Index: uint8(col)}})
			}
		}
	}

	for col := range s.Tableaus {
		t := &s.Tableaus[col]
		card := t.Top()
		if card != NoCard && card.FaceUp() && placeableOnFoundation(s.Foundations[card.Suit()], card) {
			moves = append(moves, Move{Kind: TableauToFoundation, From: Position{Kind: PosTableau, Index: uint8(col)}})
		}
	}

	moves = append(moves, tableauToTableauMoves(s)...)

	if aggressive {
		var promotions []Move
		for _, m := range moves {
			if m.Kind == WasteToFoundation || m.Kind == TableauToFoundation {
				promotions = append(promotions, m)
			}
		}
		if len(promotions) > 0 {
			return promotions
		}
	}

	return moves
}

// canReceive reports whether card may be placed atop tableau t.
func canReceive(t *Tableau, card Card) bool {
	top := t.Top()
	if top == NoCard {
		return card.IsKing()
	}
	return placeableOnTableau(top, card)
}

// tableauToTableauMoves enumerates every (src, depth, dst) run move.
// A run is any suffix of the face-up movable sequence starting at
// FirstUnlocked; every such suffix is itself a valid alternating,
// descending sequence, so every depth from 1 up to the full run length
// is a candidate move.
//
// A partial split (depth less than the full run) is only generated
// when it immediately exposes a card the foundation can accept next:
// otherwise the move is dominated by either not splitting at all or by
// splitting at the point that does expose such a card, so skipping it
// shrinks the branching factor without losing reachability.
func tableauToTableauMoves(s *State) []Move {
	var moves []Move
	for src := range s.Tableaus {
		from := &s.Tableaus[src]
		if from.N == 0 || from.FirstUnlocked == Sentinel {
			continue
		}
		maxDepth := from.N - from.FirstUnlocked
		for depth := uint8(1); depth <= maxDepth; depth++ {
			bottomOfRun := from.Cards[from.N-depth]
			if depth < maxDepth {
				exposed := from.Cards[from.N-depth-1]
				if !exposed.FaceUp() || !placeableOnFoundation(s.Foundations[exposed.Suit()], exposed) {
					continue
				}
			}
			for dst := range s.Tableaus {
				if dst == src {
					continue
				}
				if !canReceive(&s.Tableaus[dst], bottomOfRun) {
					continue
				}
				moves = append(moves, Move{
					Kind: TableauToTableau,
					From: Position{Kind: PosTableau, Index: uint8(src), Depth: depth},
					To:   Position{Kind: PosTableau, Index: uint8(dst)},
				})
			}
		}
	}
	return moves
}

// IsDeadEnd reports whether s is a dead state: the stock is exhausted,
// the waste holds cards that have nowhere productive to go, and the
// only move the generator offers is the unproductive restock cycle. A
// state with an empty stock and no legal move at all is dead too. A
// state that can still draw from a non-empty stock is not dead, even
// if drawing is its only move, since drawing can still expose a
// playable card.
func IsDeadEnd(s *State) bool {
	if s.StockN != 0 {
		return false
	}
	for _, m := range Generate(s, false) {
		if m.Kind != Restock {
			return false
		}
	}
	return true
}
