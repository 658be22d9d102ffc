// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package klondike

import (
	"errors"
	"fmt"
)

// validate.go checks the one invariant every mutator must preserve:
// the 52 cards are partitioned across foundations/stock/waste/tableaus
// with no card missing or duplicated.

// ErrInvalidState wraps every invariant violation Validate reports.
var ErrInvalidState = errors.New("klondike: invalid state")

// Validate reports the first invariant violation found in s, or nil.
func Validate(s *State) error {
	var seen [NumCards]bool
	mark := func(c Card) error {
		if c == NoCard {
			return nil
		}
		idx := c.Index()
		if seen[idx] {
			return fmt.Errorf("%w: card %s appears more than once", ErrInvalidState, c)
		}
		seen[idx] = true
		return nil
	}

	// Foundations only expose their current top card per suit, so
	// marking from s.Foundations would lose every promoted card that
	// has since been buried under a higher one. FoundationMask is the
	// union of every card ever promoted (state.go's promote maintains
	// it for exactly this reason), so mark from that instead.
	for idx := 0; idx < NumCards; idx++ {
		if s.FoundationMask&(1<<uint(idx)) != 0 {
			if err := mark(Card(idx)); err != nil {
				return err
			}
		}
	}
	for i := 0; i < int(s.StockN); i++ {
		if err := mark(s.Stock[i]); err != nil {
			return err
		}
	}
	for i := 0; i < int(s.WasteN); i++ {
		if err := mark(s.Waste[i]); err != nil {
			return err
		}
	}
	for ti := range s.Tableaus {
		t := &s.Tableaus[ti]
		for i := 0; i < int(t.N); i++ {
			if err := mark(t.Cards[i]); err != nil {
				return err
			}
		}
	}

	for idx, present := range seen {
		if !present {
			return fmt.Errorf("%w: card index %d missing", ErrInvalidState, idx)
		}
	}
	return nil
}

// MustValidate panics on the first invariant violation found in s. Its
// only caller is checkInvariants below, which Apply runs after every
// move, so that the cost of walking every zone is paid only in debug
// builds.
func MustValidate(s *State) {
	if err := Validate(s); err != nil {
		panic(err)
	}
}

// checkInvariants is a no-op in ordinary builds; the debug build tag
// file in this package rebinds it to MustValidate, the same
// func-var-plus-build-tag shape the teacher uses for its logging hook.
var checkInvariants = func(s *State) {}
