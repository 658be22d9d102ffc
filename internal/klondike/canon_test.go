// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package klondike

import "testing"

func TestCanonicalizeWellFormed(t *testing.T) {
	s := Deal(12345)
	fp := Canonicalize(&s)

	set := 0
	for _, b := range fp {
		if b&0x80 != 0 {
			set++
		}
	}
	// the foundation segment, stock, waste, and each of the 7 tableau
	// columns each mark (or harmlessly re-mark) exactly one byte, so
	// at least the foundation segment's delimiter must always be set.
	if set == 0 {
		t.Fatal("expected at least one segment delimiter bit to be set")
	}
	if fp[NumSuits-1]&0x80 == 0 {
		t.Fatal("foundation segment must always carry its own delimiter bit")
	}
}

func TestCanonicalizeDeterministic(t *testing.T) {
	s := Deal(777)
	a := Canonicalize(&s)
	b := Canonicalize(&s)
	if a != b {
		t.Fatal("Canonicalize must be deterministic for an unchanged state")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("Hash must be deterministic for an identical fingerprint")
	}
}

func TestCanonicalizeCollapsesEmptyColumnSymmetry(t *testing.T) {
	a := emptyState()
	a.Tableaus[0].Cards[0] = NewCard(12, false) // KC alone in column 0
	a.Tableaus[0].N = 1
	a.Tableaus[0].recomputeFirstUnlocked()
	// columns 1..6 all empty

	b := emptyState()
	b.Tableaus[3].Cards[0] = NewCard(12, false) // the same lone KC, column 3 instead
	b.Tableaus[3].N = 1
	b.Tableaus[3].recomputeFirstUnlocked()

	fpA := Canonicalize(&a)
	fpB := Canonicalize(&b)
	if fpA != fpB {
		t.Fatal("moving an identical lone pile to a different empty column must not change the fingerprint")
	}
}

func TestCanonicalizeDistinguishesDifferentStates(t *testing.T) {
	a := emptyState()
	a.Waste[0] = NewCard(0, false)
	a.WasteN = 1

	b := emptyState()
	b.Waste[0] = NewCard(1, false)
	b.WasteN = 1

	if Canonicalize(&a) == Canonicalize(&b) {
		t.Fatal("different waste contents must produce different fingerprints")
	}
}
