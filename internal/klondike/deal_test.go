// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package klondike

import "testing"

// seeds is a small fixture of deal seeds, the same shape as the
// teacher's own known-outcome map, checked for the structural
// invariants every deal must satisfy regardless of its exact layout.
var seeds = []uint32{1, 42, 777, 123456789, 0xDEADBEEF}

func TestDealProducesAFullDeck(t *testing.T) {
	for _, seed := range seeds {
		s := Deal(seed)
		if err := Validate(&s); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
}

func TestDealColumnSizes(t *testing.T) {
	s := Deal(42)
	for col := 0; col < numTableaus; col++ {
		want := col + 1
		if got := int(s.Tableaus[col].N); got != want {
			t.Errorf("column %d has %d cards, want %d", col, got, want)
		}
	}
	if s.StockN != 24 {
		t.Fatalf("StockN = %d, want 24", s.StockN)
	}
	if s.WasteN != 0 {
		t.Fatalf("WasteN = %d, want 0", s.WasteN)
	}
}

func TestDealOnlyLastCardPerColumnFaceUp(t *testing.T) {
	s := Deal(9001)
	for col := 0; col < numTableaus; col++ {
		t0 := &s.Tableaus[col]
		for i := uint8(0); i < t0.N; i++ {
			wantFaceDown := i != t0.N-1
			if t0.Cards[i].FaceDown() != wantFaceDown {
				t.Errorf("column %d card %d FaceDown() = %v, want %v", col, i, t0.Cards[i].FaceDown(), wantFaceDown)
			}
		}
	}
}

func TestDealStockAllFaceDown(t *testing.T) {
	s := Deal(9001)
	for i := uint8(0); i < s.StockN; i++ {
		if !s.Stock[i].FaceDown() {
			t.Fatalf("stock card %d should be face down at deal time", i)
		}
	}
}

func TestDealDeterministic(t *testing.T) {
	for _, seed := range seeds {
		a := Deal(seed)
		b := Deal(seed)
		if Canonicalize(&a) != Canonicalize(&b) {
			t.Fatalf("seed %d: Deal must be deterministic", seed)
		}
	}
}

func TestDealSeedsDiffer(t *testing.T) {
	a := Deal(1)
	b := Deal(2)
	if Canonicalize(&a) == Canonicalize(&b) {
		t.Fatal("distinct seeds should (overwhelmingly likely) produce distinct deals")
	}
}

func TestPermutationIsAPermutation(t *testing.T) {
	for _, seed := range seeds {
		perm := Permutation(seed)
		var seen [NumCards]bool
		for _, idx := range perm {
			if seen[idx] {
				t.Fatalf("seed %d: index %d appears twice in the permutation", seed, idx)
			}
			seen[idx] = true
		}
	}
}
