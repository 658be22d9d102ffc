// SPDX-FileCopyrightText : © 2025 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package klondike

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// canon.go builds the 56-byte canonical fingerprint used to detect
// duplicate states during search: 4 bytes of foundation rank, followed
// by up to 52 bytes covering every remaining card exactly once (stock,
// then waste, then each tableau column in a fixed order), with the top
// bit of each segment's last written byte set as a boundary marker.
// Unused trailing bytes stay NoCard (0xFF).
//
// Tableau columns are sorted by the index of their bottom card before
// encoding so that two boards differing only in which empty-capable
// column holds which pile collapse to the same fingerprint (the
// "empty-column symmetry" the move generator deliberately leaves
// undeduplicated). The sort never touches the live State; it orders a
// local copy of column references only.

// Fingerprint is the canonical byte encoding of a State.
type Fingerprint [56]byte

// Hash folds the fingerprint down to a 64-bit key for the search
// driver's visited set.
func (fp Fingerprint) Hash() uint64 {
	return xxhash.Sum64(fp[:])
}

// Canonicalize builds the fingerprint for s.
func Canonicalize(s *State) Fingerprint {
	var fp Fingerprint
	for i := range fp {
		fp[i] = byte(NoCard)
	}

	for suit := 0; suit < NumSuits; suit++ {
		fp[suit] = s.Foundations[suit].Rank()
	}
	fp[NumSuits-1] |= 0x80
	idx := NumSuits

	writeStripped := func(cards []Card) {
		for _, c := range cards {
			fp[idx] = byte(c.stripped())
			idx++
		}
		fp[idx-1] |= 0x80
	}
	writeRaw := func(cards []Card) {
		for _, c := range cards {
			fp[idx] = byte(c)
			idx++
		}
		fp[idx-1] |= 0x80
	}

	writeStripped(s.Stock[:s.StockN])
	writeStripped(s.Waste[:s.WasteN])

	type column struct {
		idx int
		key int
	}
	order := make([]column, numTableaus)
	for i := range s.Tableaus {
		t := &s.Tableaus[i]
		key := NumCards // empty columns sort last
		if t.N > 0 {
			key = int(t.Cards[0].Index())
		}
		order[i] = column{i, key}
	}
	sort.Slice(order, func(a, b int) bool { return order[a].key < order[b].key })

	for _, col := range order {
		t := &s.Tableaus[col.idx]
		writeRaw(t.Cards[:t.N])
	}

	return fp
}
