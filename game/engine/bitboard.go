package engine

import "math/bits"

// bitboard packs one player's pieces into 49 of 64 bits: bit
// 7*column+row is row `row` of column `column`, rows counted from the
// bottom. Bit 7*column+6 is the sentinel above each column and is
// never set by a placement.
type bitboard uint64

func cellMask(column, row int) bitboard {
	return 1 << uint(column*columnStride+row)
}

// lineShifts holds the bit distance between adjacent cells along each
// of the four win directions: vertical, horizontal, and the two
// diagonals.
var lineShifts = [4]uint{1, columnStride, columnStride - 1, columnStride + 1}

// connectsFour reports whether the board contains four contiguous
// pieces along any direction. Per direction, the first AND collapses
// every adjacent pair into a marker bit and the second matches two
// markers 2*shift apart, which is nonzero exactly when four consecutive
// bits were set. The sentinel row keeps a run from crossing between
// columns.
func (b bitboard) connectsFour() bool {
	for _, shift := range lineShifts {
		pairs := b & (b >> shift)
		if pairs&(pairs>>(2*shift)) != 0 {
			return true
		}
	}
	return false
}

func (b bitboard) count() int {
	return bits.OnesCount64(uint64(b))
}
