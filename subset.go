package slider

import (
	"iter"
	"math/bits"
)

// Subsets yields every subset of mask exactly once, starting with the empty
// set. The walk uses s' = (s - mask) & mask, which carries through the gaps
// of mask and returns to 0 after 2^popcount(mask) steps.
func Subsets(mask Bitboard) iter.Seq[Bitboard] {
	return func(yield func(Bitboard) bool) {
		s := EmptyBB
		for {
			if !yield(s) {
				return
			}
			s = (s - mask) & mask
			if s == 0 {
				return
			}
		}
	}
}

// Extract gathers the bits of x selected by mask into the low bits of the
// result, preserving their order (software PEXT).
func Extract(x, mask Bitboard) uint64 {
	var res uint64
	var idx uint
	for m := uint64(mask); m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		res |= (uint64(x) >> bit & 1) << idx
		idx++
	}
	return res
}

// Deposit scatters the low bits of x to the positions selected by mask
// (software PDEP). Deposit(Extract(x, m), m) == x & m.
func Deposit(x uint64, mask Bitboard) Bitboard {
	var res uint64
	var idx uint
	for m := uint64(mask); m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		res |= (x >> idx & 1) << bit
		idx++
	}
	return Bitboard(res)
}
