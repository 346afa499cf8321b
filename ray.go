package slider

// SlidingAttacks walks each of pt's rays from sq one square at a time,
// stopping after the first square set in occ. The blocker is included
// (captures are attacks). The origin square itself is never visited, so
// its bit in occ has no effect.
//
// This is the reference the lookup tables are built from and tested against.
func SlidingAttacks(pt PieceType, sq Square, occ Bitboard) Bitboard {
	attacks := EmptyBB
	for _, dir := range pt.Directions() {
		for to, ok := step(sq, dir); ok; to, ok = step(to, dir) {
			attacks |= SquareBB(to)
			if occ.Occupied(to) {
				break
			}
		}
	}
	return attacks
}

// classicalAttacks computes the same set as SlidingAttacks from the
// precomputed rays: the first blocker on a ray is found by bit scan and the
// ray beyond it is cut off.
func classicalAttacks(pt PieceType, sq Square, blockers Bitboard) Bitboard {
	attacks := EmptyBB
	for _, dir := range pt.Directions() {
		ray := rays[sq][dir]
		blockedRay := ray & blockers
		if blockedRay == 0 {
			attacks |= ray
			continue
		}
		var blockerSq Square
		if IsPositiveRayDir(dir) { // Positive directions (increasing square index)
			blockerSq, _ = blockedRay.LSB()
		} else {
			blockerSq, _ = blockedRay.MSB()
		}
		// Attack = ray_from_sq AND NOT ray_from_blocker, which keeps the blocker.
		attacks |= ray &^ rays[blockerSq][dir]
	}
	return attacks
}

// RelevantMask returns the squares whose occupancy can change pt's attacks
// from sq: the empty-board attack set without the board edges that do not
// contain sq. A ray stops at the edge whatever stands there, so edge
// squares never matter as blockers.
func RelevantMask(pt PieceType, sq Square) Bitboard {
	edges := (EdgeRanksMask &^ BBRank(sq.Rank())) | (EdgeFilesMask &^ BBFile(sq.File()))
	return SlidingAttacks(pt, sq, EmptyBB) &^ edges
}
