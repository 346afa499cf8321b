package slider

import "testing"

func TestRookA1EmptyBoard(t *testing.T) {
	attacks := SlidingAttacks(Rook, A1, EmptyBB)
	want := (Rank1BB | FileABB) &^ SquareBB(A1)
	if attacks != want || attacks.PopCount() != 14 {
		t.Fatalf("rook A1 on empty board: expected %s got %s", want.Draw(), attacks.Draw())
	}
}

func TestBishopD4Blocker(t *testing.T) {
	attacks := SlidingAttacks(Bishop, D4, SquareBB(F6))
	want := Squares(E5, F6) | // stops at the blocker, blocker included
		Squares(E3, F2, G1) |
		Squares(C3, B2, A1) |
		Squares(C5, B6, A7)
	if attacks != want {
		t.Fatalf("bishop D4 with blocker F6: expected %s got %s", want.Draw(), attacks.Draw())
	}
	if attacks.Occupied(G7) || attacks.Occupied(H8) {
		t.Fatalf("bishop D4 must not see past F6")
	}
}

func TestSelfOccupiedOrigin(t *testing.T) {
	for _, pt := range []PieceType{Bishop, Rook} {
		for sq := A1; sq <= H8; sq++ {
			if SlidingAttacks(pt, sq, SquareBB(sq)) != SlidingAttacks(pt, sq, EmptyBB) {
				t.Fatalf("%s on %s: occupying the origin changed the attacks", pt, sq)
			}
		}
	}
}

func TestRelevantMask(t *testing.T) {
	for _, pt := range []PieceType{Bishop, Rook} {
		for sq := A1; sq <= H8; sq++ {
			mask := RelevantMask(pt, sq)
			full := SlidingAttacks(pt, sq, EmptyBB)
			if mask&^full != 0 || mask == full {
				t.Fatalf("%s %s: mask must be a strict subset of the empty-board attacks", pt, sq)
			}
			if sq.Rank() != Rank1 && mask&Rank1BB != 0 ||
				sq.Rank() != Rank8 && mask&Rank8BB != 0 ||
				sq.File() != FileA && mask&FileABB != 0 ||
				sq.File() != FileH && mask&FileHBB != 0 {
				t.Fatalf("%s %s: mask contains a foreign board edge %s", pt, sq, mask.Draw())
			}
		}
	}
	if got := RelevantMask(Rook, A1).PopCount(); got != 12 {
		t.Errorf("rook A1 mask: expected 12 squares, got %d", got)
	}
	if got := RelevantMask(Rook, D4).PopCount(); got != 10 {
		t.Errorf("rook D4 mask: expected 10 squares, got %d", got)
	}
	if got := RelevantMask(Bishop, D4).PopCount(); got != 9 {
		t.Errorf("bishop D4 mask: expected 9 squares, got %d", got)
	}
}

func TestClassicalMatchesRayWalk(t *testing.T) {
	for _, pt := range []PieceType{Bishop, Rook} {
		for sq := A1; sq <= H8; sq++ {
			noise := FullBB &^ RelevantMask(pt, sq)
			for occ := range Subsets(RelevantMask(pt, sq)) {
				for _, o := range []Bitboard{occ, occ | noise} {
					if got, want := classicalAttacks(pt, sq, o), SlidingAttacks(pt, sq, o); got != want {
						t.Fatalf("%s %s occ %#x: classical %#x, ray walk %#x", pt, sq, uint64(o), uint64(got), uint64(want))
					}
				}
			}
		}
	}
}

func BenchmarkSlidingAttacks(b *testing.B) {
	occ := Squares(D2, F6, B4, G4)
	for i := 0; i < b.N; i++ {
		SlidingAttacks(Rook, D4, occ)
	}
}
