package slider

import "testing"

func TestSubsetsVisitEachOnce(t *testing.T) {
	masks := []Bitboard{
		EmptyBB,
		SquareBB(E4),
		Squares(A1, C1, H8),
		RelevantMask(Rook, A1),
		RelevantMask(Bishop, D4),
	}
	for _, mask := range masks {
		seen := make(map[Bitboard]bool)
		first := true
		for s := range Subsets(mask) {
			if first && s != EmptyBB {
				t.Fatalf("mask %#x: walk must start with the empty subset, got %#x", uint64(mask), uint64(s))
			}
			first = false
			if s&^mask != 0 {
				t.Fatalf("mask %#x: %#x is not a subset", uint64(mask), uint64(s))
			}
			if seen[s] {
				t.Fatalf("mask %#x: subset %#x visited twice", uint64(mask), uint64(s))
			}
			seen[s] = true
		}
		if want := 1 << mask.PopCount(); len(seen) != want {
			t.Fatalf("mask %#x: expected %d subsets, got %d", uint64(mask), want, len(seen))
		}
	}
}

// s - mask is s + ^mask + 1: the set bits outside mask carry the +1 to the
// next mask bit, so the walk counts upward and yields subsets in increasing
// numeric order.
func TestSubsetsWalkOrder(t *testing.T) {
	var order []Bitboard
	for s := range Subsets(Squares(B1, D1)) {
		order = append(order, s)
	}
	want := []Bitboard{0, SquareBB(B1), SquareBB(D1), Squares(B1, D1)}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected walk %v, got %v", want, order)
		}
	}
}

func TestSubsetsStop(t *testing.T) {
	n := 0
	for range Subsets(RelevantMask(Rook, A1)) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("early break not honored, got %d", n)
	}
}

func TestExtractDeposit(t *testing.T) {
	mask := Squares(B1, D3, G5, H8)
	if got := Extract(Squares(D3, H8, A1), mask); got != 0b1010 {
		t.Fatalf("Extract: expected 0b1010, got %#b", got)
	}
	if got := Deposit(0b0101, mask); got != Squares(B1, G5) {
		t.Fatalf("Deposit: expected B1|G5, got %s", got.Draw())
	}
	for _, pt := range []PieceType{Bishop, Rook} {
		for sq := A1; sq <= H8; sq++ {
			m := RelevantMask(pt, sq)
			i := uint64(0)
			for s := range Subsets(m) {
				if Deposit(Extract(s, m), m) != s {
					t.Fatalf("%s %s: Deposit(Extract(%#x)) does not round-trip", pt, sq, uint64(s))
				}
				i++
			}
			if Extract(m, m) != i-1 {
				t.Fatalf("%s %s: Extract(mask, mask) should be all ones", pt, sq)
			}
		}
	}
}
