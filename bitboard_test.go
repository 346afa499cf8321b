package slider

import "testing"

func TestBitboardOccupied(t *testing.T) {
	bb := EmptyBB.Set(B3) // Create a bitboard with only B3 set

	if bb.Occupied(B3) != true {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, true, false)
	}
	if bb.Occupied(C4) != false {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, false, true)
	}
	if bb.Clear(B3) != EmptyBB || bb.Toggle(B3) != EmptyBB {
		t.Fatalf("clearing B3 from %s should leave an empty bitboard", bb)
	}
}

func TestBitboardPopLSB(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(H8) // 0x8000000000000001

	sq1, next1, ok1 := bb.PopLSB()
	if !ok1 || sq1 != A1 {
		t.Fatalf("PopLSB 1: expected (%s, true), got (%s, %t)", A1, sq1, ok1)
	}
	if next1 != SquareBB(H8) {
		t.Fatalf("PopLSB 1: expected remaining %s, got %s", SquareBB(H8), next1)
	}

	sq2, next2, ok2 := next1.PopLSB()
	if !ok2 || sq2 != H8 {
		t.Fatalf("PopLSB 2: expected (%s, true), got (%s, %t)", H8, sq2, ok2)
	}
	if next2 != EmptyBB {
		t.Fatalf("PopLSB 2: expected remaining %s, got %s", EmptyBB, next2)
	}

	if _, _, ok3 := next2.PopLSB(); ok3 {
		t.Fatalf("PopLSB 3: expected (NoSquare, false), got ok=true")
	}
}

func TestBitboardMSB(t *testing.T) {
	if sq, ok := Squares(C2, F7).MSB(); !ok || sq != F7 {
		t.Fatalf("MSB: expected (%s, true), got (%s, %t)", F7, sq, ok)
	}
	if _, ok := EmptyBB.MSB(); ok {
		t.Fatalf("MSB of empty bitboard should fail")
	}
}

func TestBitboardScan(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(B2) | SquareBB(H8)
	expected := []Square{A1, B2, H8}
	result := bb.Scan()

	if len(result) != len(expected) {
		t.Fatalf("Scan: expected %d squares, got %d", len(expected), len(result))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Fatalf("Scan: expected %v, got %v", expected, result)
		}
	}
	if len(EmptyBB.Scan()) != 0 {
		t.Fatalf("Scan (empty): expected 0 squares, got %d", len(EmptyBB.Scan()))
	}
}

func TestRays(t *testing.T) {
	if r := Ray(A1, North); r != FileABB&^SquareBB(A1) {
		t.Fatalf("ray A1 north: got %s", r.Draw())
	}
	if r := Ray(H1, East); r != EmptyBB {
		t.Fatalf("ray H1 east must not wrap, got %s", r.Draw())
	}
	if r := Ray(D4, NorthEast); r != Squares(E5, F6, G7, H8) {
		t.Fatalf("ray D4 north-east: got %s", r.Draw())
	}
	for sq := A1; sq <= H8; sq++ {
		for dir := North; dir < NumDirections; dir++ {
			for _, to := range Ray(sq, dir).Scan() {
				if !Ray(to, dir.Opposite()).Occupied(sq) {
					t.Fatalf("ray %s from %s reaches %s, but not back", dir, sq, to)
				}
			}
		}
	}
}

func TestFileRankMasks(t *testing.T) {
	if BBFile(FileC) != FileCBB || BBRank(Rank6) != Rank6BB {
		t.Fatalf("file/rank masks not initialized")
	}
	if BBFile(File(8)) != EmptyBB || BBRank(Rank(-1)) != EmptyBB {
		t.Fatalf("out of range file/rank must give an empty mask")
	}
}

func BenchmarkBitboardScan(b *testing.B) {
	bb := SquareBB(A1) | SquareBB(B2) | SquareBB(H8)
	for i := 0; i < b.N; i++ {
		bb.Scan()
	}
}
