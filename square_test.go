package slider

import (
	"errors"
	"testing"
)

func TestSquareString(t *testing.T) {
	cases := map[Square]string{A1: "a1", H1: "h1", D4: "d4", A8: "a8", H8: "h8", NoSquare: "-"}
	for sq, want := range cases {
		if got := sq.String(); got != want {
			t.Errorf("square %d: expected %q, got %q", int(sq), want, got)
		}
	}
}

func TestParseSquare(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != sq {
			t.Fatalf("ParseSquare(%q) = %s", sq.String(), got)
		}
	}
	if sq, err := ParseSquare(" E4 "); err != nil || sq != E4 {
		t.Fatalf("ParseSquare should accept upper case and spaces, got %s, %v", sq, err)
	}
	for _, bad := range []string{"", "i1", "a9", "a0", "e44"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q): expected ErrInvalidSquare, got %v", bad, err)
		}
	}
}

func TestSquareFileRank(t *testing.T) {
	if E4.File() != FileE || E4.Rank() != Rank4 {
		t.Fatalf("E4: got file %s rank %s", E4.File(), E4.Rank())
	}
	if NewSquare(FileH, Rank8) != H8 {
		t.Fatalf("NewSquare(h, 8) = %s", NewSquare(FileH, Rank8))
	}
}
