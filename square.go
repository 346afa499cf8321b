package slider

import (
	"fmt"
	"strings"
)

// A Square is one of the 64 squares on a chess board, A1 = 0 .. H8 = 63.
type Square int8

// NoSquare is returned where no valid square exists.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// A File is a column of the board, FileA = 0 .. FileH = 7.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// A Rank is a row of the board, Rank1 = 0 .. Rank8 = 7.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const fileChars = "abcdefgh"

// NewSquare returns the square at file f and rank r.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)*NumOfFiles + int8(f))
}

// File returns the square's file.
func (sq Square) File() File { return File(int(sq) % NumOfFiles) }

// Rank returns the square's rank.
func (sq Square) Rank() Rank { return Rank(int(sq) / NumOfFiles) }

// Valid reports whether sq lies on the board.
func (sq Square) Valid() bool { return sq >= A1 && sq <= H8 }

// String returns the square in algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

func (f File) String() string { return fileChars[f : f+1] }

func (r Rank) String() string { return string(rune('1' + r)) }

// ParseSquare parses a square in algebraic notation ("a1" .. "h8", case-insensitive).
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return NewSquare(File(s[0]-'a'), Rank(s[1]-'1')), nil
}
