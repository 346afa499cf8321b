package slider

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit integer used to represent a set of squares.
type Bitboard uint64

// --- Constants ---

const (
	NumOfSquaresInBoard = 64 // Total squares on the board.
	NumOfFiles          = 8  // Number of files (columns).
	NumOfRanks          = 8  // Number of ranks (rows).
)

// Direction indexes a ray direction (N, NE, E, SE, S, SW, W, NW).
type Direction int

// Directions for ray generation. Opposite directions are 4 apart.
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections // Total number of directions = 8
)

// --- Predefined Bitboard Constants ---

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB // All squares set

	// Files (LSB = Rank 1)
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = FileABB << 1
	FileCBB Bitboard = FileABB << 2
	FileDBB Bitboard = FileABB << 3
	FileEBB Bitboard = FileABB << 4
	FileFBB Bitboard = FileABB << 5
	FileGBB Bitboard = FileABB << 6
	FileHBB Bitboard = FileABB << 7

	// Ranks (LSB = File A)
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank3BB Bitboard = Rank1BB << (8 * 2)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank6BB Bitboard = Rank1BB << (8 * 5)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)

	// Edge Masks
	NotAFile      Bitboard = ^FileABB
	NotHFile      Bitboard = ^FileHBB
	EdgeFilesMask Bitboard = FileABB | FileHBB             // Mask for files A and H.
	EdgeRanksMask Bitboard = Rank1BB | Rank8BB             // Mask for ranks 1 and 8.
	Border        Bitboard = EdgeFilesMask | EdgeRanksMask // All squares on the edge
)

// --- Precomputed Geometry ---
// These tables are initialized in initGeometry, before the slider tables are built.
var (
	fileMasks [NumOfFiles]Bitboard                          // [file] Mask for each file.
	rankMasks [NumOfRanks]Bitboard                          // [rank] Mask for each rank.
	rays      [NumOfSquaresInBoard][NumDirections]Bitboard // Ray in direction from sq (excluding sq).
)

// raySteps holds the square delta of one step in each direction.
var raySteps = [NumDirections]int{8, 9, 1, -7, -8, -9, -1, 7}

func initGeometry() {
	initFileRankMasks()
	initRays() // Needs file/rank geometry of squares only
}

// Initializes file and rank masks.
func initFileRankMasks() {
	for f := FileA; f <= FileH; f++ {
		fileMasks[f] = FileABB << f
	}
	for r := Rank1; r <= Rank8; r++ {
		rankMasks[r] = Rank1BB << (r * 8)
	}
}

// Initializes ray tables. Rays exclude the starting square.
func initRays() {
	for sq := A1; sq <= H8; sq++ {
		for dir := North; dir < NumDirections; dir++ {
			ray := EmptyBB
			for to, ok := step(sq, dir); ok; to, ok = step(to, dir) {
				ray |= SquareBB(to)
			}
			rays[sq][dir] = ray
		}
	}
}

// step moves one square from sq in direction dir. It reports false when the
// step would leave the board or wrap around an edge.
func step(sq Square, dir Direction) (Square, bool) {
	next := int(sq) + raySteps[dir]
	if next < 0 || next >= NumOfSquaresInBoard {
		return NoSquare, false
	}
	to := Square(next)
	// Wrapped around edge if distance > 1 (King move)
	df := abs(int(to.File()) - int(sq.File()))
	dr := abs(int(to.Rank()) - int(sq.Rank()))
	if max(df, dr) > 1 {
		return NoSquare, false
	}
	return to, true
}

// IsPositiveRayDir checks if a direction increases the square index (N, NE, E, NW).
func IsPositiveRayDir(dir Direction) bool {
	return dir == North || dir == NorthEast || dir == East || dir == NorthWest
}

// Opposite returns the opposite direction.
func (dir Direction) Opposite() Direction {
	return (dir + 4) % NumDirections
}

func (dir Direction) String() string {
	switch dir {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	}
	return fmt.Sprintf("Direction(%d)", int(dir))
}

// BBFile returns a bitboard mask for the given file.
func BBFile(f File) Bitboard {
	if f >= FileA && f <= FileH {
		return fileMasks[f]
	}
	return EmptyBB
}

// BBRank returns a bitboard mask for the given rank.
func BBRank(r Rank) Bitboard {
	if r >= Rank1 && r <= Rank8 {
		return rankMasks[r]
	}
	return EmptyBB
}

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// --- Bitboard Manipulation ---

// SquareBB returns a bitboard with only the given square set. Returns EmptyBB for invalid squares.
func SquareBB(sq Square) Bitboard {
	if sq >= A1 && sq <= H8 {
		return 1 << sq
	}
	return EmptyBB
}

// Squares returns a bitboard with all given squares set.
func Squares(sqs ...Square) Bitboard {
	bb := EmptyBB
	for _, sq := range sqs {
		bb |= SquareBB(sq)
	}
	return bb
}

// Set sets the bit corresponding to the square.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear clears the bit corresponding to the square.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Toggle toggles the bit corresponding to the square.
func (b Bitboard) Toggle(sq Square) Bitboard { return b ^ SquareBB(sq) }

// Occupied checks if the square's bit is set.
func (b Bitboard) Occupied(sq Square) bool {
	return (b & SquareBB(sq)) != 0
}

// IsEmpty checks if the bitboard is empty.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB finds the index of the least significant bit. Returns (square, true) or (NoSquare, false).
func (b Bitboard) LSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// MSB finds the index of the most significant bit. Returns (square, true) or (NoSquare, false).
func (b Bitboard) MSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(NumOfSquaresInBoard - 1 - bits.LeadingZeros64(uint64(b))), true
}

// PopLSB finds and removes the least significant bit. Returns (square, new bitboard, true) or (NoSquare, original bitboard, false).
func (b Bitboard) PopLSB() (Square, Bitboard, bool) {
	if b == 0 {
		return NoSquare, b, false
	}
	// b & (b-1) clears the LSB
	return Square(bits.TrailingZeros64(uint64(b))), b & (b - 1), true
}

// Ray returns the precomputed ray from sq in direction dir (excluding sq).
func Ray(sq Square, dir Direction) Bitboard {
	if sq < A1 || sq > H8 || dir < North || dir >= NumDirections {
		return EmptyBB
	}
	return rays[sq][dir]
}

// Scan returns a slice of all squares corresponding to set bits, ordered LSB to MSB.
func (b Bitboard) Scan() []Square {
	squares := make([]Square, 0, b.PopCount())
	for tempBB := b; tempBB != 0; {
		sq, next, _ := tempBB.PopLSB()
		squares = append(squares, sq)
		tempBB = next
	}
	return squares
}

// String returns the 64-bit binary string representation (MSB=H8, LSB=A1).
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if (uint64(b)>>i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Draw returns a string visually representing the bitboard on a chessboard grid.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := Rank8; r >= Rank1; r-- { // Iterate ranks 8->1 (visual top to bottom)
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := FileA; f <= FileH; f++ {
			if b.Occupied(NewSquare(f, r)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf("%d\n", r+1))
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
