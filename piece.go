package slider

import "fmt"

// PieceType is a sliding piece kind. Queen attacks are the union of both.
type PieceType int8

const (
	Bishop PieceType = iota
	Rook
	NumPieceTypes
)

var (
	bishopDirs = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	rookDirs   = [4]Direction{North, East, South, West}
)

// Directions returns the four ray directions pt slides along.
func (pt PieceType) Directions() [4]Direction {
	if pt == Bishop {
		return bishopDirs
	}
	return rookDirs
}

func (pt PieceType) String() string {
	switch pt {
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	}
	return fmt.Sprintf("PieceType(%d)", int(pt))
}
