package slider

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// State is the lifecycle state of a Table.
type State int8

const (
	Uninitialized State = iota
	Initializing
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Entry holds the per-square indexing parameters of a Table and the
// square's region [Offset, Offset+Size) in the table's shared arena.
type Entry struct {
	Mask     Bitboard // Relevant blockers, see RelevantMask.
	Magic    uint64   // Multiplier (Magic only).
	Shift    uint     // 64 - popcount(Mask) (Magic only).
	PostMask Bitboard // Empty-board attack set (Extract only).
	Offset   int      // First arena slot of this square.
	Size     int      // 1 << popcount(Mask); 0 for Rays.
}

// A Table maps (square, occupancy) to the attack set of one sliding piece
// type in O(1). All 64 squares share one arena; square regions are
// contiguous, non-overlapping and ordered A1..H8.
//
// A Table is built once with Init and never mutated afterwards, so Attacks
// may be called concurrently without synchronization.
type Table struct {
	piece           PieceType
	strategy        Strategy
	state           State
	magics          [NumOfSquaresInBoard]uint64
	checkCollisions bool

	entries [NumOfSquaresInBoard]Entry
	wide    []Bitboard // arena for Magic
	narrow  []uint16   // arena for Extract, values narrowed against PostMask
	lookup  func(sq Square, occ Bitboard) Bitboard
}

// An Option configures a Table before Init.
type Option func(*Table)

// WithCollisionCheck makes Init fail with ErrCollision if two occupancies
// with different attack sets land in the same slot.
func WithCollisionCheck() Option {
	return func(t *Table) { t.checkCollisions = true }
}

// WithMagics replaces the embedded multipliers used by the Magic strategy.
// The constants must be valid for RelevantMask and 64 - popcount shifts.
func WithMagics(magics [NumOfSquaresInBoard]uint64) Option {
	return func(t *Table) { t.magics = magics }
}

// EmbeddedMagics returns a copy of the embedded magic table for pt.
func EmbeddedMagics(pt PieceType) [NumOfSquaresInBoard]uint64 {
	if pt == Bishop {
		return bishopMagics
	}
	return rookMagics
}

// NewTable creates an uninitialized table for pt indexed with strategy.
func NewTable(pt PieceType, strategy Strategy, opts ...Option) *Table {
	t := &Table{
		piece:    pt,
		strategy: strategy,
		magics:   EmbeddedMagics(pt),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.lookup = t.uninitialized
	return t
}

// Piece returns the piece type the table serves.
func (t *Table) Piece() PieceType { return t.piece }

// Strategy returns the indexing strategy of the table.
func (t *Table) Strategy() Strategy { return t.strategy }

// State returns the lifecycle state of the table.
func (t *Table) State() State { return t.state }

// Entry returns the indexing parameters of sq.
func (t *Table) Entry(sq Square) Entry { return t.entries[sq] }

// Len returns the number of arena slots, the sum of all region sizes.
func (t *Table) Len() int { return len(t.wide) + len(t.narrow) }

// Init computes masks and indexing parameters for every square and fills
// the arena. Calling Init on a ready table does nothing.
func (t *Table) Init() error {
	switch t.state {
	case Ready:
		return nil
	case Initializing:
		// re-entry from an option or trace callback during build
		return ErrReentrantInit
	}
	t.state = Initializing
	if err := t.build(); err != nil {
		t.state = Uninitialized
		t.wide, t.narrow = nil, nil
		return err
	}
	switch t.strategy {
	case Magic:
		t.lookup = t.magicAttacks
	case Extract:
		t.lookup = t.extractAttacks
	default:
		t.lookup = t.rayAttacks
	}
	t.state = Ready
	tracer().P("piece", t.piece).Infof("%s table ready, %d slots", t.strategy, t.Len())
	return nil
}

func (t *Table) build() error {
	size := 0
	for sq := A1; sq <= H8; sq++ {
		e := &t.entries[sq]
		*e = Entry{Mask: RelevantMask(t.piece, sq)}
		switch t.strategy {
		case Magic:
			e.Magic = t.magics[sq]
			e.Shift = uint(NumOfSquaresInBoard - e.Mask.PopCount())
		case Extract:
			e.PostMask = SlidingAttacks(t.piece, sq, EmptyBB)
		case Rays:
			continue
		default:
			return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(t.strategy))
		}
		if sq > A1 {
			prev := &t.entries[sq-1]
			e.Offset = prev.Offset + prev.Size
		}
		e.Size = 1 << e.Mask.PopCount()
		size = e.Offset + e.Size
	}
	switch t.strategy {
	case Magic:
		t.wide = make([]Bitboard, size)
	case Extract:
		t.narrow = make([]uint16, size)
	default:
		return nil
	}
	for sq := A1; sq <= H8; sq++ {
		if err := t.fill(sq); err != nil {
			return err
		}
	}
	return nil
}

// fill enumerates every subset of sq's mask and stores its ray attacks.
func (t *Table) fill(sq Square) error {
	e := &t.entries[sq]
	var written []bool
	if t.checkCollisions {
		written = make([]bool, e.Size)
	}
	n := 0
	for occ := range Subsets(e.Mask) {
		attacks := SlidingAttacks(t.piece, sq, occ)
		idx := t.index(e, occ)
		if written != nil {
			if written[idx] && t.stored(e, idx) != attacks {
				tracer().Errorf("%s %s: occupancy %#x collides at slot %d", t.piece, sq, uint64(occ), idx)
				tracing.With(tracer()).Dump("entry", *e)
				return fmt.Errorf("%w: %s on %s, occupancy %#x", ErrCollision, t.piece, sq, uint64(occ))
			}
			written[idx] = true
		}
		if t.strategy == Extract {
			t.narrow[e.Offset+idx] = uint16(Extract(attacks, e.PostMask))
		} else {
			t.wide[e.Offset+idx] = attacks
		}
		n++
	}
	assert(n == e.Size, "subset walk did not visit the whole region")
	tracer().Debugf("%s %s: mask 0x%016x, region [%d, %d)", t.piece, sq, uint64(e.Mask), e.Offset, e.Offset+e.Size)
	return nil
}

// index maps an occupancy to a slot relative to the square's region.
func (t *Table) index(e *Entry, occ Bitboard) int {
	if t.strategy == Extract {
		return int(Extract(occ, e.Mask))
	}
	return int(((occ & e.Mask) * Bitboard(e.Magic)) >> e.Shift)
}

// stored returns the full-width value in a region slot.
func (t *Table) stored(e *Entry, idx int) Bitboard {
	if t.strategy == Extract {
		return Deposit(uint64(t.narrow[e.Offset+idx]), e.PostMask)
	}
	return t.wide[e.Offset+idx]
}

// Attacks returns the attack set of the table's piece on sq given the
// board occupancy occ. The table must be ready and sq valid; neither is
// checked.
func (t *Table) Attacks(sq Square, occ Bitboard) Bitboard {
	return t.lookup(sq, occ)
}

func (t *Table) magicAttacks(sq Square, occ Bitboard) Bitboard {
	e := &t.entries[sq]
	return t.wide[e.Offset+int(((occ&e.Mask)*Bitboard(e.Magic))>>e.Shift)]
}

func (t *Table) extractAttacks(sq Square, occ Bitboard) Bitboard {
	e := &t.entries[sq]
	return Deposit(uint64(t.narrow[e.Offset+int(Extract(occ, e.Mask))]), e.PostMask)
}

func (t *Table) rayAttacks(sq Square, occ Bitboard) Bitboard {
	return classicalAttacks(t.piece, sq, occ)
}

func (t *Table) uninitialized(Square, Bitboard) Bitboard {
	panic("slider: lookup on a table that is not ready")
}

// Verify compares Attacks with SlidingAttacks for every subset of every
// square's mask, with and without unrelated squares occupied.
func (t *Table) Verify() error {
	if t.state != Ready {
		return fmt.Errorf("%w: %s table is %s", ErrVerify, t.piece, t.state)
	}
	for sq := A1; sq <= H8; sq++ {
		mask := RelevantMask(t.piece, sq)
		noise := FullBB &^ mask
		for occ := range Subsets(mask) {
			for _, o := range [2]Bitboard{occ, occ | noise} {
				if got, want := t.Attacks(sq, o), SlidingAttacks(t.piece, sq, o); got != want {
					tracer().Errorf("%s %s: occupancy %#x gives %#x, want %#x", t.piece, sq, uint64(o), uint64(got), uint64(want))
					tracing.With(tracer()).Dump("entry", t.entries[sq])
					return fmt.Errorf("%w: %s on %s, occupancy %#x", ErrVerify, t.piece, sq, uint64(o))
				}
			}
		}
	}
	return nil
}
