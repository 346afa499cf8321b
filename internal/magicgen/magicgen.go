// Package magicgen searches and verifies magic multipliers for the slider
// tables. It runs offline; the slider package never derives constants at
// runtime.
package magicgen

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/npillmayer/schuko/tracing"

	"github.com/0x5844/slider"
)

// tracer writes to trace with key 'magicgen'
func tracer() tracing.Trace {
	return tracing.Select("magicgen")
}

// ErrNotFound is returned when no magic was found within the try budget.
var ErrNotFound = errors.New("magicgen: no magic found")

// DefaultTries bounds the candidates tested per square.
const DefaultTries = 100_000_000

// occupancies holds every subset of a square's mask with its attack set.
type occupancies struct {
	mask    slider.Bitboard
	bits    int
	occ     []slider.Bitboard
	attacks []slider.Bitboard
}

func enumerate(pt slider.PieceType, sq slider.Square) *occupancies {
	mask := slider.RelevantMask(pt, sq)
	n := mask.PopCount()
	o := &occupancies{
		mask:    mask,
		bits:    n,
		occ:     make([]slider.Bitboard, 0, 1<<n),
		attacks: make([]slider.Bitboard, 0, 1<<n),
	}
	for s := range slider.Subsets(mask) {
		o.occ = append(o.occ, s)
		o.attacks = append(o.attacks, slider.SlidingAttacks(pt, sq, s))
	}
	return o
}

// searcher reuses its slot buffers across candidates. A slot is in use for
// the current candidate when its epoch matches.
type searcher struct {
	epoch  []uint32
	slots  []slider.Bitboard
	cursor uint32
}

func (s *searcher) reset(size int) {
	if len(s.epoch) < size {
		s.epoch = make([]uint32, size)
		s.slots = make([]slider.Bitboard, size)
		s.cursor = 0
	}
}

// fits reports whether magic maps every occupancy to a free slot or to a
// slot holding the same attack set.
func (s *searcher) fits(o *occupancies, magic uint64) bool {
	s.cursor++
	shift := uint(64 - o.bits)
	for i, occ := range o.occ {
		idx := (uint64(occ) * magic) >> shift
		if s.epoch[idx] != s.cursor {
			s.epoch[idx] = s.cursor
			s.slots[idx] = o.attacks[i]
		} else if s.slots[idx] != o.attacks[i] {
			return false
		}
	}
	return true
}

// Find searches a magic for pt on sq with sparse random candidates.
func Find(pt slider.PieceType, sq slider.Square, rng *rand.Rand, tries int) (uint64, error) {
	o := enumerate(pt, sq)
	s := &searcher{}
	s.reset(1 << o.bits)
	for k := 0; k < tries; k++ {
		magic := rng.Uint64() & rng.Uint64() & rng.Uint64()
		// the top byte of mask*magic must be dense enough to spread the index
		if bits.OnesCount64((uint64(o.mask)*magic)&0xFF00000000000000) < 6 {
			continue
		}
		if s.fits(o, magic) {
			tracer().Debugf("%s %s: magic 0x%016x after %d candidates", pt, sq, magic, k+1)
			return magic, nil
		}
	}
	return 0, fmt.Errorf("%w: %s on %s after %d candidates", ErrNotFound, pt, sq, tries)
}

// Check reports whether magic is collision-free for pt on sq.
func Check(pt slider.PieceType, sq slider.Square, magic uint64) bool {
	o := enumerate(pt, sq)
	s := &searcher{}
	s.reset(1 << o.bits)
	return s.fits(o, magic)
}

// Generate searches a full table of magics for pt. The same seed gives the
// same table.
func Generate(pt slider.PieceType, seed uint64, tries int) ([slider.NumOfSquaresInBoard]uint64, error) {
	var magics [slider.NumOfSquaresInBoard]uint64
	rng := rand.New(rand.NewPCG(seed, uint64(pt)))
	for sq := slider.A1; sq <= slider.H8; sq++ {
		m, err := Find(pt, sq, rng, tries)
		if err != nil {
			return magics, err
		}
		magics[sq] = m
	}
	tracer().Infof("generated %s magics with seed %d", pt, seed)
	return magics, nil
}

// Verify builds a table from magics with the collision check enabled and
// compares it exhaustively with the ray attacks.
func Verify(pt slider.PieceType, magics [slider.NumOfSquaresInBoard]uint64) error {
	t := slider.NewTable(pt, slider.Magic, slider.WithMagics(magics), slider.WithCollisionCheck())
	if err := t.Init(); err != nil {
		return err
	}
	return t.Verify()
}
