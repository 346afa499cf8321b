package slider

import (
	"fmt"
	"strings"
)

// Strategy selects how an occupancy subset is turned into a table index.
// It is fixed when a Table is built and applies to both piece types.
type Strategy int8

const (
	// Magic indexes with (subset * magic) >> (64 - popcount(mask)), using
	// the embedded, offline-validated constants.
	Magic Strategy = iota
	// Extract indexes with Extract(subset, mask) and stores attacks narrowed
	// against the empty-board attack set. Collision-free by construction.
	Extract
	// Rays keeps no table and computes attacks from the rays on every call.
	Rays
)

var strategyNames = [...]string{
	Magic:   "magic",
	Extract: "extract",
	Rays:    "rays",
}

func (s Strategy) String() string {
	if s >= 0 && int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses a strategy name as produced by String. The empty
// string selects DefaultStrategy; "pext" is accepted for Extract.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultStrategy, nil
	case "magic", "fancy":
		return Magic, nil
	case "extract", "pext":
		return Extract, nil
	case "rays", "classical":
		return Rays, nil
	}
	return DefaultStrategy, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
