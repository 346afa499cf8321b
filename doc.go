/*
Package slider provides precomputed attack tables for the sliding chess
pieces, bishop and rook. Queen attacks are the union of both.

A lookup replaces ray casting: each square owns a region of a shared arena
holding the attack set for every configuration of its relevant blockers,
and an occupancy is mapped to a slot in that region in O(1).

Three indexing strategies exist, selected at build time with tags and
optionally overridden once at startup with Setup:

	magic    (default)   (occ & mask) * magic >> (64 - bits)
	extract  -tags pext  Extract(occ, mask), narrowed storage
	rays     -tags rays  no table, rays are cut at the first blocker

The tables are built in the package's init and are immutable afterwards;
lookups are safe for concurrent use.

Tracing goes to the tracer selected by key "slider".
*/
package slider

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'slider'
func tracer() tracing.Trace {
	return tracing.Select("slider")
}

func assert(condition bool, msg string) {
	if !condition {
		panic("slider: " + msg)
	}
}
