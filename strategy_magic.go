//go:build !pext && !rays

package slider

// DefaultStrategy is the strategy the process-wide tables are built with.
// Build with -tags pext or -tags rays to change it.
const DefaultStrategy = Magic
