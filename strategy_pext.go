//go:build pext && !rays

package slider

// DefaultStrategy is the strategy the process-wide tables are built with.
const DefaultStrategy = Extract
