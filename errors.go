package slider

import "errors"

var (
	// ErrCollision is returned when two occupancies with different attack
	// sets map to the same table slot. It means a magic constant is bad.
	ErrCollision = errors.New("slider: magic index collision")
	// ErrVerify is returned when a table lookup disagrees with SlidingAttacks.
	ErrVerify = errors.New("slider: table disagrees with ray attacks")
	// ErrReentrantInit is returned by Init on a table that is still initializing.
	ErrReentrantInit = errors.New("slider: table initialization re-entered")
	// ErrUnknownStrategy is returned when parsing an unknown strategy name.
	ErrUnknownStrategy = errors.New("slider: unknown strategy")
	// ErrInvalidSquare is returned when parsing a malformed square name.
	ErrInvalidSquare = errors.New("slider: invalid square")
)
