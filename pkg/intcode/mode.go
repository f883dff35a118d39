package intcode

import "fmt"

// Mode is a parameter addressing mode.
type Mode uint8

const (
	// ModePosition reads the parameter as an address.
	ModePosition Mode = 0

	// ModeImmediate reads the parameter as a literal value.
	ModeImmediate Mode = 1

	// ModeRelative reads the parameter as an offset from the relative base.
	ModeRelative Mode = 2
)

// String returns a human-readable name for Mode.
func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	case ModeRelative:
		return "relative"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Valid reports whether m is one of the three defined modes.
func (m Mode) Valid() bool {
	return m <= ModeRelative
}
