package intcode

import "fmt"

// MaxMemory is the largest number of words a processor may address.
// Touching an address at or beyond it fails with ErrAddressOutOfRange.
const MaxMemory = 1 << 26

// Memory is the program and data store of one processor.
//
// Addresses start at 0. Touching an address at or past Len() extends memory
// with zeros up to and including that address, so unwritten locations read
// as zero. Memory never shrinks.
type Memory struct {
	cells []Value
}

// NewMemory returns a memory initialised with a copy of program.
func NewMemory(program []int64) *Memory {
	return &Memory{cells: Values(program...)}
}

// Len returns the current memory size.
func (m *Memory) Len() int {
	return len(m.cells)
}

// Read returns the value at addr, growing memory if needed.
func (m *Memory) Read(addr int64) (Value, error) {
	if err := m.ensure(addr); err != nil {
		return Value{}, err
	}
	return m.cells[addr], nil
}

// Write stores value at addr, growing memory if needed.
func (m *Memory) Write(addr int64, value Value) error {
	if err := m.ensure(addr); err != nil {
		return err
	}
	m.cells[addr] = value
	return nil
}

// Resolve returns the address a parameter refers to.
//
// paramAddr is the address of the parameter word itself. In position mode the
// target is the word's value, in relative mode the word's value plus base. In
// immediate mode the parameter word is its own target, so reading the result
// yields the literal; writing through it is rejected when forWrite is set.
func (m *Memory) Resolve(paramAddr int64, mode Mode, base int64, forWrite bool) (int64, error) {
	switch mode {
	case ModePosition:
		v, err := m.Read(paramAddr)
		if err != nil {
			return 0, err
		}
		return v.address()
	case ModeImmediate:
		if forWrite {
			return 0, ErrInvalidWriteMode
		}
		return paramAddr, nil
	case ModeRelative:
		v, err := m.Read(paramAddr)
		if err != nil {
			return 0, err
		}
		addr, err := IntValue(base).Add(v).address()
		if err != nil {
			return 0, fmt.Errorf("relative base %d: %w", base, err)
		}
		return addr, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// Snapshot returns a copy of the whole memory.
func (m *Memory) Snapshot() []Value {
	out := make([]Value, len(m.cells))
	copy(out, m.cells)
	return out
}

// Window returns a copy of the words in [addr, addr+n), clipped to the
// current size. It does not grow memory.
func (m *Memory) Window(addr, n int) []Value {
	lo := max(addr, 0)
	hi := min(addr+n, len(m.cells))
	if lo >= hi {
		return nil
	}
	out := make([]Value, hi-lo)
	copy(out, m.cells[lo:hi])
	return out
}

func (m *Memory) ensure(addr int64) error {
	if addr < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAddress, addr)
	}
	if addr >= MaxMemory {
		return fmt.Errorf("%w: %d", ErrAddressOutOfRange, addr)
	}
	if addr >= int64(len(m.cells)) {
		m.cells = append(m.cells, make([]Value, addr+1-int64(len(m.cells)))...)
	}
	return nil
}
