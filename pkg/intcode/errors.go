package intcode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedOpcode is returned when the word at ip does not match the
	// handler selected for it, or cannot be decoded at all.
	ErrMalformedOpcode = errors.New("malformed opcode")

	// ErrUnknownOpcode is returned when word % 100 has no registered handler.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrInvalidWriteMode is returned when a write-target parameter is in
	// immediate mode.
	ErrInvalidWriteMode = errors.New("write parameter in immediate mode")

	// ErrUnknownMode is returned for a mode digit other than 0, 1 or 2.
	ErrUnknownMode = errors.New("unknown parameter mode")

	// ErrNegativeAddress is returned when a parameter resolves to an address
	// below zero.
	ErrNegativeAddress = errors.New("negative address")

	// ErrProgramEnd is returned when the instruction pointer runs past the end
	// of memory without reaching a halt instruction.
	ErrProgramEnd = errors.New("ran off end of program")

	// ErrAddressOutOfRange is returned when memory is touched at or beyond
	// MaxMemory, or when an address is computed from a word wider than int64.
	ErrAddressOutOfRange = errors.New("address out of range")

	// ErrInputUnavailable is returned when an interactive input source has no
	// more values to give.
	ErrInputUnavailable = errors.New("input unavailable")
)

// faultKinds are the sentinels a Fault's Kind is normalised to.
var faultKinds = []error{
	ErrMalformedOpcode,
	ErrUnknownOpcode,
	ErrInvalidWriteMode,
	ErrUnknownMode,
	ErrNegativeAddress,
	ErrProgramEnd,
	ErrAddressOutOfRange,
	ErrInputUnavailable,
}

// faultWindow is how many words either side of ip a Fault message shows.
const faultWindow = 4

// Fault is a fatal execution error. It records where the processor was and
// what memory looked like when the failure happened.
type Fault struct {
	Kind   error   // One of the Err* sentinels, or the cause if none matches
	IP     int     // Instruction pointer at the time of the fault
	Word   Value   // Word at IP (0 if IP is past the end of memory)
	Memory []Value // Full copy of memory
	Msg    string  // Optional detail
}

func newFault(err error, ip int, word Value, mem []Value) *Fault {
	f := &Fault{Kind: err, IP: ip, Word: word, Memory: mem}
	for _, kind := range faultKinds {
		if errors.Is(err, kind) {
			f.Kind = kind
			if err != kind {
				f.Msg = err.Error()
			}
			break
		}
	}
	return f
}

func (f *Fault) Error() string {
	if f == nil {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "intcode: %s at ip %d (word %s)", f.Kind, f.IP, f.Word)
	if f.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(f.Msg)
	}
	if len(f.Memory) > 0 {
		lo, win := f.Window(faultWindow)
		fmt.Fprintf(&sb, "; mem[%d:%d]=%v", lo, lo+len(win), win)
	}
	return sb.String()
}

func (f *Fault) Unwrap() error { return f.Kind }

// Window returns the slice of the memory copy within radius words of IP,
// together with the address of its first element.
func (f *Fault) Window(radius int) (int, []Value) {
	lo := max(f.IP-radius, 0)
	hi := min(f.IP+radius+1, len(f.Memory))
	if lo >= hi {
		return lo, nil
	}
	return lo, f.Memory[lo:hi]
}

// AsFault extracts a *Fault from an error chain.
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
