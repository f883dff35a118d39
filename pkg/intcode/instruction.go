package intcode

import "fmt"

// MaxParams is the largest parameter count of any instruction.
const MaxParams = 3

// Instruction is a decoded instruction word.
type Instruction struct {
	Opcode Opcode
	Modes  [MaxParams]Mode
}

// Decode splits an instruction word into its opcode and parameter modes.
//
// The opcode is word % 100. The remaining digits, read from least to most
// significant, give the modes of parameters 1, 2 and 3; missing digits mean
// ModePosition. Decode does not check that the opcode is known.
func Decode(word int64) (Instruction, error) {
	var in Instruction
	if word < 0 {
		return in, fmt.Errorf("%w: negative instruction word %d", ErrMalformedOpcode, word)
	}
	in.Opcode = Opcode(word % 100)
	digits := word / 100
	for i := 0; i < MaxParams && digits > 0; i++ {
		m := Mode(digits % 10)
		if !m.Valid() {
			return in, fmt.Errorf("%w: digit %d for parameter %d of word %d", ErrUnknownMode, int(m), i+1, word)
		}
		in.Modes[i] = m
		digits /= 10
	}
	if digits > 0 {
		return in, fmt.Errorf("%w: too many mode digits in word %d", ErrMalformedOpcode, word)
	}
	return in, nil
}

// Mode returns the addressing mode of the zero-based parameter i.
func (in Instruction) Mode(i int) Mode {
	if i < 0 || i >= MaxParams {
		return ModePosition
	}
	return in.Modes[i]
}

// Info returns the metadata of the instruction's opcode.
func (in Instruction) Info() OpcodeInfo {
	return GetOpcodeInfo(in.Opcode)
}

// Encode rebuilds the instruction word from opcode and modes.
func (in Instruction) Encode() int64 {
	word := int64(in.Opcode)
	scale := int64(100)
	for _, m := range in.Modes {
		word += int64(m) * scale
		scale *= 10
	}
	return word
}

func (in Instruction) String() string {
	info := in.Info()
	if info.Params == 0 {
		return info.Name
	}
	s := info.Name + "("
	for i := 0; i < info.Params; i++ {
		if i > 0 {
			s += ","
		}
		s += in.Modes[i].String()
	}
	return s + ")"
}
