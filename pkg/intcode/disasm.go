package intcode

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable listing of program.
//
// The listing is a linear sweep from address 0: each decodable instruction
// consumes its parameters, anything else is printed as a DATA word. Since
// Intcode mixes code and data, words after a HALT are often data that happens
// to decode.
func Disassemble(program []int64) string {
	return DisassembleWithName(program, "")
}

// DisassembleWithName returns a listing with a name header.
func DisassembleWithName(program []int64, name string) string {
	var sb strings.Builder

	if name != "" {
		sb.WriteString(fmt.Sprintf("; === %s ===\n", name))
	}
	sb.WriteString(fmt.Sprintf("; Intcode, %d words\n", len(program)))

	offset := 0
	for offset < len(program) {
		line, n := disassembleInstruction(program, offset)
		sb.WriteString(fmt.Sprintf("%04d  %s\n", offset, line))
		offset += n
	}

	return sb.String()
}

// disassembleInstruction formats the instruction at offset and returns its
// length in words.
func disassembleInstruction(program []int64, offset int) (string, int) {
	word := program[offset]
	in, err := Decode(word)
	if err != nil || !in.Opcode.Known() {
		return fmt.Sprintf("DATA %d", word), 1
	}
	info := in.Info()
	if offset+info.Params >= len(program) {
		// Not enough words left for the parameters.
		return fmt.Sprintf("DATA %d", word), 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s", info.Name))
	for i := 0; i < info.Params; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(" ")
		sb.WriteString(formatOperand(program[offset+1+i], in.Mode(i)))
	}
	return strings.TrimRight(sb.String(), " "), info.InstructionLen()
}

// formatOperand renders a parameter: #v immediate, [v] position, [rb+v] relative.
func formatOperand(v int64, m Mode) string {
	switch m {
	case ModeImmediate:
		return fmt.Sprintf("#%d", v)
	case ModeRelative:
		if v < 0 {
			return fmt.Sprintf("[rb%d]", v)
		}
		return fmt.Sprintf("[rb+%d]", v)
	default:
		return fmt.Sprintf("[%d]", v)
	}
}
