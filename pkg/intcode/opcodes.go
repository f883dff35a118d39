package intcode

import (
	"fmt"
	"sort"
)

// Opcode identifies an instruction. It is the low two decimal digits of an
// instruction word.
type Opcode int

const (
	OpAdd         Opcode = 1  // a b dest: dest = a + b
	OpMul         Opcode = 2  // a b dest: dest = a * b
	OpInput       Opcode = 3  // dest: dest = next input
	OpOutput      Opcode = 4  // a: emit a
	OpJumpIfTrue  Opcode = 5  // cond target: ip = target if cond != 0
	OpJumpIfFalse Opcode = 6  // cond target: ip = target if cond == 0
	OpLessThan    Opcode = 7  // a b dest: dest = a < b
	OpEquals      Opcode = 8  // a b dest: dest = a == b
	OpAdjustBase  Opcode = 9  // a: relative base += a
	OpHalt        Opcode = 99 // stop
)

// NoWrite marks an opcode without a write-target parameter.
const NoWrite = -1

// OpcodeInfo provides metadata about each opcode for decoding, validation and
// disassembly.
type OpcodeInfo struct {
	Name   string // Mnemonic
	Params int    // Number of parameter words following the opcode word
	Write  int    // Index of the write-target parameter, or NoWrite
}

// opcodeInfoTable maps opcodes to their metadata.
var opcodeInfoTable = map[Opcode]OpcodeInfo{
	OpAdd:         {"ADD", 3, 2},
	OpMul:         {"MUL", 3, 2},
	OpInput:       {"IN", 1, 0},
	OpOutput:      {"OUT", 1, NoWrite},
	OpJumpIfTrue:  {"JNZ", 2, NoWrite},
	OpJumpIfFalse: {"JZ", 2, NoWrite},
	OpLessThan:    {"LT", 3, 2},
	OpEquals:      {"EQ", 3, 2},
	OpAdjustBase:  {"ARB", 1, NoWrite},
	OpHalt:        {"HALT", 0, NoWrite},
}

// GetOpcodeInfo returns metadata for an opcode.
// Returns a zero OpcodeInfo with name "UNKNOWN(n)" if the opcode is not recognized.
func GetOpcodeInfo(op Opcode) OpcodeInfo {
	if info, ok := opcodeInfoTable[op]; ok {
		return info
	}
	return OpcodeInfo{Name: fmt.Sprintf("UNKNOWN(%d)", int(op)), Write: NoWrite}
}

// String returns the mnemonic of an opcode.
func (op Opcode) String() string {
	return GetOpcodeInfo(op).Name
}

// Known reports whether the opcode has a registered handler.
func (op Opcode) Known() bool {
	_, ok := opcodeInfoTable[op]
	return ok
}

// InstructionLen returns the total length of an instruction (1 + parameters).
func (op Opcode) InstructionLen() int {
	return GetOpcodeInfo(op).InstructionLen()
}

// InstructionLen returns the total length of the instruction in words.
func (info OpcodeInfo) InstructionLen() int {
	return 1 + info.Params
}

// IsJump returns true if this opcode may set the instruction pointer.
func (op Opcode) IsJump() bool {
	return op == OpJumpIfTrue || op == OpJumpIfFalse
}

// AllOpcodes returns all defined opcodes in ascending order.
func AllOpcodes() []Opcode {
	opcodes := make([]Opcode, 0, len(opcodeInfoTable))
	for op := range opcodeInfoTable {
		opcodes = append(opcodes, op)
	}
	sort.Slice(opcodes, func(i, j int) bool { return opcodes[i] < opcodes[j] })
	return opcodes
}

// OpcodeCount returns the number of defined opcodes.
func OpcodeCount() int {
	return len(opcodeInfoTable)
}
