// Package intcode implements the Intcode virtual machine: a register-less
// interpreter whose program and data share one flat, growable array of
// signed integers.
//
// The VM is designed for:
//   - Cooperative execution (a processor suspends instead of blocking when it
//     needs input that has not been supplied yet)
//   - Composition (several processors can be chained by moving one's output
//     queue into another's input queue, see package amplifier)
//   - Diagnosable failures (every fatal condition carries the instruction
//     pointer, the offending word and a copy of memory)
//
// # Architecture Overview
//
//   - Memory: a slice of Values that grows with zero-fill whenever an
//     address past its end is touched, up to MaxMemory words. Programs are
//     copied in, never aliased.
//
//   - Value: an unbounded integer word. Values stay in an int64 until an Add
//     or Mul result needs more, then move to a big.Int.
//
//   - Instruction: decoded from the word at the instruction pointer. The low
//     two decimal digits select the opcode, the remaining digits select the
//     addressing mode of each parameter (position, immediate or relative).
//
//   - Opcodes: a fixed dispatch table indexed by opcode. Each entry carries
//     metadata (name, parameter count, which parameter is written) and a
//     handler function.
//
//   - Processor: owns memory, instruction pointer, relative base and the two
//     FIFO queues. Step executes one instruction, Run executes until the
//     program halts, fails or needs input.
//
// # Suspension
//
// An Input instruction that finds the input queue empty does not fail. The
// processor returns StepNeedsInput from Step (StateSuspended from Run) with
// the instruction pointer still on the Input instruction. Pushing more input
// and calling Run again re-executes that instruction:
//
//	p := intcode.New(program)
//	state, err := p.Run()       // StateSuspended
//	p.PushInput(42)
//	state, err = p.Run()        // continues where it stopped
//
// A processor configured WithInteractive reads from its InputSource instead
// of suspending.
package intcode
