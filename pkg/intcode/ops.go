package intcode

import "fmt"

// operation is one entry of the dispatch table.
type operation struct {
	code Opcode
	info OpcodeInfo
	exec func(p *Processor, in Instruction) (StepResult, error)
}

// dispatch is indexed by opcode (word % 100).
var dispatch [100]*operation

func init() {
	handlers := map[Opcode]func(*Processor, Instruction) (StepResult, error){
		OpAdd:         execAdd,
		OpMul:         execMul,
		OpInput:       execInput,
		OpOutput:      execOutput,
		OpJumpIfTrue:  execJumpIfTrue,
		OpJumpIfFalse: execJumpIfFalse,
		OpLessThan:    execLessThan,
		OpEquals:      execEquals,
		OpAdjustBase:  execAdjustBase,
		OpHalt:        execHalt,
	}
	for code, exec := range handlers {
		dispatch[code] = &operation{code: code, info: GetOpcodeInfo(code), exec: exec}
	}
}

// param reads the value of the zero-based parameter i of the instruction at ip.
func (p *Processor) param(in Instruction, i int) (Value, error) {
	addr, err := p.mem.Resolve(p.ip+1+int64(i), in.Mode(i), p.base, false)
	if err != nil {
		return Value{}, fmt.Errorf("parameter %d: %w", i+1, err)
	}
	v, err := p.mem.Read(addr)
	if err != nil {
		return Value{}, fmt.Errorf("parameter %d: %w", i+1, err)
	}
	return v, nil
}

// target resolves the address written by the zero-based parameter i.
func (p *Processor) target(in Instruction, i int) (int64, error) {
	addr, err := p.mem.Resolve(p.ip+1+int64(i), in.Mode(i), p.base, true)
	if err != nil {
		return 0, fmt.Errorf("parameter %d: %w", i+1, err)
	}
	return addr, nil
}

// operands reads two value parameters followed by a write target.
func (p *Processor) operands(in Instruction) (a, b Value, dest int64, err error) {
	if a, err = p.param(in, 0); err != nil {
		return
	}
	if b, err = p.param(in, 1); err != nil {
		return
	}
	dest, err = p.target(in, 2)
	return
}

func (p *Processor) store3(in Instruction, f func(a, b Value) Value) (StepResult, error) {
	a, b, dest, err := p.operands(in)
	if err != nil {
		return StepFailed, err
	}
	if err := p.mem.Write(dest, f(a, b)); err != nil {
		return StepFailed, err
	}
	p.ip += 4
	return StepContinue, nil
}

func execAdd(p *Processor, in Instruction) (StepResult, error) {
	return p.store3(in, Value.Add)
}

func execMul(p *Processor, in Instruction) (StepResult, error) {
	return p.store3(in, Value.Mul)
}

func execLessThan(p *Processor, in Instruction) (StepResult, error) {
	return p.store3(in, func(a, b Value) Value { return boolWord(a.Cmp(b) < 0) })
}

func execEquals(p *Processor, in Instruction) (StepResult, error) {
	return p.store3(in, func(a, b Value) Value { return boolWord(a.Equal(b)) })
}

func execInput(p *Processor, in Instruction) (StepResult, error) {
	// Resolve first so a bad write mode never consumes an input.
	dest, err := p.target(in, 0)
	if err != nil {
		return StepFailed, err
	}

	var v Value
	switch {
	case len(p.inputs) > 0:
		v = p.inputs[0]
		p.inputs = p.inputs[1:]
	case p.interactive != nil:
		n, err := p.interactive.ReadInput()
		if err != nil {
			return StepFailed, err
		}
		v = IntValue(n)
	default:
		return StepNeedsInput, nil
	}

	if err := p.mem.Write(dest, v); err != nil {
		return StepFailed, err
	}
	p.ip += 2
	return StepContinue, nil
}

func execOutput(p *Processor, in Instruction) (StepResult, error) {
	v, err := p.param(in, 0)
	if err != nil {
		return StepFailed, err
	}
	p.outputs = append(p.outputs, v)
	p.ip += 2
	return StepContinue, nil
}

func (p *Processor) jumpIf(in Instruction, want bool) (StepResult, error) {
	cond, err := p.param(in, 0)
	if err != nil {
		return StepFailed, err
	}
	dest, err := p.param(in, 1)
	if err != nil {
		return StepFailed, err
	}
	if (cond.Sign() != 0) == want {
		ip, err := dest.address()
		if err != nil {
			return StepFailed, fmt.Errorf("jump target: %w", err)
		}
		p.ip = ip
	} else {
		p.ip += 3
	}
	return StepContinue, nil
}

func execJumpIfTrue(p *Processor, in Instruction) (StepResult, error) {
	return p.jumpIf(in, true)
}

func execJumpIfFalse(p *Processor, in Instruction) (StepResult, error) {
	return p.jumpIf(in, false)
}

func execAdjustBase(p *Processor, in Instruction) (StepResult, error) {
	v, err := p.param(in, 0)
	if err != nil {
		return StepFailed, err
	}
	base, err := IntValue(p.base).Add(v).address()
	if err != nil {
		return StepFailed, fmt.Errorf("relative base: %w", err)
	}
	p.base = base
	p.ip += 2
	return StepContinue, nil
}

func execHalt(p *Processor, in Instruction) (StepResult, error) {
	return StepHalted, nil
}

func boolWord(b bool) Value {
	if b {
		return IntValue(1)
	}
	return Value{}
}
