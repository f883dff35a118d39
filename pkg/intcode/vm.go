package intcode

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.vm")

// Processor executes one Intcode program. It owns its memory, instruction
// pointer, relative base and I/O queues; nothing is shared between
// processors.
type Processor struct {
	mem  *Memory
	ip   int64 // Instruction pointer
	base int64 // Relative base

	inputs  []Value // FIFO consumed by Input
	outputs []Value // FIFO appended by Output

	state State
	err   error  // Set once state is StateFailed
	steps uint64 // Instructions executed

	name        string
	interactive InputSource
	trace       bool
	log         commonlog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithInputs preloads the input queue.
func WithInputs(values ...int64) Option {
	return func(p *Processor) {
		p.inputs = append(p.inputs, Values(values...)...)
	}
}

// WithPatch overwrites the word at addr before the program starts, e.g.
// WithPatch(0, 2) to insert quarters. An invalid address fails the processor.
func WithPatch(addr, value int64) Option {
	return func(p *Processor) {
		if p.state == StateFailed {
			return
		}
		if err := p.Poke(addr, IntValue(value)); err != nil {
			p.fail(err, Value{})
		}
	}
}

// WithInteractive makes Input instructions read from src when the queue is
// empty, instead of suspending.
func WithInteractive(src InputSource) Option {
	return func(p *Processor) {
		p.interactive = src
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace() Option {
	return func(p *Processor) {
		p.trace = true
	}
}

// WithName sets the name used in log lines.
func WithName(name string) Option {
	return func(p *Processor) {
		p.name = name
	}
}

// WithLogger replaces the package logger.
func WithLogger(l commonlog.Logger) Option {
	return func(p *Processor) {
		p.log = l
	}
}

// New creates a processor for a copy of program.
func New(program []int64, opts ...Option) *Processor {
	p := &Processor{
		mem:  NewMemory(program),
		name: "cpu",
		log:  log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Step executes a single instruction.
//
// It returns StepNeedsInput, leaving ip on the Input instruction, when input
// is required and none is queued (and the processor is not interactive).
// Calling Step on a halted processor returns StepHalted without doing
// anything; on a failed processor it returns StepFailed and the first
// error.
func (p *Processor) Step() (StepResult, error) {
	switch p.state {
	case StateHalted:
		return StepHalted, nil
	case StateFailed:
		return StepFailed, p.err
	}
	p.state = StateRunning

	if p.ip < 0 {
		return p.fail(ErrNegativeAddress, Value{})
	}
	if p.ip >= int64(p.mem.Len()) {
		return p.fail(ErrProgramEnd, Value{})
	}
	word := p.mem.cells[p.ip]
	raw, ok := word.Int64()
	if !ok {
		return p.fail(ErrMalformedOpcode, word)
	}

	in, err := Decode(raw)
	if err != nil {
		return p.fail(err, word)
	}
	op := dispatch[in.Opcode]
	if op == nil {
		return p.fail(ErrUnknownOpcode, word)
	}
	if Opcode(raw%100) != op.code {
		return p.fail(ErrMalformedOpcode, word)
	}

	if p.trace {
		p.log.Debugf("%s: ip=%d rb=%d %s %v", p.name, p.ip, p.base, in, p.mem.Window(int(p.ip)+1, op.info.Params))
	}

	res, err := op.exec(p, in)
	if err != nil {
		return p.fail(err, word)
	}

	switch res {
	case StepNeedsInput:
		p.state = StateSuspended
		p.log.Debugf("%s: suspended at ip=%d awaiting input", p.name, p.ip)
	case StepHalted:
		p.steps++
		p.state = StateHalted
		p.log.Debugf("%s: halted after %d steps, %d outputs", p.name, p.steps, len(p.outputs))
	default:
		p.steps++
	}
	return res, nil
}

// Run executes instructions until the program halts, fails or suspends for
// input. It returns the resulting state.
func (p *Processor) Run() (State, error) {
	for {
		res, err := p.Step()
		switch res {
		case StepContinue:
			continue
		case StepFailed:
			return StateFailed, err
		default:
			return p.state, nil
		}
	}
}

func (p *Processor) fail(err error, word Value) (StepResult, error) {
	f := newFault(err, int(p.ip), word, p.mem.Snapshot())
	p.state = StateFailed
	p.err = f
	p.log.Errorf("%s: %s", p.name, f)
	return StepFailed, f
}

// PushInput appends values to the input queue.
func (p *Processor) PushInput(values ...int64) {
	p.inputs = append(p.inputs, Values(values...)...)
}

// PushValue appends values of any size to the input queue.
func (p *Processor) PushValue(values ...Value) {
	p.inputs = append(p.inputs, values...)
}

// PendingInputs returns the number of queued, unconsumed inputs.
func (p *Processor) PendingInputs() int {
	return len(p.inputs)
}

// Outputs returns a copy of the output queue.
func (p *Processor) Outputs() []Value {
	return append([]Value(nil), p.outputs...)
}

// TakeOutputs returns the output queue and empties it.
func (p *Processor) TakeOutputs() []Value {
	out := p.outputs
	p.outputs = nil
	return out
}

// LastOutput returns the most recent queued output.
func (p *Processor) LastOutput() (Value, bool) {
	if len(p.outputs) == 0 {
		return Value{}, false
	}
	return p.outputs[len(p.outputs)-1], true
}

// Memory returns a copy of the processor's memory.
func (p *Processor) Memory() []Value {
	return p.mem.Snapshot()
}

// MemoryLen returns the current memory size.
func (p *Processor) MemoryLen() int {
	return p.mem.Len()
}

// Peek returns the word at addr without growing memory. Addresses outside
// memory read as zero.
func (p *Processor) Peek(addr int) Value {
	if addr < 0 || addr >= p.mem.Len() {
		return Value{}
	}
	return p.mem.cells[addr]
}

// Poke writes value at addr, growing memory if needed.
func (p *Processor) Poke(addr int64, value Value) error {
	return p.mem.Write(addr, value)
}

// IP returns the instruction pointer.
func (p *Processor) IP() int { return int(p.ip) }

// RelativeBase returns the relative base.
func (p *Processor) RelativeBase() int64 { return p.base }

// State returns the lifecycle state.
func (p *Processor) State() State { return p.state }

// Halted reports whether the program executed its halt instruction.
func (p *Processor) Halted() bool { return p.state == StateHalted }

// Err returns the fatal error, if the processor failed.
func (p *Processor) Err() error { return p.err }

// Steps returns the number of instructions executed so far.
func (p *Processor) Steps() uint64 { return p.steps }

// Name returns the processor name used in logs.
func (p *Processor) Name() string { return p.name }
