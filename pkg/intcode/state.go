package intcode

import "fmt"

// State is the lifecycle state of a Processor.
type State uint8

const (
	StateReady     State = iota // Constructed, nothing executed yet
	StateRunning                // Inside Run or between Steps
	StateSuspended              // Waiting on an Input instruction with an empty queue
	StateHalted                 // Executed opcode 99
	StateFailed                 // Stopped on a fatal error
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateHalted:
		return "halted"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// IsTerminal reports whether no further instruction can execute.
func (s State) IsTerminal() bool {
	return s == StateHalted || s == StateFailed
}

// StepResult tells the caller of Step what happened.
type StepResult uint8

const (
	StepContinue   StepResult = iota // Instruction executed, more may follow
	StepNeedsInput                   // Input instruction found the queue empty
	StepHalted                       // Halt executed (or already halted)
	StepFailed                       // Fatal error, see the returned error
)

func (r StepResult) String() string {
	switch r {
	case StepContinue:
		return "continue"
	case StepNeedsInput:
		return "needs-input"
	case StepHalted:
		return "halted"
	case StepFailed:
		return "failed"
	default:
		return fmt.Sprintf("StepResult(%d)", r)
	}
}
