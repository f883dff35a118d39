// Package amplifier chains Intcode processors into amplifier networks and
// searches phase settings for the strongest output signal.
package amplifier

import (
	"errors"
	"fmt"

	"github.com/chazu/intcode/pkg/intcode"
	"github.com/google/uuid"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.amplifier")

var (
	// ErrUnexpectedOutputCount is returned when an activation of an
	// amplifier emits anything other than exactly one output.
	ErrUnexpectedOutputCount = errors.New("unexpected output count")

	// ErrNoPhases is returned for a network or search without phases.
	ErrNoPhases = errors.New("no phase settings")
)

// Network is an ordered chain of amplifiers running the same program. Each
// amplifier is seeded with its phase setting as its first input.
type Network struct {
	id       uuid.UUID
	amps     []*intcode.Processor
	phases   []int64
	feedback bool
	trace    bool
	rounds   int
	last     intcode.Value // Latest output of the last amplifier
}

// Option configures a Network.
type Option func(*Network)

// WithFeedback wires the last amplifier's output back into the first and
// keeps cycling until every amplifier has halted.
func WithFeedback() Option {
	return func(n *Network) {
		n.feedback = true
	}
}

// WithTrace enables instruction tracing on every amplifier.
func WithTrace() Option {
	return func(n *Network) {
		n.trace = true
	}
}

// New builds a network with one amplifier per phase setting. Amplifiers are
// named A, B, C and so on.
func New(program []int64, phases []int64, opts ...Option) (*Network, error) {
	if len(phases) == 0 {
		return nil, ErrNoPhases
	}
	n := &Network{
		id:     uuid.New(),
		phases: append([]int64(nil), phases...),
	}
	for _, opt := range opts {
		opt(n)
	}

	n.amps = make([]*intcode.Processor, len(phases))
	for i, phase := range phases {
		popts := []intcode.Option{
			intcode.WithName(ampName(i)),
			intcode.WithInputs(phase),
			intcode.WithLogger(log),
		}
		if n.trace {
			popts = append(popts, intcode.WithTrace())
		}
		n.amps[i] = intcode.New(program, popts...)
	}
	return n, nil
}

// ID identifies this network run in log lines.
func (n *Network) ID() uuid.UUID { return n.id }

// Rounds returns the number of completed passes over the chain.
func (n *Network) Rounds() int { return n.rounds }

// Amplifiers returns the processors in chain order.
func (n *Network) Amplifiers() []*intcode.Processor { return n.amps }

// Run feeds signal 0 into the first amplifier and returns the last output of
// the last amplifier.
func (n *Network) Run() (intcode.Value, error) {
	log.Debugf("network %s: phases %v feedback=%t", n.id, n.phases, n.feedback)

	signal, err := n.pass(intcode.IntValue(0))
	if err != nil {
		return intcode.Value{}, err
	}
	if n.feedback {
		for !n.allHalted() {
			if signal, err = n.pass(signal); err != nil {
				return intcode.Value{}, err
			}
		}
	}

	log.Debugf("network %s: signal %s after %d rounds", n.id, n.last, n.rounds)
	return n.last, nil
}

// pass gives every running amplifier one activation in order, threading the
// signal through the chain. Halted amplifiers pass the signal on unchanged.
func (n *Network) pass(signal intcode.Value) (intcode.Value, error) {
	for i, amp := range n.amps {
		if amp.Halted() {
			log.Debugf("network %s: amplifier %s halted, passing %s on", n.id, ampName(i), signal)
			continue
		}
		out, state, err := amp.Exchange(signal)
		if err != nil {
			return intcode.Value{}, fmt.Errorf("amplifier %s: %w", ampName(i), err)
		}
		if len(out) != 1 {
			return intcode.Value{}, fmt.Errorf("amplifier %s: %w: got %d in state %s",
				ampName(i), ErrUnexpectedOutputCount, len(out), state)
		}
		signal = out[0]
		if i == len(n.amps)-1 {
			n.last = signal
		}
	}
	n.rounds++
	return signal, nil
}

func (n *Network) allHalted() bool {
	for _, amp := range n.amps {
		if !amp.Halted() {
			return false
		}
	}
	return true
}

// ampName returns A..Z, then A26, A27 and so on for very long chains.
func ampName(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("A%d", i)
}
