package intcode

import (
	"errors"
	"fmt"
)

// ErrPartialFrame is returned by Frames when the outputs do not divide into
// whole frames.
var ErrPartialFrame = errors.New("partial output frame")

// Exchange is one activation of a processor driven by an external
// collaborator: it queues inputs, runs until the program halts or asks for
// more input, and returns everything the program emitted meanwhile.
func (p *Processor) Exchange(inputs ...Value) ([]Value, State, error) {
	p.PushValue(inputs...)
	state, err := p.Run()
	return p.TakeOutputs(), state, err
}

// Frames splits outputs into consecutive groups of size words, e.g. pairs of
// (color, turn) or triples of (x, y, tile).
func Frames(outputs []Value, size int) ([][]Value, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid frame size %d", size)
	}
	if len(outputs)%size != 0 {
		return nil, fmt.Errorf("%w: %d outputs, frame size %d", ErrPartialFrame, len(outputs), size)
	}
	frames := make([][]Value, 0, len(outputs)/size)
	for i := 0; i < len(outputs); i += size {
		frames = append(frames, outputs[i:i+size:i+size])
	}
	return frames, nil
}
