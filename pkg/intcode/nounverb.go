package intcode

import (
	"errors"
	"fmt"
)

// ErrNoSolution is returned by NounVerb when no input pair produces the
// target.
var ErrNoSolution = errors.New("no noun and verb produce target")

// NounVerbLimit bounds the noun and verb searched by NounVerb.
const NounVerbLimit = 100

// RunPatched runs program with mem[1] = noun and mem[2] = verb and returns
// the final mem[0].
func RunPatched(program []int64, noun, verb int64, opts ...Option) (Value, error) {
	opts = append([]Option{WithPatch(1, noun), WithPatch(2, verb), WithName(fmt.Sprintf("nv-%d-%d", noun, verb))}, opts...)
	p := New(program, opts...)
	state, err := p.Run()
	if err != nil {
		return Value{}, err
	}
	if state != StateHalted {
		return Value{}, fmt.Errorf("program %s instead of halting", state)
	}
	return p.Peek(0), nil
}

// NounVerb searches nouns and verbs in [0, NounVerbLimit) for the pair whose
// patched run leaves target at address 0. Pairs whose runs fail count as
// misses.
func NounVerb(program []int64, target int64, opts ...Option) (noun, verb int64, err error) {
	want := IntValue(target)
	for noun = 0; noun < NounVerbLimit; noun++ {
		for verb = 0; verb < NounVerbLimit; verb++ {
			got, err := RunPatched(program, noun, verb, opts...)
			if err != nil {
				continue
			}
			if got.Equal(want) {
				log.Infof("noun %d verb %d produce %d", noun, verb, target)
				return noun, verb, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w %d", ErrNoSolution, target)
}
