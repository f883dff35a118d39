package amplifier

import (
	"fmt"

	"github.com/chazu/intcode/pkg/intcode"
)

var (
	// SequentialPhases are the phase settings of a chain without feedback.
	SequentialPhases = []int64{0, 1, 2, 3, 4}

	// FeedbackPhases are the phase settings of a feedback loop.
	FeedbackPhases = []int64{5, 6, 7, 8, 9}
)

// Result is the best configuration found by Search.
type Result struct {
	Signal intcode.Value
	Phases []int64
}

func (r Result) String() string {
	return fmt.Sprintf("%s %v", r.Signal, r.Phases)
}

// DefaultPhases returns the phase set for the given mode.
func DefaultPhases(feedback bool) []int64 {
	if feedback {
		return append([]int64(nil), FeedbackPhases...)
	}
	return append([]int64(nil), SequentialPhases...)
}

// Search runs a network built with opts for every permutation of phases and
// returns the highest signal. Ties keep the permutation found first. Any
// failing permutation aborts the search.
func Search(program []int64, phases []int64, opts ...Option) (Result, error) {
	if len(phases) == 0 {
		return Result{}, ErrNoPhases
	}

	var best Result
	found := false
	perms := Permutations(phases)
	for _, perm := range perms {
		n, err := New(program, perm, opts...)
		if err != nil {
			return Result{}, err
		}
		signal, err := n.Run()
		if err != nil {
			return Result{}, fmt.Errorf("phases %v: %w", perm, err)
		}
		if !found || signal.Cmp(best.Signal) > 0 {
			best = Result{Signal: signal, Phases: perm}
			found = true
		}
	}

	log.Infof("search over %d permutations: best %s", len(perms), best)
	return best, nil
}
