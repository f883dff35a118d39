package amplifier

import (
	"errors"
	"slices"
	"testing"

	"github.com/chazu/intcode/pkg/intcode"
)

func TestPermutationsOrder(t *testing.T) {
	got := Permutations([]int64{1, 2, 3})
	want := [][]int64{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}
	if !slices.EqualFunc(got, want, slices.Equal[[]int64]) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestPermutationsFollowPositions(t *testing.T) {
	// Order is by input position, not by value.
	got := Permutations([]int64{3, 1})
	if !slices.EqualFunc(got, [][]int64{{3, 1}, {1, 3}}, slices.Equal[[]int64]) {
		t.Errorf("Unexpected order %v", got)
	}

	dup := Permutations([]int64{7, 7})
	if len(dup) != 2 {
		t.Errorf("Expected duplicates to count as distinct positions, got %v", dup)
	}
}

func TestPermutationsCount(t *testing.T) {
	perms := Permutations(FeedbackPhases)
	if len(perms) != 120 {
		t.Fatalf("Expected 120 permutations, got %d", len(perms))
	}
	seen := make(map[[5]int64]bool)
	for _, p := range perms {
		seen[[5]int64(p)] = true
	}
	if len(seen) != 120 {
		t.Errorf("Expected 120 distinct permutations, got %d", len(seen))
	}
	if Permutations(nil) != nil {
		t.Error("Expected nil for no values")
	}
}

func TestSearchSequential(t *testing.T) {
	tests := []struct {
		name    string
		program []int64
		signal  int64
		phases  []int64
	}{
		{"A", chainA, 43210, []int64{4, 3, 2, 1, 0}},
		{"B", chainB, 54321, []int64{0, 1, 2, 3, 4}},
		{"C", chainC, 65210, []int64{1, 0, 4, 3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Search(tt.program, SequentialPhases)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if res.Signal != intcode.IntValue(tt.signal) || !slices.Equal(res.Phases, tt.phases) {
				t.Errorf("Expected %d %v, got %s", tt.signal, tt.phases, res)
			}
		})
	}
}

func TestSearchFeedback(t *testing.T) {
	tests := []struct {
		name    string
		program []int64
		signal  int64
		phases  []int64
	}{
		{"A", loopA, 139629729, []int64{9, 8, 7, 6, 5}},
		{"B", loopB, 18216, []int64{9, 7, 8, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Search(tt.program, FeedbackPhases, WithFeedback())
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if res.Signal != intcode.IntValue(tt.signal) || !slices.Equal(res.Phases, tt.phases) {
				t.Errorf("Expected %d %v, got %s", tt.signal, tt.phases, res)
			}
		})
	}
}

func TestSearchTieKeepsFirst(t *testing.T) {
	// Every ordering sums to the same signal.
	res, err := Search(sum, SequentialPhases)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Signal != intcode.IntValue(10) || !slices.Equal(res.Phases, []int64{0, 1, 2, 3, 4}) {
		t.Errorf("Expected 10 [0 1 2 3 4], got %s", res)
	}
}

func TestSearchErrors(t *testing.T) {
	if _, err := Search(chainA, nil); !errors.Is(err, ErrNoPhases) {
		t.Errorf("Expected ErrNoPhases, got %v", err)
	}
	if _, err := Search([]int64{3, 0, 3, 0, 99}, SequentialPhases); !errors.Is(err, ErrUnexpectedOutputCount) {
		t.Errorf("Expected ErrUnexpectedOutputCount, got %v", err)
	}
}

func TestSearchComparesWideSignals(t *testing.T) {
	res, err := Search(scale, []int64{10000000000, 3})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Signal.String() != "400000000000000000000" || !slices.Equal(res.Phases, []int64{3, 10000000000}) {
		t.Errorf("Expected 400000000000000000000 [3 10000000000], got %s", res)
	}
}

func TestSearchTrace(t *testing.T) {
	res, err := Search(sum, []int64{1, 2}, WithTrace())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Signal != intcode.IntValue(3) {
		t.Errorf("Expected 3, got %s", res)
	}
}

func TestDefaultPhases(t *testing.T) {
	seq := DefaultPhases(false)
	seq[0] = 42
	if SequentialPhases[0] != 0 {
		t.Error("DefaultPhases returned the shared slice")
	}
	if !slices.Equal(DefaultPhases(true), []int64{5, 6, 7, 8, 9}) {
		t.Errorf("Unexpected feedback phases %v", DefaultPhases(true))
	}
}

func BenchmarkSearchFeedback(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Search(loopA, FeedbackPhases, WithFeedback()); err != nil {
			b.Fatal(err)
		}
	}
}
