package intcode

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// ParseProgram parses a comma-separated list of integers. Surrounding
// whitespace, newlines and a single trailing comma are ignored.
func ParseProgram(text string) ([]int64, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, ",")
	if text == "" {
		return nil, fmt.Errorf("empty program")
	}
	fields := strings.Split(text, ",")
	program := make([]int64, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("word %d: invalid integer %q: %w", i, f, err)
		}
		program = append(program, v)
	}
	return program, nil
}

// FormatProgram renders a program in the comma-separated form ParseProgram
// accepts.
func FormatProgram(program []int64) string {
	var sb strings.Builder
	for i, v := range program {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	return sb.String()
}

// LoadProgram reads and parses a program file.
func LoadProgram(path string) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	program, err := ParseProgram(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return program, nil
}

// Patch is a word written into memory before a run starts.
type Patch struct {
	Addr  int64
	Value int64
}

// Option returns the processor option applying the patch.
func (pt Patch) Option() Option {
	return WithPatch(pt.Addr, pt.Value)
}

// ParsePatches converts values keyed by decimal address into patches sorted
// by address.
func ParsePatches(set map[string]int64) ([]Patch, error) {
	patches := make([]Patch, 0, len(set))
	for key, value := range set {
		addr, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid address %q", key)
		}
		if addr < 0 || addr >= MaxMemory {
			return nil, fmt.Errorf("%w: %d", ErrAddressOutOfRange, addr)
		}
		patches = append(patches, Patch{Addr: addr, Value: value})
	}
	slices.SortFunc(patches, func(a, b Patch) int { return cmp.Compare(a.Addr, b.Addr) })
	return patches, nil
}
