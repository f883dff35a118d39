package intcode

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InputSource supplies values to a processor running in interactive mode.
// ReadInput blocks until a value is available.
type InputSource interface {
	ReadInput() (int64, error)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() (int64, error)

// ReadInput calls f.
func (f InputFunc) ReadInput() (int64, error) { return f() }

// DefaultPrompt is written before each interactive read.
const DefaultPrompt = "Program input: "

// PromptInput reads one integer per line from a reader, writing a prompt
// before each read.
type PromptInput struct {
	Prompt string

	in  *bufio.Scanner
	out io.Writer
}

// NewPromptInput creates a PromptInput. out may be nil to suppress prompts.
func NewPromptInput(r io.Reader, out io.Writer) *PromptInput {
	return &PromptInput{
		Prompt: DefaultPrompt,
		in:     bufio.NewScanner(r),
		out:    out,
	}
}

// ReadInput prompts and parses the next non-blank line.
func (p *PromptInput) ReadInput() (int64, error) {
	for {
		if p.out != nil && p.Prompt != "" {
			fmt.Fprint(p.out, p.Prompt)
		}
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
			}
			return 0, ErrInputUnavailable
		}
		line := strings.TrimSpace(p.in.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid input %q: %w", line, err)
		}
		return v, nil
	}
}

// SliceInput hands out values from a fixed list, then reports
// ErrInputUnavailable.
type SliceInput struct {
	values []int64
}

// NewSliceInput returns an InputSource over a copy of values.
func NewSliceInput(values ...int64) *SliceInput {
	return &SliceInput{values: append([]int64(nil), values...)}
}

// ReadInput returns the next value.
func (s *SliceInput) ReadInput() (int64, error) {
	if len(s.values) == 0 {
		return 0, ErrInputUnavailable
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v, nil
}
