package intcode

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestParseProgram(t *testing.T) {
	tests := []struct {
		text string
		want []int64
	}{
		{"1,0,0,0,99", []int64{1, 0, 0, 0, 99}},
		{" 1101, 100, -1, 4, 0\n", []int64{1101, 100, -1, 4, 0}},
		{"3,9,\n8,9,", []int64{3, 9, 8, 9}},
		{"104,1125899906842624,99", []int64{104, 1125899906842624, 99}},
	}
	for _, tt := range tests {
		got, err := ParseProgram(tt.text)
		if err != nil {
			t.Errorf("ParseProgram(%q) failed: %v", tt.text, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("ParseProgram(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParseProgramErrors(t *testing.T) {
	for _, text := range []string{"", "   \n", "1,,2", "1,x,3", "99999999999999999999"} {
		if _, err := ParseProgram(text); err == nil {
			t.Errorf("ParseProgram(%q): expected error", text)
		}
	}
}

func TestFormatProgram(t *testing.T) {
	if got := FormatProgram([]int64{3, -1, 99}); got != "3,-1,99" {
		t.Errorf("Expected 3,-1,99, got %q", got)
	}
}

func TestLoadProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.txt")
	if err := os.WriteFile(path, []byte("1,0,0,0,99\n"), 0644); err != nil {
		t.Fatal(err)
	}

	program, err := LoadProgram(path)
	if err != nil {
		t.Fatalf("LoadProgram failed: %v", err)
	}
	if !slices.Equal(program, []int64{1, 0, 0, 0, 99}) {
		t.Errorf("Unexpected program %v", program)
	}

	if _, err := LoadProgram(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParsePatches(t *testing.T) {
	patches, err := ParsePatches(map[string]int64{"2": 2, "1": 12, " 10 ": -1})
	if err != nil {
		t.Fatalf("ParsePatches failed: %v", err)
	}
	want := []Patch{{1, 12}, {2, 2}, {10, -1}}
	if !slices.Equal(patches, want) {
		t.Errorf("Expected %v, got %v", want, patches)
	}

	if _, err := ParsePatches(map[string]int64{"x": 1}); err == nil {
		t.Error("Expected error for non-numeric address")
	}
	if _, err := ParsePatches(map[string]int64{"-1": 1}); !errors.Is(err, ErrAddressOutOfRange) {
		t.Errorf("Expected ErrAddressOutOfRange, got %v", err)
	}

	p := New([]int64{1, 0, 0, 0, 99}, patches[0].Option(), patches[1].Option())
	if _, err := p.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// mem[12] + mem[2] with memory grown to 13 words.
	if got := p.Peek(0); got != IntValue(2) {
		t.Errorf("Expected mem[0] = 2, got %s", got)
	}
}

func FuzzParseProgram(f *testing.F) {
	f.Add("1,0,0,0,99")
	f.Add("109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99")
	f.Add(" 3 , 9 ,\n")
	f.Add(",,,")

	f.Fuzz(func(t *testing.T, text string) {
		program, err := ParseProgram(text)
		if err != nil {
			return
		}
		again, err := ParseProgram(FormatProgram(program))
		if err != nil {
			t.Fatalf("Formatted program does not parse: %v", err)
		}
		if !slices.Equal(program, again) {
			t.Fatalf("Round trip changed program: %v -> %v", program, again)
		}
	})
}
