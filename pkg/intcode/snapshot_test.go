package intcode

import (
	"slices"
	"testing"
)

func TestSnapshotEncodeDecode(t *testing.T) {
	p := New([]int64{3, 9, 4, 9, 99}, WithInputs(7, 8))
	if _, err := p.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	snap := p.Snapshot()
	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}

	if back.IP != snap.IP || back.RelativeBase != snap.RelativeBase || back.State != StateHalted {
		t.Errorf("Registers differ: %+v vs %+v", back, snap)
	}
	if !slices.Equal(back.Memory, snap.Memory) {
		t.Errorf("Memory differs: %v vs %v", back.Memory, snap.Memory)
	}
	if !slices.Equal(back.Inputs, Values(8)) || !slices.Equal(back.Outputs, Values(7)) {
		t.Errorf("Queues differ: inputs %v outputs %v", back.Inputs, back.Outputs)
	}
}

func TestSnapshotKeepsWideValues(t *testing.T) {
	p := New([]int64{1102, 10000000000, 10000000000, 0, 4, 0, 99})
	if _, err := p.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := p.Snapshot().Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}
	if got := back.Memory[0].String(); got != "100000000000000000000" {
		t.Errorf("Expected wide mem[0], got %s", got)
	}
	if len(back.Outputs) != 1 || !back.Outputs[0].Equal(back.Memory[0]) {
		t.Errorf("Unexpected outputs %v", back.Outputs)
	}
	if !back.Memory[1].Equal(IntValue(10000000000)) || !back.Memory[1].IsInt64() {
		t.Errorf("Expected narrow mem[1], got %s", back.Memory[1])
	}
}

func TestFingerprintTracksState(t *testing.T) {
	program := []int64{1101, 1, 1, 5, 99, 0}
	a := New(program)
	b := New(program)

	fa, err := a.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	fb, _ := b.Fingerprint()
	if fa != fb {
		t.Error("Fresh processors of the same program should match")
	}

	if _, err := a.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	fa, _ = a.Fingerprint()
	if fa == fb {
		t.Error("Fingerprint did not change after a step")
	}

	b.Step()
	fb, _ = b.Fingerprint()
	if fa != fb {
		t.Error("Processors in the same state should match")
	}
}

func TestDecodeSnapshotGarbage(t *testing.T) {
	if _, err := DecodeSnapshot([]byte{0xff, 0x00}); err == nil {
		t.Error("Expected error for garbage input")
	}
}
