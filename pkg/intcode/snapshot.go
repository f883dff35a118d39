package intcode

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical encoding so equal snapshots encode to equal bytes.
var cborEncMode cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	// Wide words always encode as bignums so they never decode as int64.
	opts.BigIntConvert = cbor.BigIntConvertNone
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("intcode: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Snapshot is a point-in-time copy of a processor's machine state.
type Snapshot struct {
	IP           int64   `cbor:"1,keyasint"`
	RelativeBase int64   `cbor:"2,keyasint"`
	State        State   `cbor:"3,keyasint"`
	Memory       []Value `cbor:"4,keyasint"`
	Inputs       []Value `cbor:"5,keyasint,omitempty"`
	Outputs      []Value `cbor:"6,keyasint,omitempty"`
}

// Snapshot copies the processor's machine state.
func (p *Processor) Snapshot() Snapshot {
	return Snapshot{
		IP:           p.ip,
		RelativeBase: p.base,
		State:        p.state,
		Memory:       p.mem.Snapshot(),
		Inputs:       append([]Value(nil), p.inputs...),
		Outputs:      append([]Value(nil), p.outputs...),
	}
}

// Encode returns the canonical CBOR encoding of the snapshot.
func (s Snapshot) Encode() ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// Fingerprint returns the SHA-256 of the canonical encoding. Two processors
// with the same fingerprint are in the same machine state.
func (s Snapshot) Fingerprint() ([32]byte, error) {
	data, err := s.Encode()
	if err != nil {
		return [32]byte{}, fmt.Errorf("intcode: encode snapshot: %w", err)
	}
	return sha256.Sum256(data), nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("intcode: unmarshal snapshot: %w", err)
	}
	return s, nil
}

// Fingerprint is shorthand for p.Snapshot().Fingerprint().
func (p *Processor) Fingerprint() ([32]byte, error) {
	return p.Snapshot().Fingerprint()
}
