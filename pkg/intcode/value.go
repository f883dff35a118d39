package intcode

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

// Value is one Intcode word. Words are unbounded integers: values that fit
// in an int64 are held inline, and Add or Mul results that do not fit are
// promoted to a big.Int. The zero Value is 0.
type Value struct {
	n    int64
	wide *big.Int // Non-nil only when the value does not fit in int64
}

// IntValue returns the Value n.
func IntValue(n int64) Value {
	return Value{n: n}
}

// BigValue returns a Value equal to b. b is copied.
func BigValue(b *big.Int) Value {
	if b.IsInt64() {
		return Value{n: b.Int64()}
	}
	return Value{wide: new(big.Int).Set(b)}
}

// Values converts a slice of int64 to Values.
func Values(ns ...int64) []Value {
	out := make([]Value, len(ns))
	for i, n := range ns {
		out[i] = Value{n: n}
	}
	return out
}

// ParseValue parses a decimal integer of any size.
func ParseValue(s string) (Value, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Value{n: n}, nil
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Value{}, fmt.Errorf("invalid integer %q", s)
	}
	return BigValue(b), nil
}

// Int64 returns the value and whether it fits in an int64.
func (v Value) Int64() (int64, bool) {
	if v.wide != nil {
		return 0, false
	}
	return v.n, true
}

// IsInt64 reports whether the value fits in an int64.
func (v Value) IsInt64() bool {
	return v.wide == nil
}

// Big returns the value as a new big.Int.
func (v Value) Big() *big.Int {
	if v.wide != nil {
		return new(big.Int).Set(v.wide)
	}
	return big.NewInt(v.n)
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	if v.wide != nil {
		return v.wide.Sign()
	}
	switch {
	case v.n < 0:
		return -1
	case v.n > 0:
		return 1
	}
	return 0
}

// Cmp compares v and w and returns -1, 0 or +1.
func (v Value) Cmp(w Value) int {
	if v.wide == nil && w.wide == nil {
		switch {
		case v.n < w.n:
			return -1
		case v.n > w.n:
			return 1
		}
		return 0
	}
	return v.Big().Cmp(w.Big())
}

// Equal reports whether v and w are the same integer.
func (v Value) Equal(w Value) bool {
	return v.Cmp(w) == 0
}

// Add returns v + w.
func (v Value) Add(w Value) Value {
	if v.wide == nil && w.wide == nil {
		s := v.n + w.n
		// Overflow iff both operands have the same sign and the sum does not.
		if (v.n >= 0) == (w.n >= 0) && (s >= 0) != (v.n >= 0) {
			return BigValue(new(big.Int).Add(big.NewInt(v.n), big.NewInt(w.n)))
		}
		return Value{n: s}
	}
	return BigValue(new(big.Int).Add(v.Big(), w.Big()))
}

// Mul returns v * w.
func (v Value) Mul(w Value) Value {
	if v.wide == nil && w.wide == nil {
		a, b := v.n, w.n
		if a == 0 || b == 0 {
			return Value{}
		}
		r := a * b
		if !(a == -1 && b == math.MinInt64) && !(b == -1 && a == math.MinInt64) && r/b == a {
			return Value{n: r}
		}
		return BigValue(new(big.Int).Mul(big.NewInt(a), big.NewInt(b)))
	}
	return BigValue(new(big.Int).Mul(v.Big(), w.Big()))
}

func (v Value) String() string {
	if v.wide != nil {
		return v.wide.String()
	}
	return strconv.FormatInt(v.n, 10)
}

// MarshalCBOR encodes narrow values as CBOR integers and wide values as
// bignums.
func (v Value) MarshalCBOR() ([]byte, error) {
	if v.wide != nil {
		return cborEncMode.Marshal(v.wide)
	}
	return cborEncMode.Marshal(v.n)
}

// UnmarshalCBOR decodes either form written by MarshalCBOR.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var n int64
	if err := cbor.Unmarshal(data, &n); err == nil {
		*v = Value{n: n}
		return nil
	}
	var b big.Int
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	*v = BigValue(&b)
	return nil
}

// address converts v to a memory address.
func (v Value) address() (int64, error) {
	if v.wide != nil {
		return 0, fmt.Errorf("%w: %s", ErrAddressOutOfRange, v)
	}
	return v.n, nil
}
