package intcode

import (
	"math"
	"math/big"
	"testing"
)

func TestValueArithmetic(t *testing.T) {
	big20, _ := new(big.Int).SetString("100000000000000000000", 10)
	tests := []struct {
		name string
		got  Value
		want string
	}{
		{"small add", IntValue(2).Add(IntValue(3)), "5"},
		{"small mul", IntValue(-4).Mul(IntValue(6)), "-24"},
		{"mul by zero", IntValue(math.MaxInt64).Mul(IntValue(0)), "0"},
		{"add overflow", IntValue(math.MaxInt64).Add(IntValue(1)), "9223372036854775808"},
		{"add underflow", IntValue(math.MinInt64).Add(IntValue(-1)), "-9223372036854775809"},
		{"mul overflow", IntValue(10000000000).Mul(IntValue(10000000000)), "100000000000000000000"},
		{"negate min", IntValue(math.MinInt64).Mul(IntValue(-1)), "9223372036854775808"},
		{"min times minus one reversed", IntValue(-1).Mul(IntValue(math.MinInt64)), "9223372036854775808"},
		{"wide add", BigValue(big20).Add(IntValue(1)), "100000000000000000001"},
		{"wide mul", BigValue(big20).Mul(IntValue(-1)), "-100000000000000000000"},
	}
	for _, tt := range tests {
		if tt.got.String() != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, tt.got)
		}
	}
}

func TestValueNormalizes(t *testing.T) {
	v := IntValue(math.MaxInt64).Add(IntValue(1))
	if v.IsInt64() {
		t.Fatalf("Expected %s to be wide", v)
	}
	back := v.Add(IntValue(-1))
	n, ok := back.Int64()
	if !ok || n != math.MaxInt64 {
		t.Errorf("Expected narrow %d, got %s (narrow %v)", int64(math.MaxInt64), back, ok)
	}
	if back != IntValue(math.MaxInt64) {
		t.Error("Normalized value should compare equal with ==")
	}
	if !BigValue(big.NewInt(7)).IsInt64() {
		t.Error("BigValue of a small integer should be narrow")
	}
}

func TestValueCompare(t *testing.T) {
	wide := IntValue(math.MaxInt64).Add(IntValue(1))
	negWide := wide.Mul(IntValue(-1)).Add(IntValue(-1))
	tests := []struct {
		a, b Value
		want int
	}{
		{IntValue(1), IntValue(2), -1},
		{IntValue(2), IntValue(2), 0},
		{wide, IntValue(math.MaxInt64), 1},
		{negWide, IntValue(math.MinInt64), -1},
		{wide, wide.Add(IntValue(0)), 0},
	}
	for _, tt := range tests {
		if got := tt.a.Cmp(tt.b); got != tt.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if wide.Sign() != 1 || negWide.Sign() != -1 || (Value{}).Sign() != 0 {
		t.Error("Sign is wrong")
	}
}

func TestParseValue(t *testing.T) {
	for _, s := range []string{"0", "-17", "9223372036854775807", "-99999999999999999999999"} {
		v, err := ParseValue(s)
		if err != nil {
			t.Errorf("ParseValue(%q) failed: %v", s, err)
			continue
		}
		if v.String() != s {
			t.Errorf("ParseValue(%q) = %s", s, v)
		}
	}
	if _, err := ParseValue("12x"); err == nil {
		t.Error("Expected error for 12x")
	}
}

func TestValueBigIsCopy(t *testing.T) {
	v := IntValue(math.MaxInt64).Add(IntValue(1))
	b := v.Big()
	b.SetInt64(0)
	if v.String() != "9223372036854775808" {
		t.Errorf("Big aliases the value: %s", v)
	}
}
