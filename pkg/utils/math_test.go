package utils

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-4, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{64, true},
		{96, false},
		{1 << 20, true},
	}

	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestCeilToPowerOfTwo(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"negative_uses_minimum", -7, 2},
		{"zero_uses_minimum", 0, 2},
		{"one_uses_minimum", 1, 2},
		{"two_exact", 2, 2},
		{"three_rounds_up", 3, 4},
		{"exact_power", 64, 64},
		{"rounds_up", 100, 128},
		{"just_over", 4097, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CeilToPowerOfTwo(tt.n); got != tt.want {
				t.Errorf("CeilToPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestCeilToPowerOfTwo_TooLargePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for argument above the highest power of two")
		}
	}()
	CeilToPowerOfTwo(maxIntHeadBit + 1)
}
