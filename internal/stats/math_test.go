package stats

import (
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"Empty", []float64{}, 0},
		{"Nil", nil, 0},
		{"SingleItem", []float64{5.5}, 5.5},
		{"Several", []float64{1, 2, 3, 4}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); got != tt.expected {
				t.Errorf("Mean() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		decimals int
		expected float64
	}{
		{"TwoDecimals", 3.14159, 2, 3.14},
		{"RoundsUp", 2.675001, 2, 2.68},
		{"OneDecimal", 4.25, 1, 4.3},
		{"Whole", 7, 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundTo(tt.v, tt.decimals); got != tt.expected {
				t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.v, tt.decimals, got, tt.expected)
			}
		})
	}
}

func TestSafeDiv(t *testing.T) {
	if got := safeDiv(10, 0); got != 0 {
		t.Errorf("safeDiv(10, 0) = %v, want 0", got)
	}
	if got := safeDiv(10, 4); got != 2.5 {
		t.Errorf("safeDiv(10, 4) = %v, want 2.5", got)
	}
}
