package pricing

import "testing"

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		base      float64
		wantTax   float64
		wantTotal float64
	}{
		{"list price 150", 150, 12.00, 162.00},
		{"list price 1200", 1200, 96.00, 1296.00},
		{"zero base", 0, 0, 0},
		{"fractional base", 99.99, 8.00, 107.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Compute(tt.base)
			if q.Base != tt.base {
				t.Errorf("Base = %v, want %v", q.Base, tt.base)
			}
			if q.Tax != tt.wantTax {
				t.Errorf("Tax = %v, want %v", q.Tax, tt.wantTax)
			}
			if q.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", q.Total, tt.wantTotal)
			}
		})
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{12.345, 12.35}, // half rounds up
		{12.344, 12.34},
		{1.005, 1.01}, // 1.005*100 is 100.4999... in binary; epsilon guard
		{2.675, 2.68},
		{-12.345, -12.35}, // half away from zero, not toward +inf
		{-1.005, -1.01},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
