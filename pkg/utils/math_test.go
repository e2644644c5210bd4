package utils

import (
	"math"
	"testing"
)

func TestMinMax(t *testing.T) {
	if Min(2, 3) != 2 {
		t.Errorf("Min(2, 3) = %d, want 2", Min(2, 3))
	}
	if Max(2, 3) != 3 {
		t.Errorf("Max(2, 3) = %d, want 3", Max(2, 3))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean = %f, want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %f, want 0", got)
	}
}

func TestStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := StdDev(values); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("StdDev = %f, want 2.0", got)
	}
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}

	if got := P50(values); got != 30 {
		t.Errorf("P50 = %f, want 30", got)
	}
	if got := Percentile(values, 0); got != 10 {
		t.Errorf("Percentile(0) = %f, want 10", got)
	}
	if got := Percentile(values, 100); got != 50 {
		t.Errorf("Percentile(100) = %f, want 50", got)
	}
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile(nil) = %f, want 0", got)
	}
}

func TestFactors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{1, []int{1}},
		{12, []int{1, 2, 3, 4, 6, 12}},
		{16, []int{1, 2, 4, 8, 16}},
		{17, []int{1, 17}},
		{0, nil},
	}
	for _, tt := range tests {
		got := Factors(tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("Factors(%d) = %v, want %v", tt.n, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Factors(%d) = %v, want %v", tt.n, got, tt.want)
				break
			}
		}
	}
}
