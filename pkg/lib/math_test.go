package lib

import (
	"math"
	"testing"
)

func TestLogAsymptote(t *testing.T) {
	limit := 1.0
	k := 0.5

	if v := LogAsymptote(0, limit, k); v != 0 {
		t.Errorf("expected 0 at x=0, got %.6f", v)
	}

	// Monotonically increasing, bounded by limit.
	prev := 0.0
	for x := 1.0; x <= 100.0; x *= 2 {
		v := LogAsymptote(x, limit, k)
		if v <= prev {
			t.Errorf("expected strictly increasing output, got %.6f <= %.6f at x=%.2f", v, prev, x)
		}
		if v > limit {
			t.Errorf("expected output <= limit (%.2f), got %.6f at x=%.2f", limit, v, x)
		}
		prev = v
	}

	// Negative input clamps to zero.
	if v := LogAsymptote(-5, limit, k); v != 0 {
		t.Errorf("expected 0 for negative x, got %.6f", v)
	}
}

func TestFitGrowthRate(t *testing.T) {
	anchor := 120.0
	target := 0.8
	limit := 1.0

	k := FitGrowthRate(anchor, target, limit, 64)
	if k <= 0 {
		t.Fatalf("expected positive k, got %.8f", k)
	}

	normalized := LogAsymptote(anchor, limit, k)
	if math.Abs(normalized-target) > 0.01 {
		t.Errorf("LogAsymptote(anchor) = %.6f, want ~%.2f (k=%.8f)", normalized, target, k)
	}
}

func TestFitGrowthRateInvalidInputs(t *testing.T) {
	cases := []struct {
		x, target, limit float64
	}{
		{-10, 0.8, 1.0},
		{100, -0.5, 1.0},
		{100, 1.0, 1.0},
		{100, 1.1, 1.0},
	}

	for _, c := range cases {
		if k := FitGrowthRate(c.x, c.target, c.limit, 100); k != -1 {
			t.Errorf("FitGrowthRate(%.2f, %.2f, %.2f) = %.8f, want -1", c.x, c.target, c.limit, k)
		}
	}
}
