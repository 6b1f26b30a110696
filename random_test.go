package sisrejection

import (
	"math"
	"testing"
)

func TestSeededRandomSourceDeterministic(t *testing.T) {
	a := NewSeededRandomSource(42)
	b := NewSeededRandomSource(42)
	for i := 0; i < 20; i++ {
		va := a.DrawExponential(1.0)
		vb := b.DrawExponential(1.0)
		if va != vb {
			t.Errorf(UnequalFloatParameterError, "draw from identically seeded sources", va, vb)
		}
	}
}

func TestSeededRandomSourceExponentialMean(t *testing.T) {
	// P8-style sanity check: mean of Exp(rate) is 1/rate, within loose
	// statistical tolerance over many draws.
	rng := NewSeededRandomSource(7)
	const rate = 2.0
	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += rng.DrawExponential(rate)
	}
	mean := sum / n
	want := 1.0 / rate
	if math.Abs(mean-want) > 0.05 {
		t.Errorf(UnequalFloatParameterError, "sample mean of Exp(rate) draws", want, mean)
	}
}

func TestSeededRandomSourceUniformNeighborRange(t *testing.T) {
	rng := NewSeededRandomSource(1)
	for i := 0; i < 1000; i++ {
		v := rng.UniformNeighbor(5)
		if v < 0 || v >= 5 {
			t.Errorf("UniformNeighbor(5) returned out-of-range value %d", v)
		}
	}
}
