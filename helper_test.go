package impact

import (
	"fmt"
	"testing"

	"github.com/gonum/floats"
)

const testε = 1e-6

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic")
		}
	}()
	f()
}

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbs(a[i], b[i], testε) {
			return false
		}
	}
	return true
}

func anglesEqual(a, b float64) (bool, error) {
	if floats.EqualWithinAbs(a, b, 1e-5) {
		return true, nil
	}
	return false, fmt.Errorf("angles %f and %f differ", a, b)
}
