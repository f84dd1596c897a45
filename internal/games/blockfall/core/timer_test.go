package core_test

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

func TestTimer(t *testing.T) {
	var timer core.Timer
	timer.Start(1.0, 0.5)

	testCases := []struct {
		now     float64
		elapsed float64
		done    bool
	}{
		{1.0, 0, false},
		{1.25, 0.25, false},
		{1.5, 0.5, true},
		{3.0, 2.0, true},
	}

	for _, tc := range testCases {
		if got := timer.Elapsed(tc.now); got != tc.elapsed {
			t.Errorf("Elapsed(%v) = %v, expected %v", tc.now, got, tc.elapsed)
		}
		if got := timer.Done(tc.now); got != tc.done {
			t.Errorf("Done(%v) = %v, expected %v", tc.now, got, tc.done)
		}
	}

	timer.Start(3.0, 0.5)
	if timer.Done(3.25) {
		t.Error("restarted timer should not be done yet")
	}
	if timer.Life() != 0.5 {
		t.Errorf("Life() = %v, expected 0.5", timer.Life())
	}
}

func TestZeroTimerIsDone(t *testing.T) {
	var timer core.Timer
	if !timer.Done(0) {
		t.Error("zero-length timer should be done immediately")
	}
}
