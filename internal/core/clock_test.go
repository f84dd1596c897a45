package core

import "testing"

func TestManualClock(t *testing.T) {
	var c ManualClock
	if c.Now() != 0 {
		t.Fatalf("Now() = %v, expected 0", c.Now())
	}

	c.Advance(0.25)
	c.Advance(0.25)
	if c.Now() != 0.5 {
		t.Errorf("Now() = %v, expected 0.5", c.Now())
	}

	c.Set(3)
	if c.Now() != 3 {
		t.Errorf("Now() = %v, expected 3", c.Now())
	}
}

func TestSystemClockStartsNearZero(t *testing.T) {
	c := NewSystemClock()
	now := c.Now()
	if now < 0 || now > 1 {
		t.Errorf("fresh SystemClock reads %v", now)
	}
	if c.Now() < now {
		t.Error("SystemClock went backwards")
	}
}
