package core

// DefaultGravityInterval is the gravity pace in seconds.
const DefaultGravityInterval = 0.2

// Timer is an interval gate over a caller-supplied clock reading in seconds.
type Timer struct {
	start float64
	life  float64
}

// Start (re)arms the timer at now for life seconds.
func (t *Timer) Start(now, life float64) {
	t.start = now
	t.life = life
}

// Elapsed returns the seconds since Start.
func (t Timer) Elapsed(now float64) float64 {
	return now - t.start
}

// Done reports whether the interval has expired.
func (t Timer) Done(now float64) bool {
	return t.Elapsed(now) >= t.life
}

// Life returns the armed interval.
func (t Timer) Life() float64 {
	return t.life
}
