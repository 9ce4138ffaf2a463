package sim

import "time"

// maxFrame caps the elapsed time credited to a single frame, so a stalled
// window (drag, suspend) does not burst hundreds of catch-up ticks.
const maxFrame = 250 * time.Millisecond

// FixedStep converts variable frame times into a whole number of
// fixed-length simulation ticks, carrying the remainder between frames.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep controller targeting the given
// ticks-per-second rate.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return &FixedStep{step: time.Second / time.Duration(tps)}
}

// Step returns one tick's duration.
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// Advance credits elapsed wall time and returns how many ticks to run now:
// zero or more, until the remaining accumulator is below one tick.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrame {
		elapsed = maxFrame
	}
	f.accumulator += elapsed
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}
