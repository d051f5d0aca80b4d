package site

import (
	"sync"
	"time"
)

// ParseCounterTarget extracts the leading integer from a highlight value
// such as "50+" or "5+ years". Trailing non-digit characters are ignored.
// Values with no usable leading integer, including "0", fall back to 1.
func ParseCounterTarget(value string) int {
	n := 0
	parsed := false
	for _, r := range value {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		parsed = true
	}
	if !parsed || n < 1 {
		return 1
	}
	return n
}

// Counter animates a highlight number from zero to its target once the
// about section first becomes visible. It runs at most once regardless of
// how often visibility re-triggers it.
type Counter struct {
	target   int
	duration time.Duration
	once     sync.Once
}

// NewCounter builds a counter for the given target. The animation window is
// fixed per counter.
func NewCounter(target int, duration time.Duration) *Counter {
	if target < 1 {
		target = 1
	}
	return &Counter{target: target, duration: duration}
}

// Frames returns the displayed values in order. The sequence is strictly
// increasing, never exceeds the target and ends exactly on it; the display
// starts at zero before the first frame. The step count is capped at the
// target so strict monotonicity holds for small values.
func (c *Counter) Frames(steps int) []int {
	if steps < 1 {
		steps = 1
	}
	if steps > c.target {
		steps = c.target
	}

	frames := make([]int, steps)
	for i := 1; i <= steps; i++ {
		frames[i-1] = c.target * i / steps
	}
	return frames
}

// Run plays the animation, invoking emit for each frame. It returns false
// without emitting anything if the counter has already run.
func (c *Counter) Run(steps int, emit func(int)) bool {
	ran := false
	c.once.Do(func() {
		ran = true
		frames := c.Frames(steps)
		interval := c.duration / time.Duration(len(frames))
		for _, frame := range frames {
			time.Sleep(interval)
			emit(frame)
		}
	})
	return ran
}
