package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCounterTarget(t *testing.T) {
	cases := []struct {
		value string
		want  int
	}{
		{"50+", 50},
		{"5+", 5},
		{"12 years", 12},
		{"7", 7},
		{"abc", 1},
		{"", 1},
		{"0", 1},
		{"+5", 1},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCounterTarget(tc.value))
		})
	}
}

func TestCounterFramesStrictlyIncreasingToTarget(t *testing.T) {
	counter := NewCounter(50, time.Second)

	frames := counter.Frames(60)
	require.NotEmpty(t, frames)

	prev := 0
	for i, frame := range frames {
		assert.Greater(t, frame, prev, "frame %d must exceed the previous value", i)
		assert.LessOrEqual(t, frame, 50, "frame %d must never exceed the target", i)
		prev = frame
	}
	assert.Equal(t, 50, frames[len(frames)-1], "animation must end exactly on the target")
}

func TestCounterFramesSmallTarget(t *testing.T) {
	counter := NewCounter(3, time.Second)
	assert.Equal(t, []int{1, 2, 3}, counter.Frames(10))
}

func TestCounterRunsAtMostOnce(t *testing.T) {
	counter := NewCounter(5, 5*time.Millisecond)

	var first []int
	ran := counter.Run(5, func(v int) { first = append(first, v) })
	require.True(t, ran)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, first)

	emitted := 0
	ran = counter.Run(5, func(int) { emitted++ })
	assert.False(t, ran, "a counter re-triggered by visibility must not run again")
	assert.Zero(t, emitted)
}
