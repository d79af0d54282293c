package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	const base = time.Second

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDurationZeroFactor(t *testing.T) {
	assert.Equal(t, time.Minute, Duration(time.Minute, 0))
}

func TestExponentialBackoff(t *testing.T) {
	const (
		base = 200 * time.Millisecond
		max  = 5 * time.Second
	)

	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{name: "first attempt", attempt: 0, want: base},
		{name: "doubles per attempt", attempt: 2, want: 800 * time.Millisecond},
		{name: "capped at max", attempt: 10, want: max},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExponentialBackoff(base, max, tt.attempt, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}
