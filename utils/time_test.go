package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatWireTimestamp(t *testing.T) {
	cases := []struct {
		ts   float64
		want string
	}{
		{1712345678, "1712345678"},
		{1712345678.25, "1712345678.25"},
		{1712345678.5, "1712345678.5"},
		{0, "0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatWireTimestamp(tc.ts))
	}
}

func TestNowWireTimestamp(t *testing.T) {
	before := float64(time.Now().Unix())
	got := NowWireTimestamp()
	after := float64(time.Now().Unix()) + 1
	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

func TestSecondsBetween(t *testing.T) {
	from := time.Unix(100, 0)
	to := time.Unix(102, 500_000_000)
	assert.InDelta(t, 2.5, SecondsBetween(from, to), 1e-9)
}
