package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name     string
		n        int64
		expected string
	}{
		{"small", 999, "999"},
		{"thousand", 1000, "1,000"},
		{"default trials", 10000, "10,000"},
		{"million", 1000000, "1,000,000"},
		{"negative", -12345, "-12,345"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCount(tt.n))
		})
	}
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$5", FormatDollars(5))
	assert.Equal(t, "$1,250", FormatDollars(1250))
	assert.Equal(t, "-$5", FormatDollars(-5))
}

func TestFormatTrajectory(t *testing.T) {
	assert.Equal(t, "-", FormatTrajectory(nil, 6))
	assert.Equal(t, "$5 → $10 → $0", FormatTrajectory([]int64{5, 10, 0}, 6))
	assert.Equal(t, "$5 → $6 → … → $2 → $1 → $0",
		FormatTrajectory([]int64{5, 6, 7, 6, 5, 4, 3, 2, 1, 0}, 5))
}

func TestFormatDiscordTimestamp(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	assert.Equal(t, "<t:1700000000:R>", FormatDiscordTimestamp(ts, "R"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
