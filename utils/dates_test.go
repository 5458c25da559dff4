package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 10, 14, 30, 45, 123, time.UTC)

	got := BeginningOfDay(ts)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 6, 12, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 2, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}

func TestGenerateRandomString(t *testing.T) {
	ref := GenerateRandomString(6)

	assert.Len(t, ref, 6)
	for _, ch := range ref {
		assert.Contains(t, referenceAlphabet, string(ch))
	}

	// two references should practically never collide
	assert.NotEqual(t, ref, GenerateRandomString(6))
}
