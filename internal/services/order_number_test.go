package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderNumber_Format(t *testing.T) {
	g := NewOrderNumberGenerator()
	number := g.Next()
	assert.Regexp(t, `^ORD\d{14}$`, number)
}

func TestOrderNumber_AdvancingClock(t *testing.T) {
	current := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	g := &OrderNumberGenerator{now: func() time.Time { return current }}

	first := g.Next()
	current = current.Add(3 * time.Second)
	second := g.Next()

	assert.Equal(t, "ORD20260830100000", first)
	assert.Equal(t, "ORD20260830100003", second)
}

func TestOrderNumber_SameSecondStaysUnique(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	g := &OrderNumberGenerator{now: func() time.Time { return fixed }}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		number := g.Next()
		assert.Regexp(t, `^ORD\d{14}$`, number)
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
}

func TestOrderNumber_ClockBehindLastIssued(t *testing.T) {
	current := time.Date(2026, 8, 30, 10, 0, 5, 0, time.UTC)
	g := &OrderNumberGenerator{now: func() time.Time { return current }}

	first := g.Next()
	current = current.Add(-2 * time.Second)
	second := g.Next()

	assert.Equal(t, "ORD20260830100005", first)
	assert.Equal(t, "ORD20260830100006", second)
}
