package services

import (
	"sync"
	"time"
)

const orderNumberPrefix = "ORD"

// OrderNumberGenerator produces order numbers of the form ORD + YYYYMMDDHHMMSS.
// The bare wall clock collides when two orders land in the same second, so the
// generator keeps the last issued timestamp and bumps forward one second when
// the clock has not advanced. Numbers are strictly increasing per process; the
// unique index on order_number backstops races between processes.
type OrderNumberGenerator struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{now: time.Now}
}

func (g *OrderNumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().Truncate(time.Second)
	if !now.After(g.last) {
		now = g.last.Add(time.Second)
	}
	g.last = now
	return orderNumberPrefix + now.Format("20060102150405")
}
