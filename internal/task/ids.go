package task

import "time"

// idGenerator issues strictly increasing ids seeded from the wall clock.
type idGenerator struct {
	now  func() time.Time
	last int64
}

func newIDGenerator(now func() time.Time) *idGenerator {
	if now == nil {
		now = time.Now
	}
	return &idGenerator{now: now}
}

// Next returns max(now in milliseconds, last issued + 1).
func (g *idGenerator) Next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records ids that already exist so Next never repeats them.
func (g *idGenerator) Observe(tasks []Task) {
	for _, t := range tasks {
		if t.ID > g.last {
			g.last = t.ID
		}
	}
}
