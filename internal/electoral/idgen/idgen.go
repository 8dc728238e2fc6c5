// Package idgen issues identifiers for new electoral entities.
//
// Two shapes are produced: sequential integers for candidates ("1", "2", ...,
// one above the highest ever seen) and prefixed time tokens for everything
// else ("m1738323000000"). Tokens are strictly increasing within a Generator,
// so two calls in the same millisecond still get distinct values.
package idgen

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// Token prefixes per entity.
const (
	PrefixTable      = "m"
	PrefixAgent      = "p"
	PrefixTallySheet = "a"
)

// Generator issues monotonic prefixed tokens.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

type Option func(*Generator)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns prefix followed by a value greater than any previously issued
// by this generator. The value tracks wall-clock milliseconds and falls back
// to last+1 when the clock has not advanced (or went backwards).
func (g *Generator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.now().UnixMilli()
	if v <= g.last {
		v = g.last + 1
	}
	g.last = v
	return prefix + strconv.FormatInt(v, 10)
}

// MaxNumeric returns the largest non-negative integer id in ids, or 0.
func MaxNumeric(ids []string) int64 {
	var maxID int64
	for _, s := range ids {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || n < 0 {
			continue
		}
		maxID = max(maxID, n)
	}
	return maxID
}
