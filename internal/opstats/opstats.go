// Package opstats implements the minimal statistics collection squaremap's
// own test suite needs to check its complexity properties: the total
// number of key comparisons performed by a sequence of operations.
//
// It is a deliberately small relative of github.com/NVIDIA/proxyfs's
// bucketstats package. bucketstats' Totaler interface
// (Increment/Add/TotalGet) is the shape every statistic in that package
// builds on; opstats carries exactly that shape and nothing of
// bucketstats' registration, bucketing or string-formatting machinery,
// because squaremap's tests only ever need a running total, never a
// distribution. Complexity-measurement instrumentation is explicitly kept
// out of the core container; this package is test-only support and lives
// under internal/ accordingly.
package opstats

import "sync/atomic"

// Counter is a concurrency-safe running total, matching the shape of
// bucketstats.Totaler without its bucketing or formatting surface.
type Counter struct {
	total atomic.Uint64
}

// Increment adds one to the counter.
func (c *Counter) Increment() {
	c.total.Add(1)
}

// Add adds value to the counter.
func (c *Counter) Add(value uint64) {
	c.total.Add(value)
}

// TotalGet returns the counter's running total.
func (c *Counter) TotalGet() uint64 {
	return c.total.Load()
}

// Reset zeroes the counter, for reuse across successive test phases.
func (c *Counter) Reset() {
	c.total.Store(0)
}
