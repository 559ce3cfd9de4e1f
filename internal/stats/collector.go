package stats

import "junitreport/internal/domain"

// Collector accumulates test cases and derives summary statistics from them.
// Cases are only ever appended; every statistic is computed on read.
type Collector struct {
	cases []domain.TestCase
}

// NewCollector creates an empty Collector
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a test case
func (c *Collector) Add(tc domain.TestCase) {
	c.cases = append(c.cases, tc)
}

// Cases returns the collected test cases in insertion order.
// The returned slice is a copy; modifying it does not affect the Collector.
func (c *Collector) Cases() []domain.TestCase {
	out := make([]domain.TestCase, len(c.cases))
	copy(out, c.cases)
	return out
}

// Tests returns the number of collected test cases
func (c *Collector) Tests() int {
	return len(c.cases)
}

// Time returns the sum of all test case durations in seconds
func (c *Collector) Time() float64 {
	total := 0.0
	for _, tc := range c.cases {
		total += tc.Duration
	}
	return total
}

// Skipped returns the number of skipped test cases
func (c *Collector) Skipped() int {
	return c.Count(domain.Skipped)
}

// Failures returns the number of failed test cases
func (c *Collector) Failures() int {
	return c.Count(domain.Failure)
}

// Errors returns the number of errored test cases
func (c *Collector) Errors() int {
	return c.Count(domain.Error)
}

// Successes returns the number of successful test cases
func (c *Collector) Successes() int {
	return c.Count(domain.Success)
}

// NonSkipped returns the number of test cases that were not skipped, never below zero
func (c *Collector) NonSkipped() int {
	return max(c.Tests()-c.Skipped(), 0)
}

// Unclassified returns the number of test cases whose outcome is not one of the
// four known outcomes. Such cases count towards Tests only.
func (c *Collector) Unclassified() int {
	n := 0
	for _, tc := range c.cases {
		if !tc.Outcome.Valid() {
			n++
		}
	}
	return n
}

// Count returns the number of test cases with outcome o
func (c *Collector) Count(o domain.Outcome) int {
	n := 0
	for _, tc := range c.cases {
		if tc.Outcome == o {
			n++
		}
	}
	return n
}
