package stats

import (
	"sort"

	"junitreport/internal/domain"
)

// Groups maps a group label to the Collector holding that group's test cases
type Groups map[string]*Collector

// Get returns the Collector for name, creating and inserting an empty one on first use
func (g Groups) Get(name string) *Collector {
	c, ok := g[name]
	if !ok {
		c = NewCollector()
		g[name] = c
	}
	return c
}

// Add routes a test case to the Collector of its group
func (g Groups) Add(tc domain.TestCase) {
	g.Get(tc.Group).Add(tc)
}

// Names returns the group labels in sorted order
func (g Groups) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tests returns the number of test cases across all groups
func (g Groups) Tests() int {
	total := 0
	for _, c := range g {
		total += c.Tests()
	}
	return total
}
