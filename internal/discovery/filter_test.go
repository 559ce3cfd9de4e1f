package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			paths:    []string{"TEST-User.xml", "TEST-Payment.xml", "coverage.json"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "extension pattern",
			paths:    []string{"TEST-User.xml", "TEST-Payment.xml", "coverage.json"},
			pattern:  "*.xml",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			paths:    []string{"TEST-User.xml", "TEST-Payment.xml", "TEST-Order.xml", "TEST-PaymentService.xml"},
			pattern:  "*Payment*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			paths:    []string{"TEST-User.xml", "TEST-Payment.xml", "junit.xml"},
			pattern:  "TEST-",
			expected: 2,
		},
		{
			name:     "no matches",
			paths:    []string{"TEST-User.xml", "TEST-Payment.xml"},
			pattern:  "*NonExistent*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			paths:    []string{"/build/reports/TEST-User.xml", "/build/reports/index.html"},
			pattern:  "TEST-*.xml",
			expected: 1,
		},
		{
			name:     "extension pattern rejects backups and archives",
			paths:    []string{"TEST-a.xml", "TEST-a.xml~", "TEST-a.xml.bak", "coverage.xml.gz"},
			pattern:  "*.xml",
			expected: 1,
		},
		{
			name:     "wildcard literals must line up",
			paths:    []string{"TEST-User.xml", "User-TEST.xml"},
			pattern:  "TEST-*.xml",
			expected: 1,
		},
		{
			name:     "question mark",
			paths:    []string{"junit1.xml", "junit22.xml"},
			pattern:  "junit?.xml",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewFilter(tt.pattern).FilterByName(tt.paths)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_Match_EdgeCases(t *testing.T) {
	t.Run("empty path list", func(t *testing.T) {
		result := NewFilter("*.xml").FilterByName([]string{})
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("only wildcards", func(t *testing.T) {
		if !NewFilter("*").Match("anything.xml") {
			t.Error("expected * to match")
		}
		if !NewFilter("**").Match("anything.xml") {
			t.Error("expected ** to match")
		}
	})

	t.Run("editor backup of a result file", func(t *testing.T) {
		f := NewFilter("*.xml")
		for _, name := range []string{"x.xml~", "x.xml.bak", "reports/x.xml.orig"} {
			if f.Match(name) {
				t.Errorf("expected %s not to match *.xml", name)
			}
		}
	})

	t.Run("pattern with multiple wildcards", func(t *testing.T) {
		paths := []string{"TEST-UserService.xml", "TEST-UserController.xml", "TEST-Payment.xml"}
		result := NewFilter("*User*.xml").FilterByName(paths)
		if len(result) != 2 {
			t.Errorf("expected 2 matches, got %d", len(result))
		}
	})
}
