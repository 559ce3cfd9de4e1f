package domain

// TestCase is one reported test execution read from a result document
type TestCase struct {
	Name     string  // Test case name
	Group    string  // Grouping key, usually the fully-qualified class name
	Suite    string  // Name of the innermost enclosing suite
	Document string  // Path of the result document the case was read from
	Duration float64 // Elapsed time in seconds
	Outcome  Outcome // Classified result
	Message  string  // Message of the first result marker, if any
}
