package parser

// Parser reads a result document into its suites and test cases
type Parser interface {
	ParseFile(path string) (*Document, error)
}
