package parser

import (
	"errors"
	"fmt"
	"strings"

	"junitreport/internal/domain"
)

// MarkerKind names a result marker element
type MarkerKind string

const (
	MarkerSkipped MarkerKind = "skipped"
	MarkerFailure MarkerKind = "failure"
	MarkerError   MarkerKind = "error"
)

// ErrAmbiguousResult is returned when a test case carries markers of more than one kind
var ErrAmbiguousResult = errors.New("ambiguous result markers")

// Markers returns the distinct marker kinds present on the test case
func (tc *TestCase) Markers() []MarkerKind {
	var kinds []MarkerKind
	if len(tc.Skipped) > 0 {
		kinds = append(kinds, MarkerSkipped)
	}
	if len(tc.Failures) > 0 {
		kinds = append(kinds, MarkerFailure)
	}
	if len(tc.Errors) > 0 {
		kinds = append(kinds, MarkerError)
	}
	return kinds
}

// Classify maps the result markers of a test case to exactly one outcome.
// No marker is a success; repeated markers of one kind classify as that kind.
// Markers of different kinds are never resolved silently: the zero Outcome
// is returned together with ErrAmbiguousResult.
func Classify(tc *TestCase) (domain.Outcome, error) {
	kinds := tc.Markers()
	switch len(kinds) {
	case 0:
		return domain.Success, nil
	case 1:
		switch kinds[0] {
		case MarkerSkipped:
			return domain.Skipped, nil
		case MarkerFailure:
			return domain.Failure, nil
		case MarkerError:
			return domain.Error, nil
		}
	}

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return 0, fmt.Errorf("%w: %s", ErrAmbiguousResult, strings.Join(names, ", "))
}
