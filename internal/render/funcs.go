package render

import (
	"errors"
	"fmt"
	"math"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cast"

	"junitreport/internal/domain"
)

// DefaultPercentPlaces is the number of decimal places percent keeps when none are given
const DefaultPercentPlaces = 2

// MaxPercentPlaces is the largest number of decimal places percent accepts
const MaxPercentPlaces = 15

// ErrZeroTotal is returned by the percent helper when asked to divide by zero
var ErrZeroTotal = errors.New("percent: total is zero")

// Percent returns value as a percentage of total, truncated (never rounded up)
// to places decimal digits. total must not be zero.
func Percent(value, total float64, places int) float64 {
	precision := math.Pow(10, float64(places))
	return math.Floor(precision*value*100.0/total) / precision
}

// Result returns the display label for an outcome. Anything that is not a
// known outcome renders as "???".
func Result(v any) string {
	switch o := v.(type) {
	case domain.Outcome:
		return o.String()
	case *domain.Outcome:
		if o != nil {
			return o.String()
		}
	}
	return "???"
}

// Outcomes returns every known outcome in display order
func Outcomes() []domain.Outcome {
	return append([]domain.Outcome(nil), domain.Outcomes...)
}

// FuncMap returns the helpers available to report templates: the sprig text
// functions plus percent, result and outcomes.
func FuncMap(percentPlaces int) template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["percent"] = percentFunc(percentPlaces)
	funcs["result"] = Result
	funcs["outcomes"] = Outcomes
	return funcs
}

// percentFunc adapts Percent for templates, where counts arrive as ints
func percentFunc(defaultPlaces int) func(value, total any, places ...any) (float64, error) {
	return func(value, total any, places ...any) (float64, error) {
		v, err := cast.ToFloat64E(value)
		if err != nil {
			return 0, fmt.Errorf("percent: value: %w", err)
		}
		t, err := cast.ToFloat64E(total)
		if err != nil {
			return 0, fmt.Errorf("percent: total: %w", err)
		}
		if t == 0 {
			return 0, ErrZeroTotal
		}

		p := defaultPlaces
		switch len(places) {
		case 0:
		case 1:
			if p, err = cast.ToIntE(places[0]); err != nil {
				return 0, fmt.Errorf("percent: decimal places: %w", err)
			}
		default:
			return 0, fmt.Errorf("percent: expected at most 3 arguments, got %d", 2+len(places))
		}
		if p < 0 || p > MaxPercentPlaces {
			return 0, fmt.Errorf("percent: decimal places must be between 0 and %d, got %d", MaxPercentPlaces, p)
		}

		return Percent(v, t, p), nil
	}
}
