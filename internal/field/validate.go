package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rule checks a field's converted values after type conversion succeeded.
type Rule interface {
	Check(f *Field, values []any) []ValidationError
}

// ValidationError describes one value (or the absence of one) that failed a check.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Index   int
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// MatchesGlob requires every string value to match a doublestar pattern, e.g. "**/*.go".
func MatchesGlob(pattern string) Rule {
	return globRule{pattern: pattern}
}

// Max requires every numeric value to be at most n.
func Max(n float64) Rule {
	return boundRule{bound: n, upper: true}
}

// Min requires every numeric value to be at least n.
func Min(n float64) Rule {
	return boundRule{bound: n}
}

// OneOf requires every string value to be one of the given options.
func OneOf(options ...string) Rule {
	return oneOfRule{options: options}
}

// Required requires at least one occurrence.
func Required() Rule {
	return requiredRule{}
}

type boundRule struct {
	bound float64
	upper bool
}

func (r boundRule) Check(f *Field, values []any) []ValidationError {
	var errs []ValidationError

	for idx, v := range values {
		n, ok := asFloat(v)
		if !ok {
			continue
		}

		switch {
		case r.upper && n > r.bound:
			errs = append(errs, ValidationError{
				Field:   f.Name(),
				Message: "must be at most " + formatBound(r.bound),
				Value:   v,
				Index:   idx,
			})
		case !r.upper && n < r.bound:
			errs = append(errs, ValidationError{
				Field:   f.Name(),
				Message: "must be at least " + formatBound(r.bound),
				Value:   v,
				Index:   idx,
			})
		}
	}

	return errs
}

type globRule struct {
	pattern string
}

func (r globRule) Check(f *Field, values []any) []ValidationError {
	var errs []ValidationError

	for idx, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}

		matched, err := doublestar.Match(r.pattern, s)
		if err != nil {
			return append(errs, ValidationError{
				Field:   f.Name(),
				Message: fmt.Sprintf("invalid pattern %q: %v", r.pattern, err),
				Value:   v,
				Index:   idx,
			})
		}

		if !matched {
			errs = append(errs, ValidationError{
				Field:   f.Name(),
				Message: fmt.Sprintf("must match '%s'", r.pattern),
				Value:   v,
				Index:   idx,
			})
		}
	}

	return errs
}

type oneOfRule struct {
	options []string
}

func (r oneOfRule) Check(f *Field, values []any) []ValidationError {
	var errs []ValidationError

	for idx, v := range values {
		s := fmt.Sprint(v)
		if !contains(r.options, s) {
			errs = append(errs, ValidationError{
				Field:   f.Name(),
				Message: "expecting one of " + strings.Join(r.options, ", "),
				Value:   v,
				Index:   idx,
			})
		}
	}

	return errs
}

type requiredRule struct{}

func (requiredRule) Check(f *Field, _ []any) []ValidationError {
	if f.Count() > 0 {
		return nil
	}

	return []ValidationError{{Field: f.Name(), Message: "required", Index: -1}}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}

	return false
}

// convertValue converts one raw value. A non-empty message reports why it could not.
func convertValue(kind Kind, raw any) (any, string) {
	s, isString := raw.(string)

	switch kind {
	case Boolean:
		if !isString {
			return true, ""
		}

		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, "expecting a boolean"
		}

		return b, ""
	case String:
		if !isString {
			return "", ""
		}

		return s, ""
	case Integer:
		if !isString {
			return nil, "expecting an integer value"
		}

		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, "expecting an integer"
		}

		return n, ""
	case Float:
		if !isString {
			return nil, "expecting a float value"
		}

		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, "expecting a float"
		}

		return n, ""
	default:
		return nil, "unsupported kind " + kind.String()
	}
}

func formatBound(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func (f *Field) validate() []ValidationError {
	values, errs := f.convert()
	f.values = values
	f.converted = true

	if f.limit > 0 && len(f.raw) > f.limit {
		errs = append(errs, ValidationError{
			Field:   f.name,
			Message: fmt.Sprintf("expecting at most %d %s", f.limit, plural(f.limit, "value")),
			Value:   f.raw[f.limit],
			Index:   f.limit,
		})
	}

	for _, rule := range f.rules {
		errs = append(errs, rule.Check(f, values)...)
	}

	return errs
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
