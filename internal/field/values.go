package field

// Values maps field names to exported values: a single value (or nil) for
// scalar fields and []any for list fields.
type Values map[string]any

// Bool returns a boolean value, false when unset.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Float returns a float value, 0 when unset.
func (v Values) Float(name string) float64 {
	n, _ := asFloat(v[name])
	return n
}

// Floats returns the numeric entries of a list value as floats.
func (v Values) Floats(name string) []float64 {
	list, _ := v[name].([]any)
	out := make([]float64, 0, len(list))

	for _, item := range list {
		if n, ok := asFloat(item); ok {
			out = append(out, n)
		}
	}

	return out
}

// Has reports whether the name holds a non-nil value.
func (v Values) Has(name string) bool {
	return v[name] != nil
}

// Int returns an integer value, 0 when unset.
func (v Values) Int(name string) int64 {
	n, _ := v[name].(int64)
	return n
}

// String returns a string value, "" when unset.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Strings returns the string entries of a list value.
func (v Values) Strings(name string) []string {
	list, _ := v[name].([]any)
	out := make([]string, 0, len(list))

	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
