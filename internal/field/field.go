// Package field provides the typed, validated option definitions that the
// argument binder fills and the help renderer describes.
package field

import "slices"

// Exported constants.
const (
	Boolean Kind = iota
	String
	Integer
	Float
)

// ExportPolicy values.
const (
	// ExportScalar exports the last accumulated value, or nil when unset.
	ExportScalar ExportPolicy = iota
	// ExportList exports every accumulated value in encounter order.
	ExportList
	// ExportSkip leaves the field out of the exported values.
	ExportSkip
)

// ExportPolicy controls how a field's values are shaped by Collection.Export.
type ExportPolicy int

// String returns the policy name.
func (p ExportPolicy) String() string {
	switch p {
	case ExportScalar:
		return "scalar"
	case ExportList:
		return "list"
	case ExportSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Field is a named command-line option definition.
// Use NewBoolean, NewString, NewInteger or NewFloat, then chain builder methods.
type Field struct {
	name        string
	kind        Kind
	aliases     []string
	description string
	hint        string
	limit       int // maximum occurrences, 0 = unlimited
	export      ExportPolicy
	positional  bool
	rules       []Rule
	listeners   []Listener
	raw         []any // string tokens or boolean true, in encounter order
	values      []any // converted values, set by Validate
	converted   bool
}

// New creates a field of the given kind accepting a single occurrence.
func New(name string, kind Kind) *Field {
	return &Field{name: name, kind: kind, limit: 1}
}

// NewBoolean creates a boolean field. Boolean fields never consume a following token.
func NewBoolean(name string) *Field {
	return New(name, Boolean)
}

// NewFloat creates a float field.
func NewFloat(name string) *Field {
	return New(name, Float)
}

// NewInteger creates an integer field.
func NewInteger(name string) *Field {
	return New(name, Integer)
}

// NewString creates a string field.
func NewString(name string) *Field {
	return New(name, String)
}

// AddValue appends a raw value (a string token or boolean true).
func (f *Field) AddValue(v any) {
	f.raw = append(f.raw, v)
	f.converted = false
}

// Aliases adds alternate names the field can be addressed by (e.g. "v", "vv").
func (f *Field) Aliases(aliases ...string) *Field {
	f.aliases = append(f.aliases, aliases...)
	return f
}

// Clone returns a copy of the declaration with no accumulated values.
func (f *Field) Clone() *Field {
	return &Field{
		name:        f.name,
		kind:        f.kind,
		aliases:     slices.Clone(f.aliases),
		description: f.description,
		hint:        f.hint,
		limit:       f.limit,
		export:      f.export,
		positional:  f.positional,
		rules:       slices.Clone(f.rules),
		listeners:   slices.Clone(f.listeners),
	}
}

// Count returns the number of accumulated raw values.
func (f *Field) Count() int {
	return len(f.raw)
}

// Description sets the help text for this field.
func (f *Field) Description(s string) *Field {
	f.description = s
	return f
}

// Export sets how the field's values surface in the exported values.
func (f *Field) Export(p ExportPolicy) *Field {
	f.export = p
	return f
}

// Fire dispatches a parse event to every listener in registration order.
// The first listener error stops dispatch and is returned.
func (f *Field) Fire(ev Event) error {
	for _, listener := range f.listeners {
		err := listener(ev)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetAliases returns the field's aliases in declaration order.
func (f *Field) GetAliases() []string {
	return f.aliases
}

// GetDescription returns the configured description.
func (f *Field) GetDescription() string {
	return f.description
}

// GetExport returns the export policy.
func (f *Field) GetExport() ExportPolicy {
	return f.export
}

// GetHint returns the value hint shown in usage, defaulting to the field name.
func (f *Field) GetHint() string {
	if f.hint == "" {
		return f.name
	}

	return f.hint
}

// GetLimit returns the maximum number of occurrences (0 = unlimited).
func (f *Field) GetLimit() int {
	return f.limit
}

// Hint sets the short value hint rendered as <hint> in usage.
func (f *Field) Hint(s string) *Field {
	f.hint = s
	return f
}

// IsPositional reports whether the field binds unnamed arguments.
func (f *Field) IsPositional() bool {
	return f.positional
}

// IsRequired reports whether the field carries a Required rule.
func (f *Field) IsRequired() bool {
	for _, r := range f.rules {
		if _, ok := r.(requiredRule); ok {
			return true
		}
	}

	return false
}

// Kind returns the field's value kind.
func (f *Field) Kind() Kind {
	return f.kind
}

// Limit sets the maximum number of occurrences. Zero means unlimited.
func (f *Field) Limit(n int) *Field {
	f.limit = n
	return f
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// OnParse registers a listener fired each time the binder binds a value to this field.
func (f *Field) OnParse(listener Listener) *Field {
	f.listeners = append(f.listeners, listener)
	return f
}

// Positional marks the field as bound by unnamed arguments, in declaration order.
func (f *Field) Positional() *Field {
	f.positional = true
	return f
}

// Raw returns the accumulated raw values in encounter order.
func (f *Field) Raw() []any {
	return f.raw
}

// Required adds the Required rule.
func (f *Field) Required() *Field {
	return f.Rule(Required())
}

// Rule appends validation rules, run after type conversion.
func (f *Field) Rule(rules ...Rule) *Field {
	f.rules = append(f.rules, rules...)
	return f
}

// Values returns the converted values. Values that fail conversion are omitted.
func (f *Field) Values() []any {
	if !f.converted {
		f.values, _ = f.convert()
		f.converted = true
	}

	return f.values
}

// Kind identifies the value type of a field.
type Kind int

// String returns the kind name used in help and error messages.
func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// convert turns raw values into typed values, reporting every value that does not fit the kind.
func (f *Field) convert() ([]any, []ValidationError) {
	values := make([]any, 0, len(f.raw))

	var errs []ValidationError

	for idx, raw := range f.raw {
		v, msg := convertValue(f.kind, raw)
		if msg != "" {
			errs = append(errs, ValidationError{Field: f.name, Message: msg, Value: raw, Index: idx})
			continue
		}

		values = append(values, v)
	}

	return values, errs
}
