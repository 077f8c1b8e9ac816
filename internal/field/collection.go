package field

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Collection is the insertion-ordered set of fields for one task invocation.
type Collection struct {
	fields     *orderedmap.OrderedMap[string, *Field]
	aliases    map[string]string // alias -> field name
	positional []string
}

// NewCollection creates a collection holding the given fields.
func NewCollection(fields ...*Field) (*Collection, error) {
	c := &Collection{
		fields:  orderedmap.New[string, *Field](),
		aliases: map[string]string{},
	}

	err := c.Add(fields...)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Add appends fields in order. Names and aliases must be unique across the collection.
func (c *Collection) Add(fields ...*Field) error {
	for _, f := range fields {
		err := c.add(f)
		if err != nil {
			return err
		}
	}

	return nil
}

// Export shapes every field's converted values according to its export policy.
func (c *Collection) Export() Values {
	out := Values{}

	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		f := pair.Value

		switch f.GetExport() {
		case ExportSkip:
			continue
		case ExportList:
			out[f.Name()] = append([]any{}, f.Values()...)
		case ExportScalar:
			values := f.Values()
			if len(values) == 0 {
				out[f.Name()] = nil
				continue
			}

			out[f.Name()] = values[len(values)-1]
		}
	}

	return out
}

// Fields returns the fields in declaration order.
func (c *Collection) Fields() []*Field {
	out := make([]*Field, 0, c.fields.Len())
	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// Get returns the field with exactly this name.
func (c *Collection) Get(name string) (*Field, bool) {
	return c.fields.Get(name)
}

// Len returns the number of fields.
func (c *Collection) Len() int {
	return c.fields.Len()
}

// Lookup resolves a name or alias to its field.
func (c *Collection) Lookup(name string) (*Field, bool) {
	if f, ok := c.fields.Get(name); ok {
		return f, true
	}

	target, ok := c.aliases[name]
	if !ok {
		return nil, false
	}

	return c.fields.Get(target)
}

// Positional returns the positional fields in declaration order.
func (c *Collection) Positional() []*Field {
	out := make([]*Field, 0, len(c.positional))
	for _, name := range c.positional {
		f, _ := c.fields.Get(name)
		out = append(out, f)
	}

	return out
}

// Validate converts and checks every field, in declaration order.
// It returns every problem found; an empty result means the values are usable.
func (c *Collection) Validate() []ValidationError {
	var errs []ValidationError

	for pair := c.fields.Oldest(); pair != nil; pair = pair.Next() {
		errs = append(errs, pair.Value.validate()...)
	}

	return errs
}

// Exported variables.
var (
	ErrEmptyName           = errors.New("field name is empty")
	ErrFieldAlreadyDefined = errors.New("field already defined")
)

func (c *Collection) add(f *Field) error {
	if f.Name() == "" {
		return ErrEmptyName
	}

	if c.taken(f.Name()) {
		return fmt.Errorf("%w: %s", ErrFieldAlreadyDefined, f.Name())
	}

	seen := map[string]bool{f.Name(): true}

	for _, alias := range f.GetAliases() {
		if alias == "" {
			return fmt.Errorf("%w: alias of %s", ErrEmptyName, f.Name())
		}

		if seen[alias] || c.taken(alias) {
			return fmt.Errorf("%w: %s", ErrFieldAlreadyDefined, alias)
		}

		seen[alias] = true
	}

	c.fields.Set(f.Name(), f)

	for _, alias := range f.GetAliases() {
		c.aliases[alias] = f.Name()
	}

	if f.IsPositional() {
		c.positional = append(c.positional, f.Name())
	}

	return nil
}

func (c *Collection) taken(name string) bool {
	if _, ok := c.fields.Get(name); ok {
		return true
	}

	_, ok := c.aliases[name]

	return ok
}
