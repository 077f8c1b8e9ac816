// Package parse binds command-line tokens to the fields of a collection.
package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ef-ds/deque"

	"github.com/toejough/taskrun/internal/field"
)

// Exported constants.
const (
	UnknownOption ErrorKind = iota
	UnexpectedPositional
)

// Exported variables.
var (
	ErrUnexpectedPositional = errors.New("unexpected argument")
	ErrUnknownOption        = errors.New("unknown option")
)

// ErrorKind distinguishes the ways a token can fail to bind.
type ErrorKind int

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "UnknownOption"
	case UnexpectedPositional:
		return "UnexpectedPositional"
	default:
		return "Unknown"
	}
}

// ParseError reports the first token that could not be bound.
type ParseError struct {
	Kind ErrorKind
	// Name is the option name for UnknownOption.
	Name string
	// Value is the offending token for UnexpectedPositional.
	Value string
}

func (e *ParseError) Error() string {
	if e.Kind == UnknownOption {
		return fmt.Sprintf("unknown option '%s'", e.Name)
	}

	return fmt.Sprintf("unexpected argument '%s'", Truncate(e.Value))
}

// Unwrap lets errors.Is match ErrUnknownOption and ErrUnexpectedPositional.
func (e *ParseError) Unwrap() error {
	if e.Kind == UnknownOption {
		return ErrUnknownOption
	}

	return ErrUnexpectedPositional
}

// Parse scans tokens left to right, appending values to the matching fields and
// firing each field's parse listeners after every binding.
//
// Flags are "-name", "--name" or "--name=value". A non-boolean flag takes the next
// token as its value unless that token also starts with "-" or an inline value was
// given; otherwise it binds true. Tokens without a leading "-" fill the positional
// fields in declaration order.
//
// The first failure stops the scan: a *ParseError for tokens that cannot be bound,
// or the listener's error unchanged.
func Parse(tokens []string, fields *field.Collection) error {
	b := newBinder(tokens, fields)

	for i := 0; i < len(tokens); {
		consumed, err := b.bindAt(i)
		if err != nil {
			return err
		}

		i += consumed
	}

	return nil
}

// Truncate shortens values longer than 100 characters to 96 characters plus "...".
func Truncate(value string) string {
	runes := []rune(value)
	if len(runes) <= maxDisplayLen {
		return value
	}

	return string(runes[:truncatedLen]) + "..."
}

// unexported constants.
const (
	maxDisplayLen = 100
	truncatedLen  = 96
)

type binder struct {
	tokens     []string
	fields     *field.Collection
	positional *deque.Deque // *field.Field slots not yet filled
}

// bindAt binds the token at index i and returns how many tokens it consumed.
func (b *binder) bindAt(i int) (int, error) {
	current := b.tokens[i]
	if !strings.HasPrefix(current, "-") {
		return 1, b.bindPositional(current)
	}

	return b.bindNamed(i, current)
}

func (b *binder) bindNamed(i int, current string) (int, error) {
	name := current[1:]

	var value any = true

	hasInline := false

	if after, ok := strings.CutPrefix(name, "-"); ok {
		name = after
		if n, v, found := strings.Cut(name, "="); found {
			name, value, hasInline = n, v, true
		}
	}

	f, ok := b.fields.Lookup(name)
	if !ok {
		return 0, &ParseError{Kind: UnknownOption, Name: name}
	}

	consumed := 1

	if f.Kind() != field.Boolean && !hasInline && i+1 < len(b.tokens) &&
		!strings.HasPrefix(b.tokens[i+1], "-") {
		value = b.tokens[i+1]
		consumed = 2
	}

	f.AddValue(value)

	return consumed, f.Fire(field.Event{Field: f, Collection: b.fields, Name: name})
}

// bindPositional fills the front positional slot. The slot is released once
// the field holds as many values as its limit; an unlimited slot keeps collecting.
func (b *binder) bindPositional(value string) error {
	front, ok := b.positional.Front()
	if !ok {
		return &ParseError{Kind: UnexpectedPositional, Value: value}
	}

	f, _ := front.(*field.Field)
	f.AddValue(value)

	if limit := f.GetLimit(); limit != 0 && f.Count() >= limit {
		b.positional.PopFront()
	}

	return f.Fire(field.Event{Field: f, Collection: b.fields, Name: f.Name()})
}

func newBinder(tokens []string, fields *field.Collection) *binder {
	positional := deque.New()
	for _, f := range fields.Positional() {
		positional.PushBack(f)
	}

	return &binder{tokens: tokens, fields: fields, positional: positional}
}
