// Package help content structures.
// This file derives the help entries from a field collection.

package help

import (
	"slices"
	"strings"

	"github.com/toejough/taskrun/internal/field"
)

// Option is one entry of the OPTIONS block.
type Option struct {
	Names []string // "--name" first, then "-alias" in declaration order
	Hint  string   // "<hint>", empty for boolean fields
	Desc  string
}

// Argument is one entry of the ARGUMENTS block.
type Argument struct {
	Hint     string // "<hint>"
	Desc     string
	Required bool
	Repeats  bool
}

// ListArguments returns the positional fields in declaration order.
func ListArguments(fields *field.Collection) []Argument {
	var out []Argument

	for _, f := range fields.Positional() {
		out = append(out, Argument{
			Hint:     "<" + f.GetHint() + ">",
			Desc:     f.GetDescription(),
			Required: f.IsRequired(),
			Repeats:  f.GetLimit() != 1,
		})
	}

	return out
}

// ListOptions returns the non-positional fields sorted by name.
func ListOptions(fields *field.Collection) []Option {
	var out []Option

	for _, f := range fields.Fields() {
		if f.IsPositional() {
			continue
		}

		opt := Option{Names: []string{"--" + f.Name()}, Desc: f.GetDescription()}
		for _, alias := range f.GetAliases() {
			opt.Names = append(opt.Names, "-"+alias)
		}

		if f.Kind() != field.Boolean {
			opt.Hint = "<" + f.GetHint() + ">"
		}

		out = append(out, opt)
	}

	slices.SortStableFunc(out, func(a, b Option) int {
		return strings.Compare(a.Names[0], b.Names[0])
	})

	return out
}

// UsageTokens returns one usage token per field: boolean fields first, then
// the other flag fields, then positional fields, each group in declaration order.
func UsageTokens(fields *field.Collection) []string {
	var booleans, others, positionals []string

	for _, f := range fields.Fields() {
		switch {
		case f.IsPositional():
			positionals = append(positionals, positionalUsage(f))
		case f.Kind() == field.Boolean:
			booleans = append(booleans, flagUsage(f))
		default:
			others = append(others, flagUsage(f))
		}
	}

	return slices.Concat(booleans, others, positionals)
}

func flagUsage(f *field.Field) string {
	isBoolean := f.Kind() == field.Boolean
	hint := "<" + f.GetHint() + ">"

	name := "--" + f.Name()
	if !isBoolean {
		name += "=" + hint
	}

	opts := []string{name}

	for _, alias := range f.GetAliases() {
		opt := "-" + alias
		if !isBoolean {
			opt += " " + hint
		}

		opts = append(opts, opt)
	}

	usage := strings.Join(opts, "|")
	if !f.IsRequired() {
		usage = "[" + usage + "]"
	}

	return usage
}

func positionalUsage(f *field.Field) string {
	usage := "<" + f.GetHint() + ">"
	if f.GetLimit() != 1 {
		usage += "..."
	}

	if !f.IsRequired() {
		usage = "[" + usage + "]"
	}

	return usage
}
