package taskrun

import (
	"context"

	"github.com/toejough/taskrun/internal/runner"
)

// Task wraps a function with the fields it reads and its help metadata.
// Use Define() to create a Task, then chain builder methods.
type Task struct {
	fn          TaskFunc
	description string
	version     string
	fields      []*Field
}

// Define creates a Task running fn.
func Define(fn TaskFunc) *Task {
	return &Task{fn: fn}
}

// Description sets the text shown next to the program name in help.
func (t *Task) Description(s string) *Task {
	t.description = s
	return t
}

// Field adds fields in declaration order. Declaration order decides usage
// order and which positional field fills first.
func (t *Task) Field(fields ...*Field) *Task {
	t.fields = append(t.fields, fields...)
	return t
}

// Fields returns the declared fields.
func (t *Task) Fields() []*Field {
	return t.fields
}

// GetDescription returns the configured description.
func (t *Task) GetDescription() string {
	return t.description
}

// GetVersion returns the configured version.
func (t *Task) GetVersion() string {
	return t.version
}

// Info returns the help metadata.
func (t *Task) Info() runner.Info {
	return runner.Info{Description: t.description, Version: t.version}
}

// Run calls the task function. A task without a function does nothing.
func (t *Task) Run(ctx context.Context, values Values) (any, error) {
	if t.fn == nil {
		return nil, nil
	}

	return t.fn(ctx, values)
}

// Version sets the text printed by --version.
func (t *Task) Version(v string) *Task {
	t.version = v
	return t
}

// TaskFunc is the work a task performs with its validated values.
// A non-nil result is printed on its own line.
type TaskFunc func(ctx context.Context, values Values) (any, error)
