// Package taskrun turns a function and a set of typed fields into a
// command-line program: arguments are bound to the fields, validated, and
// handed to the function, with help, version, verbosity and stats options
// added to every task.
//
//	func main() {
//		taskrun.Run(taskrun.Define(greet).
//			Description("Print a greeting").
//			Field(taskrun.String("name").Required()))
//	}
package taskrun

import (
	"context"

	"github.com/toejough/taskrun/internal/binpath"
	"github.com/toejough/taskrun/internal/console"
	"github.com/toejough/taskrun/internal/field"
	"github.com/toejough/taskrun/internal/runner"
)

// --- Re-exported types ---

// Console writes styled output and verbosity-gated messages.
type Console = console.Console

// ExecuteResult holds the captured output of Execute.
type ExecuteResult = runner.ExecuteResult

// ExitCoder is implemented by task errors that carry their own exit code.
type ExitCoder = runner.ExitCoder

// ExitError is returned when a run ends with a non-zero exit code.
type ExitError = runner.ExitError

// ExportPolicy controls how a field's values reach the task.
type ExportPolicy = field.ExportPolicy

// Field is a named, typed command-line option.
type Field = field.Field

// Registry locates external binaries.
type Registry = binpath.Registry

// Rule validates a field's converted values.
type Rule = field.Rule

// Values holds the validated values handed to a task.
type Values = field.Values

// Re-export ExportPolicy constants.
const (
	ExportScalar = field.ExportScalar
	ExportList   = field.ExportList
	ExportSkip   = field.ExportSkip
)

// --- Public API ---

// BinariesFrom returns the binary registry of the running task.
func BinariesFrom(ctx context.Context) (*Registry, bool) {
	return runner.BinariesFrom(ctx)
}

// Bool creates a boolean field. Boolean fields never take the following argument.
func Bool(name string) *Field {
	return field.NewBoolean(name)
}

// ConsoleFrom returns the console of the running task.
func ConsoleFrom(ctx context.Context) (*Console, bool) {
	return runner.ConsoleFrom(ctx)
}

// Execute runs the task with the given args and returns the captured output
// instead of exiting. Args should include the program name as the first element.
func Execute(args []string, task *Task) (ExecuteResult, error) {
	return runner.Execute(args, task)
}

// Float creates a float field.
func Float(name string) *Field {
	return field.NewFloat(name)
}

// Int creates an integer field.
func Int(name string) *Field {
	return field.NewInteger(name)
}

// MatchesGlob requires every value to match a doublestar pattern.
func MatchesGlob(pattern string) Rule {
	return field.MatchesGlob(pattern)
}

// Max requires every numeric value to be at most n.
func Max(n float64) Rule {
	return field.Max(n)
}

// Min requires every numeric value to be at least n.
func Min(n float64) Rule {
	return field.Min(n)
}

// OneOf requires every value to be one of options.
func OneOf(options ...string) Rule {
	return field.OneOf(options...)
}

// Run executes the task using os.Args and exits with its exit code.
func Run(task *Task) {
	runner.Main(task)
}

// String creates a string field.
func String(name string) *Field {
	return field.NewString(name)
}
