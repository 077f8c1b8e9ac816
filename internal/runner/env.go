package runner

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/toejough/taskrun/internal/console"
)

// ExecuteEnv is a RunEnv implementation that captures output for testing.
type ExecuteEnv struct {
	args   []string
	stdout strings.Builder
	stderr strings.Builder
}

// NewExecuteEnv returns a RunEnv that captures output for testing.
func NewExecuteEnv(args []string) *ExecuteEnv {
	return &ExecuteEnv{args: args}
}

// Args returns the command line arguments.
func (e *ExecuteEnv) Args() []string {
	return e.args
}

// Console returns unstyled streams writing to the capture buffers.
func (e *ExecuteEnv) Console() console.Config {
	return console.Config{Out: &e.stdout, Err: &e.stderr}
}

// Exit is a no-op for testing environments.
func (e *ExecuteEnv) Exit(int) {}

// Stderr returns everything written to the log stream.
func (e *ExecuteEnv) Stderr() string {
	return e.stderr.String()
}

// Stdout returns everything written to the output stream.
func (e *ExecuteEnv) Stdout() string {
	return e.stdout.String()
}

// SupportsSignals returns false for test environments.
func (e *ExecuteEnv) SupportsSignals() bool {
	return false
}

// ExecuteResult holds the captured output of a run.
type ExecuteResult struct {
	Stdout string
	Stderr string
}

// RunEnv abstracts the process environment for testing.
type RunEnv interface {
	// Args returns the command line, program name first.
	Args() []string
	// Console returns the configuration the run's console is built from
	// when none is injected through Config.
	Console() console.Config
	Exit(code int)
	// SupportsSignals reports whether interrupts should cancel the task context.
	SupportsSignals() bool
}

// Execute runs the task with the given args and returns the captured output
// instead of exiting. Args should include the program name as the first element.
func Execute(args []string, task Task) (ExecuteResult, error) {
	env := NewExecuteEnv(args)
	err := New(task, Config{}).Run(context.Background(), env)

	return ExecuteResult{Stdout: env.Stdout(), Stderr: env.Stderr()}, err
}

// Main runs the task against os.Args and exits with the run's exit code.
func Main(task Task) {
	RunWithEnv(osRunEnv{}, task)
}

// RunWithEnv runs the task against env and exits through it on failure.
func RunWithEnv(env RunEnv, task Task) {
	err := New(task, Config{}).Run(context.Background(), env)
	if err == nil {
		return
	}

	var exitErr ExitError
	if errors.As(err, &exitErr) {
		env.Exit(exitErr.Code)
		return
	}

	env.Exit(1)
}

type osRunEnv struct{}

func (osRunEnv) Args() []string {
	return os.Args
}

func (osRunEnv) Console() console.Config {
	return console.ConfigFromEnv()
}

func (osRunEnv) Exit(code int) {
	os.Exit(code)
}

func (osRunEnv) SupportsSignals() bool {
	return true
}
