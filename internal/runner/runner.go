// Package runner drives a task from raw command-line arguments to its result:
// it adds the standard fields, binds the arguments, validates the values and
// runs the task, reporting failures through the console.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/toejough/taskrun/internal/binpath"
	"github.com/toejough/taskrun/internal/console"
	"github.com/toejough/taskrun/internal/field"
	"github.com/toejough/taskrun/internal/flags"
	"github.com/toejough/taskrun/internal/help"
	"github.com/toejough/taskrun/internal/parse"
)

// Exported variables.
var (
	ErrInvalidTask = errors.New("invalid task definition")
)

// Config holds the collaborators a Runner uses. Zero values are replaced by
// defaults when the run starts.
type Config struct {
	// Console receives all output; defaults to one built from the RunEnv.
	Console *console.Console
	// Binaries is handed to the task; defaults to a registry over $PATH.
	Binaries *binpath.Registry
	// Clock measures the run for the stats report; defaults to time.Now.
	Clock func() time.Time
}

// ExitCoder is implemented by task errors that carry their own exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitError represents a non-zero exit code, or a zero one from a listener
// that ends the run early.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the code.
func (e ExitError) ExitCode() int {
	return e.Code
}

// Info describes a task for the help page and the version output.
type Info struct {
	Description string
	Version     string
}

// Runner runs one task once.
type Runner struct {
	task       Task
	cfg        Config
	con        *console.Console
	state      State
	program    string
	invocation string
	stats      bool
	start      time.Time
}

// New creates a Runner for task.
func New(task Task, cfg Config) *Runner {
	return &Runner{task: task, cfg: cfg, state: Initializing}
}

// Run parses the arguments from env, validates them and runs the task.
// It returns nil on success, or an ExitError with the code to exit with.
func (r *Runner) Run(ctx context.Context, env RunEnv) error {
	if r.cfg.Clock == nil {
		r.cfg.Clock = time.Now
	}

	r.start = r.cfg.Clock()

	r.con = r.cfg.Console
	if r.con == nil {
		r.con = console.New(env.Console())
		defer r.con.Close()
	}

	binaries := r.cfg.Binaries
	if binaries == nil {
		binaries = binpath.New(os.Getenv("PATH"))
	}

	ctx = WithBinaries(WithConsole(ctx, r.con), binaries)

	if env.SupportsSignals() {
		var cancel context.CancelFunc

		ctx, cancel = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer cancel()
	}

	err := r.run(ctx, env.Args())

	r.transition(Terminated)

	if r.stats {
		r.reportStats()
	}

	return err
}

// State returns the phase the runner is in.
func (r *Runner) State() State {
	return r.state
}

// Task is a unit of work driven from the command line.
type Task interface {
	Info() Info
	// Fields returns the task's own fields. The standard fields are added by the runner.
	Fields() []*field.Field
	// Run executes the task. A non-nil result is printed on its own line.
	Run(ctx context.Context, values field.Values) (any, error)
}

// FormatErrors renders validation errors as one message, one line per
// distinct field and message pair.
func FormatErrors(errs []field.ValidationError) string {
	var b strings.Builder

	b.WriteString("invalid options\n")

	seen := make(map[string]bool, len(errs))

	for _, e := range errs {
		line := fmt.Sprintf("  @[bold]%s@[reset] %s\n", e.Field, e.Message)
		if seen[line] {
			continue
		}

		seen[line] = true

		b.WriteString(line)
	}

	return b.String()
}

// collect builds a fresh collection for one run from clones of the task's
// declarations, so a task can be run more than once.
func (r *Runner) collect() (*field.Collection, error) {
	declared := r.task.Fields()
	clones := make([]*field.Field, 0, len(declared))

	for _, f := range declared {
		clones = append(clones, f.Clone())
	}

	fields, err := field.NewCollection(clones...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	err = fields.Add(r.standardFields()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	return fields, nil
}

func (r *Runner) disableStyles(field.Event) error {
	r.con.DisableStyles()
	return nil
}

func (r *Runner) meta() help.Meta {
	info := r.task.Info()

	return help.Meta{
		Program:     r.program,
		Invocation:  r.invocation,
		Description: info.Description,
		Version:     info.Version,
	}
}

// parseFailure turns a binder error into the run's result. Listener halts
// pass through; a zero exit code ends the run successfully.
func (r *Runner) parseFailure(err error, fields *field.Collection) error {
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == 0 {
			return nil
		}

		return exitErr
	}

	var parseErr *parse.ParseError
	if errors.As(err, &parseErr) {
		opts := help.Options{Width: r.con.Width(), Plain: true}
		r.con.Error(parseErr.Error() + "\n" +
			help.Usage(r.meta(), fields, opts) + "\n" +
			"use '@[bold]" + r.program + " --help@[reset]' for help\n\n")

		return ExitError{Code: 1}
	}

	r.con.Error(err.Error() + "\n")

	return ExitError{Code: 1}
}

func (r *Runner) reportStats() {
	var mem runtime.MemStats

	runtime.ReadMemStats(&mem)

	elapsed := r.cfg.Clock().Sub(r.start).Seconds()
	r.con.Log(fmt.Sprintf("processed in %.4f seconds using %s of memory\n", elapsed, humanize.Bytes(mem.Sys)))
}

func (r *Runner) requestStats(field.Event) error {
	r.stats = true
	return nil
}

func (r *Runner) run(ctx context.Context, args []string) error {
	r.program, r.invocation = programName(args)

	r.transition(Initializing)

	fields, err := r.collect()
	if err != nil {
		r.con.Error(err.Error() + "\n")
		return ExitError{Code: 1}
	}

	r.transition(Parsing)

	var tokens []string
	if len(args) > 1 {
		tokens = args[1:]
	}

	err = parse.Parse(tokens, fields)
	if err != nil {
		return r.parseFailure(err, fields)
	}

	r.transition(Validating)

	if errs := fields.Validate(); len(errs) > 0 {
		r.con.Error(FormatErrors(errs))
		return ExitError{Code: 1}
	}

	r.transition(Executing)

	result, err := r.task.Run(ctx, fields.Export())
	if err != nil {
		r.con.Error(err.Error() + "\n")
		return ExitError{Code: exitCode(err)}
	}

	if result != nil {
		r.con.Print(fmt.Sprint(result) + "\n")
	}

	return nil
}

func (r *Runner) setVerbosity(ev field.Event) error {
	if v, ok := flags.VerbosityFor(ev.Name); ok {
		r.con.SetVerbosity(v)
	}

	return nil
}

func (r *Runner) showHelp(ev field.Event) error {
	opts := help.Options{Width: r.con.Width(), Plain: !r.con.Styled()}
	r.con.Print(help.Render(r.meta(), ev.Collection, opts))

	return ExitError{Code: 0}
}

func (r *Runner) showVersion(field.Event) error {
	r.con.Print(fmt.Sprintf("%s version %s\n", r.program, r.task.Info().Version))
	return ExitError{Code: 0}
}

// standardFields builds the registry fields with the listeners that act on them.
func (r *Runner) standardFields() []*field.Field {
	fields := flags.Fields()

	for _, f := range fields {
		switch f.Name() {
		case flags.Help:
			f.OnParse(r.showHelp)
		case flags.Version:
			f.OnParse(r.showVersion)
		case flags.Quiet, flags.Verbose:
			f.OnParse(r.setVerbosity)
		case flags.Stats:
			f.OnParse(r.requestStats)
		case flags.NoANSI:
			f.OnParse(r.disableStyles)
		}
	}

	return fields
}

func (r *Runner) transition(next State) {
	r.con.Logger().Debug("state transition", "task", r.program, "from", r.state, "to", next)
	r.state = next
}

// exitCode returns the code carried by err, or 1.
func exitCode(err error) int {
	var coder ExitCoder
	if errors.As(err, &coder) && coder.ExitCode() != 0 {
		return coder.ExitCode()
	}

	return 1
}

// programName returns the display name and the invocation from the command line.
func programName(args []string) (string, string) {
	if len(args) == 0 || args[0] == "" {
		return "command", "command"
	}

	return filepath.Base(args[0]), args[0]
}
