// Package console writes styled messages for command-line tasks.
// Messages may carry "@[style]" tags, which are turned into ANSI sequences
// or stripped depending on whether styling is enabled.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Exported constants.
const (
	// EnvLogFile names a file that receives a rotated copy of the log stream.
	EnvLogFile = "TASKRUN_LOG_FILE"
	// LevelTrace is the slog level enabled by the most verbose setting.
	LevelTrace = slog.Level(-8)
)

// Verbosity levels.
const (
	Quiet Verbosity = iota
	Some
	More
	Most
)

// Config holds the streams and settings a Console is built from.
type Config struct {
	Out     io.Writer // task output, help and version text
	Err     io.Writer // errors, verbose messages and logs
	LogFile string    // optional rotated copy of Err
	Styled  bool      // apply style tags
	Width   int       // terminal columns, 0 when unknown
}

// ConfigFromEnv returns the process configuration: stdout/stderr, NO_COLOR and
// terminal detection from fatih/color, the terminal width, and TASKRUN_LOG_FILE.
func ConfigFromEnv() Config {
	return Config{
		Out:     os.Stdout,
		Err:     os.Stderr,
		LogFile: os.Getenv(EnvLogFile),
		Styled:  !color.NoColor,
		Width:   terminalWidth(),
	}
}

// Console is the output collaborator shared by the runner and its tasks.
// It is created once per process and configured while arguments are parsed.
type Console struct {
	out       io.Writer
	log       io.Writer
	file      *lumberjack.Logger
	styled    bool
	width     int
	verbosity Verbosity
	level     *slog.LevelVar
	logger    *slog.Logger
}

// New creates a Console. Nil streams discard their output.
func New(cfg Config) *Console {
	c := &Console{
		out:    cfg.Out,
		log:    cfg.Err,
		styled: cfg.Styled,
		width:  cfg.Width,
		level:  new(slog.LevelVar),
	}

	if c.out == nil {
		c.out = io.Discard
	}

	if c.log == nil {
		c.log = io.Discard
	}

	if cfg.LogFile != "" {
		c.file = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
		c.log = io.MultiWriter(c.log, c.file)
	}

	c.level.Set(levelFor(Quiet))
	c.logger = slog.New(slog.NewTextHandler(c.log, &slog.HandlerOptions{Level: c.level}))

	return c
}

// Close releases the log file, if any.
func (c *Console) Close() error {
	if c.file == nil {
		return nil
	}

	return c.file.Close()
}

// DisableStyles strips style tags from every later message.
func (c *Console) DisableStyles() {
	c.styled = false
}

// Error writes an error banner followed by msg to the log stream.
func (c *Console) Error(msg string) {
	c.Log("@[bg:red+white] Error @[reset] " + msg)
}

// Log writes msg to the log stream regardless of verbosity.
func (c *Console) Log(msg string) {
	_, _ = io.WriteString(c.log, ApplyStyles(msg, c.styled))
}

// Logger returns the structured logger; its level follows the verbosity.
func (c *Console) Logger() *slog.Logger {
	return c.logger
}

// Print writes msg to the output stream without style processing.
func (c *Console) Print(msg string) {
	_, _ = io.WriteString(c.out, msg)
}

// SetVerbosity changes which verbose messages and log records are written.
func (c *Console) SetVerbosity(v Verbosity) {
	c.verbosity = v
	c.level.Set(levelFor(v))
	c.VVV(fmt.Sprintf("verbose level set to @[bold+yellow]%d@[reset]\n", v))
}

// Styled reports whether style tags are applied.
func (c *Console) Styled() bool {
	return c.styled
}

// V writes msg when the verbosity is at least Some.
// msg is a string or a func() string producer called only when needed.
func (c *Console) V(msg any) {
	c.Verbose(Some, producer(msg))
}

// VV writes msg when the verbosity is at least More.
func (c *Console) VV(msg any) {
	c.Verbose(More, producer(msg))
}

// VVV writes msg when the verbosity is Most.
func (c *Console) VVV(msg any) {
	c.Verbose(Most, producer(msg))
}

// Verbose writes the produced message when the verbosity is at least minimum.
// The producer is not called otherwise.
func (c *Console) Verbose(minimum Verbosity, produce func() string) {
	if c.verbosity < minimum {
		return
	}

	c.Log(produce())
}

// Verbosity returns the current verbosity.
func (c *Console) Verbosity() Verbosity {
	return c.verbosity
}

// Width returns the terminal width in columns, 0 when unknown.
func (c *Console) Width() int {
	return c.width
}

// Write writes msg to the output stream, applying style tags.
func (c *Console) Write(msg string) {
	_, _ = io.WriteString(c.out, ApplyStyles(msg, c.styled))
}

// Verbosity selects how much diagnostic output is written.
type Verbosity int

// String returns the verbosity name.
func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Some:
		return "some"
	case More:
		return "more"
	case Most:
		return "most"
	default:
		return "unknown"
	}
}

// unexported constants.
const (
	logMaxAgeDays = 16
	logMaxBackups = 5
	logMaxSizeMB  = 128
)

func levelFor(v Verbosity) slog.Level {
	switch {
	case v >= Most:
		return LevelTrace
	case v == More:
		return slog.LevelDebug
	case v == Some:
		return slog.LevelInfo
	default:
		return slog.LevelError
	}
}

func producer(msg any) func() string {
	switch m := msg.(type) {
	case func() string:
		return m
	case string:
		return func() string { return m }
	default:
		return func() string { return fmt.Sprint(m) }
	}
}

func terminalWidth() int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	cols, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return cols
}
