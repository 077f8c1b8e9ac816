package runner

import (
	"context"

	"github.com/toejough/taskrun/internal/binpath"
	"github.com/toejough/taskrun/internal/console"
)

// BinariesFrom returns the binary registry of the running task.
// Returns false outside of a run.
func BinariesFrom(ctx context.Context) (*binpath.Registry, bool) {
	reg, ok := ctx.Value(binariesKey{}).(*binpath.Registry)
	return reg, ok
}

// ConsoleFrom returns the console of the running task.
// Returns false outside of a run.
func ConsoleFrom(ctx context.Context) (*console.Console, bool) {
	con, ok := ctx.Value(consoleKey{}).(*console.Console)
	return con, ok
}

// WithBinaries returns a new context carrying the given registry.
func WithBinaries(ctx context.Context, reg *binpath.Registry) context.Context {
	return context.WithValue(ctx, binariesKey{}, reg)
}

// WithConsole returns a new context carrying the given console.
func WithConsole(ctx context.Context, con *console.Console) context.Context {
	return context.WithValue(ctx, consoleKey{}, con)
}

type binariesKey struct{}

type consoleKey struct{}
