// Package flags provides the registry of standard fields every task gets.
// The runner, the help renderer and the tests all derive from this registry.
package flags

import (
	"github.com/toejough/taskrun/internal/console"
	"github.com/toejough/taskrun/internal/field"
)

// Standard field names.
const (
	Help    = "help"
	NoANSI  = "no-ansi"
	Quiet   = "quiet"
	Stats   = "stats"
	Verbose = "verbose"
	Version = "version"
)

// All is the complete registry of standard fields, in declaration order.
//
//nolint:gochecknoglobals // Read-only flag registry, initialized once.
var All = []Def{
	{Long: Help, Aliases: []string{"h", "?"}, Desc: "Display this help message"},
	{Long: Version, Desc: "Display this program version"},
	{Long: Quiet, Aliases: []string{"q"}, Desc: "Do not output any message"},
	{
		Long:    Verbose,
		Aliases: []string{"v", "vv", "vvv"},
		Desc:    "Increase the verbosity of messages: 1 for normal output, 2 for more verbose output and 3 for debug",
	},
	{Long: Stats, Desc: "Display processing time and memory usage"},
	{Long: NoANSI, Aliases: []string{"no-color"}, Desc: "Disable ANSI output"},
}

// Def describes a standard boolean field.
type Def struct {
	Long    string   // field name, e.g. "verbose"
	Aliases []string // alternate names without dashes, e.g. "vv"
	Desc    string   // help text
}

// Field builds the boolean field for this definition. Standard fields are
// left out of the exported task values and may repeat.
func (d Def) Field() *field.Field {
	return field.NewBoolean(d.Long).
		Aliases(d.Aliases...).
		Description(d.Desc).
		Export(field.ExportSkip).
		Limit(0)
}

// Fields builds a fresh field for every registry entry.
func Fields() []*field.Field {
	out := make([]*field.Field, 0, len(All))

	for _, d := range All {
		out = append(out, d.Field())
	}

	return out
}

// VerbosityFor maps a quiet/verbose name or alias to the verbosity it selects.
func VerbosityFor(name string) (console.Verbosity, bool) {
	v, ok := verbosities[name]
	return v, ok
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Read-only verbosity table, initialized once.
	verbosities = map[string]console.Verbosity{
		Quiet:   console.Quiet,
		"q":     console.Quiet,
		Verbose: console.Some,
		"v":     console.Some,
		"vv":    console.More,
		"vvv":   console.Most,
	}
)
