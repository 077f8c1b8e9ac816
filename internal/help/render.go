// Package help renders help pages and usage lines from field definitions.
package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/toejough/taskrun/internal/field"
)

// Exported constants.
const (
	// MaxWidth is the widest a usage line is allowed to grow.
	MaxWidth = 78
)

// Meta describes the program a help page is rendered for.
type Meta struct {
	Program     string // display name, e.g. "sum"
	Invocation  string // how the program was invoked; defaults to Program
	Description string
	Version     string
}

// Options controls rendering.
type Options struct {
	Width int  // terminal columns; values <= 0 mean MaxWidth
	Plain bool // render without styling
}

// Render returns the full help page: NAME, USAGE and OPTIONS blocks, plus an
// ARGUMENTS block when positional fields exist. It does not modify fields.
func Render(meta Meta, fields *field.Collection, opts Options) string {
	styles := opts.styles()

	blocks := []string{
		nameBlock(meta, styles),
		header("usage", "", styles) + wrap(" "+styles.Program.Render(meta.invocation()), UsageTokens(fields), opts.Width) + "\n",
	}

	if block := optionsBlock(ListOptions(fields), styles); block != "" {
		blocks = append(blocks, block)
	}

	if block := argumentsBlock(ListArguments(fields), styles); block != "" {
		blocks = append(blocks, block)
	}

	return strings.Join(blocks, "\n") + "\n"
}

// Usage returns the compact "usage: <cmd> ..." form used in error hints.
func Usage(meta Meta, fields *field.Collection, opts Options) string {
	return wrap("usage: "+meta.invocation(), UsageTokens(fields), opts.Width)
}

func (m Meta) invocation() string {
	if m.Invocation == "" {
		return m.Program
	}

	return m.Invocation
}

func (o Options) styles() Styles {
	if o.Plain {
		return PlainStyles()
	}

	return DefaultStyles()
}

func argumentsBlock(args []Argument, styles Styles) string {
	if len(args) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(header("arguments", "", styles))

	for _, arg := range args {
		b.WriteString(" " + styles.Placeholder.Render(arg.Hint))

		if arg.Repeats {
			b.WriteString("...")
		}

		if !arg.Required {
			b.WriteString(" (optional)")
		}

		b.WriteString("\n")
		writeDescription(&b, arg.Desc)
	}

	return b.String()
}

func header(txt, right string, styles Styles) string {
	return styles.Header.Render(" "+strings.ToUpper(txt)+" ") + right + "\n"
}

func nameBlock(meta Meta, styles Styles) string {
	right := " " + styles.Program.Render(meta.Program)
	if meta.Version != "" {
		right += " (version " + meta.Version + ")"
	}

	line := strings.TrimSuffix(header("name", right, styles), "\n")
	if meta.Description != "" {
		line += " " + meta.Description
	}

	return line + "\n"
}

func optionsBlock(options []Option, styles Styles) string {
	if len(options) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(header("options", "", styles))

	for _, opt := range options {
		names := make([]string, 0, len(opt.Names))
		for _, name := range opt.Names {
			names = append(names, styles.Flag.Render(name))
		}

		b.WriteString(" " + strings.Join(names, ", "))

		if opt.Hint != "" {
			b.WriteString(" " + styles.Placeholder.Render(opt.Hint))
		}

		b.WriteString("\n")
		writeDescription(&b, opt.Desc)
	}

	return b.String()
}

// wrap appends tokens to prefix, starting a new line indented past the prefix
// whenever the next token would reach the maximum width.
func wrap(prefix string, tokens []string, width int) string {
	maxWidth := MaxWidth
	if width > 0 {
		maxWidth = min(width, MaxWidth)
	}

	var b strings.Builder

	line := prefix
	indent := strings.Repeat(" ", lipgloss.Width(prefix))

	for _, tok := range tokens {
		if lipgloss.Width(line)+lipgloss.Width(tok) >= maxWidth {
			b.WriteString(line + "\n")
			line = indent + " " + tok

			continue
		}

		line += " " + tok
	}

	b.WriteString(line)

	return b.String()
}

func writeDescription(b *strings.Builder, desc string) {
	if desc == "" {
		return
	}

	b.WriteString("   " + desc + "\n")
}
