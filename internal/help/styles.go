// Package help styling definitions.
// This file defines lipgloss styles for consistent terminal output.

package help

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles used for help rendering.
type Styles struct {
	// Header is the style for section headers like " USAGE " (reverse, bold).
	Header lipgloss.Style

	// Program is the style for the program name (bold).
	Program lipgloss.Style

	// Flag is the style for option names in the OPTIONS block (cyan).
	Flag lipgloss.Style

	// Placeholder is the style for value hints (yellow).
	Placeholder lipgloss.Style
}

// DefaultStyles returns the standard styles for help output.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Reverse(true).Bold(true),
		Program:     lipgloss.NewStyle().Bold(true),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // Cyan
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // Yellow
	}
}

// PlainStyles returns styles that render text unchanged, for output without colors.
func PlainStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle(),
		Program:     lipgloss.NewStyle(),
		Flag:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle(),
	}
}
