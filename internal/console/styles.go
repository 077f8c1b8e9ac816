package console

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ApplyStyles replaces "@[bold+red]" style tags with ANSI sequences, or removes
// them when enabled is false. Tags naming no known style are left untouched.
func ApplyStyles(content string, enabled bool) string {
	return styleTag.ReplaceAllStringFunc(content, func(match string) string {
		keys := strings.Split(styleTag.FindStringSubmatch(match)[1], "+")
		codes := make([]string, 0, len(keys))

		for _, key := range keys {
			if attr, ok := styleCodes[strings.TrimSpace(key)]; ok {
				codes = append(codes, strconv.Itoa(int(attr)))
			}
		}

		if len(codes) == 0 {
			return match
		}

		if !enabled {
			return ""
		}

		return "\x1b[" + strings.Join(codes, ";") + "m"
	})
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Read-only style table, initialized once.
	styleCodes = map[string]color.Attribute{
		"reset":           color.Reset,
		"reset-bold":      color.Attribute(21),
		"reset-dim":       color.Attribute(22),
		"reset-underline": color.Attribute(24),
		"reset-blink":     color.Attribute(25),
		"reset-reverse":   color.Attribute(27),
		"reset-hidden":    color.Attribute(28),
		"reset-fg":        color.Attribute(39),
		"reset-bg":        color.Attribute(49),

		"bold":      color.Bold,
		"dim":       color.Faint,
		"underline": color.Underline,
		"blink":     color.BlinkSlow,
		"reverse":   color.ReverseVideo,
		"hidden":    color.Concealed,

		"default":       color.Attribute(39),
		"fg:":           color.Attribute(39),
		"black":         color.FgBlack,
		"red":           color.FgRed,
		"green":         color.FgGreen,
		"yellow":        color.FgYellow,
		"blue":          color.FgBlue,
		"magenta":       color.FgMagenta,
		"cyan":          color.FgCyan,
		"light-gray":    color.FgWhite,
		"dark-gray":     color.FgHiBlack,
		"light-red":     color.FgHiRed,
		"light-green":   color.FgHiGreen,
		"light-yellow":  color.FgHiYellow,
		"light-blue":    color.FgHiBlue,
		"light-magenta": color.FgHiMagenta,
		"light-cyan":    color.FgHiCyan,
		"white":         color.FgHiWhite,

		"bg:default":       color.Attribute(49),
		"bg:":              color.Attribute(49),
		"bg:black":         color.BgBlack,
		"bg:red":           color.BgRed,
		"bg:green":         color.BgGreen,
		"bg:yellow":        color.BgYellow,
		"bg:blue":          color.BgBlue,
		"bg:magenta":       color.BgMagenta,
		"bg:cyan":          color.BgCyan,
		"bg:light-gray":    color.BgWhite,
		"bg:dark-gray":     color.BgHiBlack,
		"bg:light-red":     color.BgHiRed,
		"bg:light-green":   color.BgHiGreen,
		"bg:light-yellow":  color.BgHiYellow,
		"bg:light-blue":    color.BgHiBlue,
		"bg:light-magenta": color.BgHiMagenta,
		"bg:light-cyan":    color.BgHiCyan,
		"bg:white":         color.BgHiWhite,
	}
	styleTag = regexp.MustCompile(`@\[([a-z-:+ ]+)\]`)
)
