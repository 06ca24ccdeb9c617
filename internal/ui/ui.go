// Package ui formats CLI output by meaning rather than by color.
//
// With colors available each formatter colorizes its text. When NO_COLOR is
// set or the terminal cannot render color, formatters fall back to plain
// decorations:
//
//	ui.Command.Sprint("nomoject task run")  // `nomoject task run`
//	ui.Device.Sprint("Intel SATA")          // 'Intel SATA'
//	ui.Muted.Sprint("no description")       // (no description)
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders text for one kind of content.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if Plain() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Plain reports whether output should carry no ANSI escapes.
func Plain() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return color.NoColor
}

var (
	// Command is a runnable command line.
	Command = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path is a file path or registry key.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Device is a device description picked by the user.
	Device = Formatter{color.New(color.FgCyan), "'", "'"}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Muted is secondary detail such as instance IDs.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Marks used in front of status lines.
const (
	MarkOK   = "✓"
	MarkFail = "✗"
	MarkNext = "→"
)
