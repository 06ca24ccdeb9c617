package ui

import (
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Colored(t *testing.T) {
	// Setenv first so the original value is restored after Unsetenv.
	t.Setenv("NO_COLOR", "")
	require.NoError(t, os.Unsetenv("NO_COLOR"))

	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	out := Command.Sprint("nomoject task run")
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "`")
}

func TestFormatter_Plain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"command gets backticks", Command, "nomoject scan", "`nomoject scan`"},
		{"path is bare", Path, `C:\out.reg`, `C:\out.reg`},
		{"device gets quotes", Device, "Intel SATA", "'Intel SATA'"},
		{"success is bare", Success, MarkOK, MarkOK},
		{"error is bare", Error, MarkFail, MarkFail},
		{"warning is bare", Warning, "!", "!"},
		{"info is bare", Info, MarkNext, MarkNext},
		{"muted gets parentheses", Muted, "3&11583659&0&B8", "(3&11583659&0&B8)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.formatter.Sprint(tt.input))
		})
	}
}

func TestFormatter_Sprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "(2 of 5)", Muted.Sprintf("%d of %d", 2, 5))
}

func TestPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, Plain())
}
