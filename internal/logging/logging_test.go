package logging

import (
	"bytes"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		logger    Logger
		wantInfo  bool
		wantDebug bool
	}{
		{"quiet", Logger{}, false, false},
		{"verbose", Logger{Verbose: true}, true, false},
		{"debug", Logger{Debug: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			l := tt.logger
			l.Out, l.Err = &out, &errOut

			l.Infof("scanning %s", "PCI")
			l.Debugf("closed %d keys", 3)
			l.Warnf("history unavailable")
			l.Errorf("failed: %v", "boom")

			assert.Equal(t, tt.wantInfo, bytes.Contains(out.Bytes(), []byte("[info] scanning PCI")))
			assert.Equal(t, tt.wantDebug, bytes.Contains(out.Bytes(), []byte("[debug] closed 3 keys")))
			assert.Contains(t, errOut.String(), "[warn] history unavailable")
			assert.Contains(t, errOut.String(), "[error] failed: boom")
		})
	}
}

func TestLogger_Hold(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	base := Logger{Debug: true, Out: &out, Err: &out}
	held, buf := base.Hold()

	held.Debugf("opened %s", "PCI")
	held.Warnf("skipped vendor")
	assert.Empty(t, out.String(), "nothing reaches the original output while held")

	var flushed bytes.Buffer
	assert.NoError(t, buf.Flush(&flushed))
	assert.Contains(t, flushed.String(), "[debug] opened PCI")
	assert.Contains(t, flushed.String(), "[warn] skipped vendor")

	flushed.Reset()
	assert.NoError(t, buf.Flush(&flushed))
	assert.Empty(t, flushed.String())

	base.Infof("still direct")
	assert.Contains(t, out.String(), "[info] still direct")
}

func TestDiscard_PrintsNothing(t *testing.T) {
	assert.Equal(t, io.Discard, Discard.out())
	assert.Equal(t, io.Discard, Discard.err())

	l := Discard
	l.Debug = true
	assert.NotPanics(t, func() {
		l.Debugf("closing %s", "PCI")
		l.Warnf("skipped")
		l.Errorf("failed")
	})
}
