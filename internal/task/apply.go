package task

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
)

// Opener hands a file to the operating system's default handler without
// waiting for it.
type Opener func(path string) error

// DefaultOpener opens files through the desktop file associations; for a
// .reg file that is the Registry Editor import prompt.
var DefaultOpener Opener = open.Start

// ApplyNow opens the artifact with opener, or DefaultOpener when nil. The
// import itself is not observed.
func ApplyNow(path string, opener Opener) error {
	if opener == nil {
		opener = DefaultOpener
	}
	if err := opener(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
