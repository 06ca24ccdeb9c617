//go:build windows

package elevate

import "golang.org/x/sys/windows"

// IsElevated reports whether the process token is elevated.
func IsElevated() (bool, error) {
	return windows.GetCurrentProcessToken().IsElevated(), nil
}
