// Package elevate checks that the process holds administrator rights, which
// reading device keys and registering SYSTEM tasks require.
package elevate

import "errors"

var ErrNotElevated = errors.New("administrator privileges are required")

// Require returns ErrNotElevated unless the process is elevated.
func Require() error {
	ok, err := IsElevated()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotElevated
	}
	return nil
}
