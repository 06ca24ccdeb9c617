// Package regstore abstracts the hierarchical key/value store that Windows
// keeps device metadata in. The live implementation talks to the registry
// through golang.org/x/sys/windows/registry; Tree is an in-memory stand-in
// that can be loaded from YAML for offline runs and tests.
package regstore

import (
	"errors"
	"iter"
	"strings"
)

// Separator joins key path segments.
const Separator = `\`

// HiveLocalMachine is the hive every Store path is relative to.
const HiveLocalMachine = "HKEY_LOCAL_MACHINE"

var (
	ErrNotExist       = errors.New("registry key or value does not exist")
	ErrNoMoreItems    = errors.New("no more subkeys")
	ErrUnexpectedType = errors.New("registry value has unexpected type")
	ErrAccessDenied   = errors.New("access is denied")
	ErrUnsupported    = errors.New("live registry access is only available on windows")
)

// Store opens keys by path relative to HKEY_LOCAL_MACHINE.
type Store interface {
	OpenKey(path string) (Key, error)
}

// Key is an open registry key handle. Callers must Close it.
type Key interface {
	// EnumKey returns the name of the subkey at index, or ErrNoMoreItems
	// once index runs past the last subkey.
	EnumKey(index int) (string, error)
	OpenSubKey(name string) (Key, error)
	IntegerValue(name string) (uint64, error)
	StringValue(name string) (string, error)
	Close() error
}

// SubKeys yields the subkey names of k in enumeration order. Exhaustion ends
// the sequence quietly; any other enumeration fault is yielded once as an
// error and ends the sequence.
func SubKeys(k Key) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for i := 0; ; i++ {
			name, err := k.EnumKey(i)
			if errors.Is(err, ErrNoMoreItems) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(name, nil) {
				return
			}
		}
	}
}

// JoinPath joins key path segments with a backslash.
func JoinPath(parts ...string) string {
	return strings.Join(parts, Separator)
}

// SplitPath splits a key path into its non-empty segments.
func SplitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, Separator) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
