//go:build windows

package regstore

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	winreg "golang.org/x/sys/windows/registry"
)

// Registry key names are limited to 255 characters.
const maxKeyNameLen = 256

const readAccess = winreg.ENUMERATE_SUB_KEYS | winreg.QUERY_VALUE

type liveStore struct{}

// Live returns a Store backed by the local machine's registry.
func Live() Store {
	return liveStore{}
}

func (liveStore) OpenKey(path string) (Key, error) {
	k, err := winreg.OpenKey(winreg.LOCAL_MACHINE, path, readAccess)
	if err != nil {
		return nil, translate(err)
	}
	return liveKey{k: k}, nil
}

type liveKey struct {
	k winreg.Key
}

func (l liveKey) EnumKey(index int) (string, error) {
	buf := make([]uint16, maxKeyNameLen)
	n := uint32(len(buf))
	err := windows.RegEnumKeyEx(windows.Handle(l.k), uint32(index), &buf[0], &n, nil, nil, nil, nil)
	if err != nil {
		return "", translate(err)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

func (l liveKey) OpenSubKey(name string) (Key, error) {
	k, err := winreg.OpenKey(l.k, name, readAccess)
	if err != nil {
		return nil, translate(err)
	}
	return liveKey{k: k}, nil
}

func (l liveKey) IntegerValue(name string) (uint64, error) {
	v, _, err := l.k.GetIntegerValue(name)
	if err != nil {
		return 0, translate(err)
	}
	return v, nil
}

func (l liveKey) StringValue(name string) (string, error) {
	v, _, err := l.k.GetStringValue(name)
	if err != nil {
		return "", translate(err)
	}
	return v, nil
}

func (l liveKey) Close() error {
	return l.k.Close()
}

// translate maps Win32 errors onto the package sentinels while keeping the
// original error in the chain.
func translate(err error) error {
	switch {
	case errors.Is(err, windows.ERROR_NO_MORE_ITEMS):
		return fmt.Errorf("%w: %w", ErrNoMoreItems, err)
	case errors.Is(err, winreg.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotExist, err)
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, winreg.ErrUnexpectedType):
		return fmt.Errorf("%w: %w", ErrUnexpectedType, err)
	}
	return err
}
