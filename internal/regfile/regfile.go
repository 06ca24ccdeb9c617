// Package regfile renders and parses the .reg artifacts nomoject produces.
//
// An artifact sets Capabilities to 2 on every selected device key so the
// shell stops offering to eject it. The text layout is what regedit itself
// exports: a version header, one bracketed key per block, CRLF line endings,
// UTF-16LE with a byte order mark.
package regfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/regstore"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Header is the first line of every version 5 registry script.
const Header = "Windows Registry Editor Version 5.00"

// Extension is appended to destinations that lack it.
const Extension = ".reg"

const lineEnding = "\r\n"

var (
	ErrNoSelection = errors.New("no devices selected")
	ErrMalformed   = errors.New("malformed registry file")
)

// WriteError reports that the artifact could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to save registry file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// Render returns the artifact text for records, in order.
func Render(records []device.Record) string {
	var b strings.Builder
	b.WriteString(Header + lineEnding + lineEnding)
	for _, r := range records {
		fmt.Fprintf(&b, "[%s]%s", KeyName(r.Path), lineEnding)
		fmt.Fprintf(&b, "%q=dword:%08x%s%s", device.ValueCapabilities, device.CapabilityHidden, lineEnding, lineEnding)
	}
	return b.String()
}

// KeyName qualifies an HKLM-relative path with the hive name.
func KeyName(path string) string {
	return regstore.HiveLocalMachine + regstore.Separator + path
}

// Encode converts artifact text to UTF-16LE with a byte order mark.
func Encode(text string) ([]byte, error) {
	out, _, err := transform.String(utf16LE.NewEncoder(), text)
	if err != nil {
		return nil, fmt.Errorf("failed to encode registry file: %w", err)
	}
	return []byte(out), nil
}

// NormalizePath appends Extension unless path already ends with it.
func NormalizePath(path string) string {
	if strings.EqualFold(filepath.Ext(path), Extension) {
		return path
	}
	return path + Extension
}

// Write saves the artifact for records at dest, appending Extension if
// needed, and returns the path written. An empty selection is rejected with
// ErrNoSelection before the filesystem is touched. The file is written next
// to its destination and renamed into place, so a failed write never leaves
// a partial artifact behind.
func Write(records []device.Record, dest string) (string, error) {
	if len(records) == 0 {
		return "", ErrNoSelection
	}
	path := NormalizePath(dest)

	data, err := Encode(Render(records))
	if err != nil {
		return path, &WriteError{Path: path, Err: err}
	}
	if err := writeFile(path, data); err != nil {
		return path, &WriteError{Path: path, Err: err}
	}
	return path, nil
}

func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
