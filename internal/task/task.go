// Package task applies generated artifacts: directly through the default
// file handler, or at every boot through a Task Scheduler entry managed with
// schtasks.exe.
package task

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/junglivre/nomoject/internal/logging"
)

// DefaultName is the scheduled task nomoject installs.
const DefaultName = "NomojectRegistryApply"

const schtasks = "schtasks"

// DefaultUtilsDir is where the startup copy of an artifact lives:
// %SystemDrive%\Windows\System32\_utils.
func DefaultUtilsDir() string {
	drive := os.Getenv("SystemDrive")
	if drive == "" {
		drive = "C:"
	}
	return drive + `\Windows\System32\_utils`
}

// Scheduler manages the startup task.
type Scheduler struct {
	Name     string
	UtilsDir string
	Runner   Runner
	Log      logging.Logger
}

// NewScheduler returns a Scheduler using schtasks through os/exec. Empty
// arguments fall back to DefaultName and DefaultUtilsDir.
func NewScheduler(name, utilsDir string, log logging.Logger) *Scheduler {
	if name == "" {
		name = DefaultName
	}
	if utilsDir == "" {
		utilsDir = DefaultUtilsDir()
	}
	return &Scheduler{Name: name, UtilsDir: utilsDir, Runner: ExecRunner{}, Log: log}
}

// Install copies the artifact into the utilities directory and registers a
// task that imports it silently at every system start, as SYSTEM with the
// highest run level, replacing any task of the same name. It returns the
// path of the copy. A failing schtasks yields a *CommandError; the artifact
// passed in is never modified.
func (s *Scheduler) Install(artifactPath string) (string, error) {
	if err := os.MkdirAll(s.UtilsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", s.UtilsDir, err)
	}

	dest := filepath.Join(s.UtilsDir, filepath.Base(artifactPath))
	if err := copyFile(artifactPath, dest); err != nil {
		return "", fmt.Errorf("failed to copy registry file: %w", err)
	}
	s.Log.Debugf("copied %s to %s", artifactPath, dest)

	args := CreateArgs(s.Name, dest)
	res, err := s.Runner.Run(schtasks, args...)
	if err != nil {
		return dest, err
	}
	if res.ExitCode != 0 {
		return dest, &CommandError{Command: schtasks + " /Create", ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	s.Log.Infof("scheduled task %s will apply %s at startup", s.Name, dest)
	return dest, nil
}

// RunNow asks Task Scheduler to start the task immediately. Only a failure
// to launch schtasks is reported.
func (s *Scheduler) RunNow() error {
	return s.Runner.Start(schtasks, RunArgs(s.Name)...)
}

// Remove deletes the task.
func (s *Scheduler) Remove() error {
	res, err := s.Runner.Run(schtasks, DeleteArgs(s.Name)...)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &CommandError{Command: schtasks + " /Delete", ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// ImportCommand is the action the task runs: a silent regedit import.
func ImportCommand(path string) string {
	return fmt.Sprintf(`regedit.exe /s "%s"`, path)
}

// CreateArgs builds the schtasks arguments that register the startup task.
func CreateArgs(name, artifactPath string) []string {
	return []string{
		"/Create",
		"/TN", name,
		"/TR", ImportCommand(artifactPath),
		"/SC", "ONSTART",
		"/RU", "SYSTEM",
		"/RL", "HIGHEST",
		"/F",
	}
}

func RunArgs(name string) []string {
	return []string{"/Run", "/TN", name}
}

func DeleteArgs(name string) []string {
	return []string{"/Delete", "/TN", name, "/F"}
}

// copyFile copies src to dst, keeping the modification time. When dst
// already is src nothing is written. The copy lands in a temporary sibling
// first, so dst is either the old file or the complete new one.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if existing, err := os.Stat(dst); err == nil && os.SameFile(info, existing) {
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	if err := os.Chtimes(tmp.Name(), info.ModTime(), info.ModTime()); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
