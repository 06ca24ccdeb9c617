package task

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result is the outcome of a command that was waited on.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner launches external commands.
type Runner interface {
	// Run waits for the command. A non-zero exit is reported through
	// Result.ExitCode, not as an error.
	Run(name string, args ...string) (Result, error)
	// Start launches the command and returns without waiting.
	Start(name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("%s failed to start: %w", name, err)
	}
	return res, nil
}

func (ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s failed to start: %w", name, err)
	}
	// Reap the child; its outcome is not observed.
	go cmd.Wait()
	return nil
}

// CommandError reports an external command that exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Command, e.ExitCode, msg)
}
