package task

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/logging"
	"github.com/junglivre/nomoject/internal/regfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
	wait bool
}

type fakeRunner struct {
	calls    []call
	result   Result
	runErr   error
	startErr error
}

func (f *fakeRunner) Run(name string, args ...string) (Result, error) {
	f.calls = append(f.calls, call{name: name, args: args, wait: true})
	return f.result, f.runErr
}

func (f *fakeRunner) Start(name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.startErr
}

func writeArtifact(t *testing.T) string {
	t.Helper()
	rec := device.NewRecord(device.DefaultRoot, "VEN_8086&DEV_A282", "3&11583659&0&B8", "SATA")
	path, err := regfile.Write([]device.Record{rec}, filepath.Join(t.TempDir(), "devices"))
	require.NoError(t, err)
	return path
}

func newTestScheduler(t *testing.T, r Runner) *Scheduler {
	t.Helper()
	s := NewScheduler("", filepath.Join(t.TempDir(), "_utils"), logging.Discard)
	s.Runner = r
	return s
}

func TestInstall(t *testing.T) {
	artifact := writeArtifact(t)
	runner := &fakeRunner{}
	s := newTestScheduler(t, runner)

	dest, err := s.Install(artifact)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.UtilsDir, "devices.reg"), dest)

	want, err := os.ReadFile(artifact)
	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	srcInfo, err := os.Stat(artifact)
	require.NoError(t, err)
	dstInfo, err := os.Stat(dest)
	require.NoError(t, err)
	assert.True(t, srcInfo.ModTime().Equal(dstInfo.ModTime()))

	require.Len(t, runner.calls, 1)
	c := runner.calls[0]
	assert.True(t, c.wait, "install waits for schtasks")
	assert.Equal(t, "schtasks", c.name)
	assert.Equal(t, []string{
		"/Create",
		"/TN", "NomojectRegistryApply",
		"/TR", `regedit.exe /s "` + dest + `"`,
		"/SC", "ONSTART",
		"/RU", "SYSTEM",
		"/RL", "HIGHEST",
		"/F",
	}, c.args)
}

func TestInstall_AccessDenied(t *testing.T) {
	artifact := writeArtifact(t)
	before, err := os.ReadFile(artifact)
	require.NoError(t, err)

	runner := &fakeRunner{result: Result{ExitCode: 1, Stderr: "Access is denied.\r\n"}}
	s := newTestScheduler(t, runner)

	_, err = s.Install(artifact)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.Contains(t, cmdErr.Stderr, "Access is denied.")
	assert.Equal(t, "schtasks /Create exited with status 1: Access is denied.", err.Error())

	after, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Equal(t, before, after, "the written artifact survives a failed install")
}

func TestInstall_LaunchFailure(t *testing.T) {
	runner := &fakeRunner{runErr: errors.New("schtasks failed to start: not found")}
	s := newTestScheduler(t, runner)

	_, err := s.Install(writeArtifact(t))
	require.Error(t, err)
	var cmdErr *CommandError
	assert.False(t, errors.As(err, &cmdErr))
}

func TestInstall_MissingArtifact(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestScheduler(t, runner)

	_, err := s.Install(filepath.Join(t.TempDir(), "missing.reg"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, runner.calls, "schtasks is not invoked without a copy")
}

func TestInstall_FromUtilsDirKeepsArtifact(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestScheduler(t, runner)
	require.NoError(t, os.MkdirAll(s.UtilsDir, 0755))

	rec := device.NewRecord(device.DefaultRoot, "VEN_8086&DEV_A282", "3&11583659&0&B8", "SATA")
	artifact, err := regfile.Write([]device.Record{rec}, filepath.Join(s.UtilsDir, "devices"))
	require.NoError(t, err)
	before, err := os.ReadFile(artifact)
	require.NoError(t, err)
	require.NotEmpty(t, before)

	dest, err := s.Install(artifact)
	require.NoError(t, err)
	assert.Equal(t, artifact, dest)

	after, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, runner.calls, 1)

	entries, err := os.ReadDir(s.UtilsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary copies left behind")
}

func TestInstall_ReplacesPreviousCopy(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestScheduler(t, runner)

	first := writeArtifact(t)
	_, err := s.Install(first)
	require.NoError(t, err)

	rec := device.NewRecord(device.DefaultRoot, "VEN_10EC&DEV_8168", "4&1A2B3C&0&00E0", "NIC")
	second, err := regfile.Write([]device.Record{rec}, filepath.Join(t.TempDir(), "devices"))
	require.NoError(t, err)

	dest, err := s.Install(second)
	require.NoError(t, err)

	want, err := os.ReadFile(second)
	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunNow(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestScheduler(t, runner)

	require.NoError(t, s.RunNow())
	require.Len(t, runner.calls, 1)
	assert.False(t, runner.calls[0].wait, "run-now is fire-and-forget")
	assert.Equal(t, []string{"/Run", "/TN", "NomojectRegistryApply"}, runner.calls[0].args)

	runner.startErr = errors.New("boom")
	assert.Error(t, s.RunNow())
}

func TestRemove(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestScheduler(t, runner)

	require.NoError(t, s.Remove())
	assert.Equal(t, []string{"/Delete", "/TN", "NomojectRegistryApply", "/F"}, runner.calls[0].args)

	runner.result = Result{ExitCode: 1, Stderr: "ERROR: The system cannot find the file specified."}
	err := s.Remove()
	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Contains(t, err.Error(), "cannot find the file")
}

func TestNewScheduler_Defaults(t *testing.T) {
	t.Setenv("SystemDrive", "D:")
	s := NewScheduler("", "", logging.Discard)
	assert.Equal(t, DefaultName, s.Name)
	assert.Equal(t, `D:\Windows\System32\_utils`, s.UtilsDir)
	assert.IsType(t, ExecRunner{}, s.Runner)

	t.Setenv("SystemDrive", "")
	assert.Equal(t, `C:\Windows\System32\_utils`, DefaultUtilsDir())
}

func TestCommandError_NoStderr(t *testing.T) {
	err := &CommandError{Command: "schtasks /Create", ExitCode: 5}
	assert.Equal(t, "schtasks /Create exited with status 5", err.Error())
}

func TestApplyNow(t *testing.T) {
	var opened string
	err := ApplyNow("devices.reg", func(path string) error {
		opened = path
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "devices.reg", opened)

	err = ApplyNow("devices.reg", func(string) error { return errors.New("no handler") })
	assert.ErrorContains(t, err, "no handler")
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	r := ExecRunner{}

	res, err := r.Run("sh", "-c", "echo out; echo 'Access is denied.' >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "Access is denied.\n", res.Stderr)

	_, err = r.Run(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)

	marker := filepath.Join(t.TempDir(), "started")
	require.NoError(t, r.Start("sh", "-c", "touch "+marker))
	assert.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}
