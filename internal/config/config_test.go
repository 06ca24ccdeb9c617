package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/regstore"
	"github.com/junglivre/nomoject/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
language: pt_BR
registry:
  root: SYSTEM\CurrentControlSet\Enum\USB
task:
  name: CustomApply
  utils_dir: D:\tools
output:
  path: C:\Users\me\hide.reg
history:
  enabled: false
  path: /tmp/history.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "pt_BR", cfg.Language)
	assert.Equal(t, `SYSTEM\CurrentControlSet\Enum\USB`, cfg.Registry.Root)
	assert.Equal(t, "CustomApply", cfg.Task.Name)
	assert.Equal(t, `D:\tools`, cfg.Task.UtilsDir)
	assert.Equal(t, `C:\Users\me\hide.reg`, cfg.Output.Path)
	assert.False(t, cfg.HistoryEnabled())
	assert.Equal(t, "/tmp/history.db", cfg.HistoryPath())
}

func TestLoad_DefaultsForMissingFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, "language: en\n"))
	require.NoError(t, err)

	assert.Equal(t, device.DefaultRoot, cfg.Registry.Root)
	assert.Equal(t, task.DefaultName, cfg.Task.Name)
	assert.Equal(t, "nomoject.reg", cfg.Output.Path)
	assert.Empty(t, cfg.Task.UtilsDir)
	assert.True(t, cfg.HistoryEnabled())
	assert.Equal(t, "history.db", filepath.Base(cfg.HistoryPath()))
}

func TestLoad_NoConfigFound(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ProgramData", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig.Registry, cfg.Registry)
	assert.Equal(t, defaultConfig.Task, cfg.Task)
	assert.False(t, cfg.Simulated())
}

func TestLoad_Candidate(t *testing.T) {
	pd := t.TempDir()
	t.Setenv("ProgramData", pd)
	require.NoError(t, os.MkdirAll(filepath.Join(pd, "nomoject"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pd, "nomoject", "config.yaml"), []byte("language: pt_BR\n"), 0600))

	assert.Equal(t, filepath.Join(pd, "nomoject", "config.yaml"), Candidates()[0])

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pt_BR", cfg.Language)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "registry: [not, a, map]\n"))
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	treePath := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(treePath, []byte("root: SYSTEM\\CurrentControlSet\\Enum\\PCI\nkeys: []\n"), 0600))

	cfg, err := Load(writeConfig(t, "registry:\n  store_file: "+treePath+"\n"))
	require.NoError(t, err)
	require.True(t, cfg.Simulated())

	store, err := cfg.OpenStore()
	require.NoError(t, err)
	assert.IsType(t, &regstore.Tree{}, store)

	cfg.Registry.StoreFile = filepath.Join(t.TempDir(), "missing.yaml")
	store, err = cfg.OpenStore()
	assert.Error(t, err)
	assert.Nil(t, store)

	cfg.Registry.StoreFile = ""
	store, err = cfg.OpenStore()
	require.NoError(t, err)
	assert.NotNil(t, store)
}
