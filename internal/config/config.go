package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/junglivre/nomoject/internal/device"
	"github.com/junglivre/nomoject/internal/task"
	"gopkg.in/yaml.v3"
)

const appName = "nomoject"

type Config struct {
	// Language: "en", "pt_BR", or empty to follow the OS UI language
	Language string   `yaml:"language,omitempty"`
	Registry Registry `yaml:"registry"`
	Task     Task     `yaml:"task"`
	Output   Output   `yaml:"output"`
	History  History  `yaml:"history"`
}

type Registry struct {
	Root string `yaml:"root"`
	// StoreFile points at a YAML registry tree to scan instead of the live
	// registry
	StoreFile string `yaml:"store_file,omitempty"`
}

type Task struct {
	Name     string `yaml:"name"`
	UtilsDir string `yaml:"utils_dir,omitempty"`
}

type Output struct {
	Path string `yaml:"path"`
}

type History struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// defaultConfig provides baseline settings; utils_dir and history.path are
// resolved at run time
var defaultConfig = Config{
	Registry: Registry{Root: device.DefaultRoot},
	Task:     Task{Name: task.DefaultName},
	Output:   Output{Path: appName + ".reg"},
}

// Candidates lists the config files tried, in order, when no path is given.
func Candidates() []string {
	var candidates []string
	if pd := os.Getenv("ProgramData"); pd != "" {
		candidates = append(candidates, filepath.Join(pd, appName, "config.yaml"))
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, appName, "config.yaml"))
	}
	return append(candidates, "config.yaml")
}

// Load reads the config at path. With an empty path the first existing
// candidate is used, and defaults apply when none exists.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, c := range Candidates() {
			if _, err := os.Stat(c); err == nil {
				path = c
				break
			}
		}
	}

	cfg := defaultConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// Apply defaults for fields left empty
	if cfg.Registry.Root == "" {
		cfg.Registry.Root = defaultConfig.Registry.Root
	}
	if cfg.Task.Name == "" {
		cfg.Task.Name = defaultConfig.Task.Name
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = defaultConfig.Output.Path
	}

	return &cfg, nil
}

// HistoryEnabled reports whether generated artifacts are recorded.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// HistoryPath returns the history database location.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName, "history.db")
}
