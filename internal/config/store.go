package config

import (
	"github.com/junglivre/nomoject/internal/regstore"
)

// Simulated reports whether scans read a YAML tree instead of the registry.
func (c *Config) Simulated() bool {
	return c.Registry.StoreFile != ""
}

// OpenStore returns the registry store scans should read: the simulated
// tree when store_file is set, the live registry otherwise.
func (c *Config) OpenStore() (regstore.Store, error) {
	if c.Simulated() {
		tree, err := regstore.LoadTree(c.Registry.StoreFile)
		if err != nil {
			return nil, err
		}
		return tree, nil
	}
	return regstore.Live(), nil
}
