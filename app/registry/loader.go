package registry

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

type file struct {
	Version string  `yaml:"version"`
	Groups  []Group `yaml:"groups"`
}

// Load reads a registry artifact from a YAML file:
//
//	version: "2024-06"
//	groups:
//	  - name: core science
//	    feeds:
//	      - https://www.quantamagazine.org/feed
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	r, err := New(cmp.Or(f.Version, path), f.Groups)
	if err != nil {
		return nil, fmt.Errorf("invalid registry %s: %w", path, err)
	}

	slog.Debug("Registry loaded", "path", path, "version", r.Version(), "feeds", r.Len(), "groups", len(f.Groups))
	return r, nil
}

// LoadOrDefault loads path when set and falls back to the built-in registry otherwise.
func LoadOrDefault(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
