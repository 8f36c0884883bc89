package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads and validates a configuration from fs. Given a directory,
// the conventional file name inside it is used.
func Load(fs afero.Fs, path string) (*Configuration, error) {
	if info, err := fs.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ConfigurationName)
	}

	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return &out, nil
}

// Initialize writes the default configuration into the directory so it can
// be edited and loaded later. Existing files are left alone.
func Initialize(fs afero.Fs, dir string) (string, error) {
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ConfigurationName)
	if _, err := fs.Stat(path); err == nil {
		return path, os.ErrExist
	}

	if err := afero.WriteFile(fs, path, defaultConfigData, 0600); err != nil {
		return "", err
	}
	return path, nil
}
