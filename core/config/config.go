// Package config loads and validates the shell's startup configuration:
// identity, environment seed, and the initial filesystem image.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"

	"github.com/vshell/vsh/core/environ"
	"github.com/vshell/vsh/core/vfs"
	"github.com/vshell/vsh/core/vpath"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name looked up when a directory is given.
const ConfigurationName = "config.yaml"

type Configuration struct {
	Hostname string `json:"hostname" validate:"required,hostname_rfc1123"`
	User     string `json:"user" validate:"required"`
	Home     string `json:"home" validate:"required,startswith=/"`
	Prompt   string `json:"prompt"`

	LogLevel string `json:"log_level"`

	// Env seeds additional environment variables beyond the identity ones
	// derived from the fields above.
	Env map[string]string `json:"env"`

	// Filesystem is the initial filesystem image. A nil image yields a
	// tree containing only the home directory.
	Filesystem *vfs.TreeNode `json:"filesystem"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Environment builds the startup environment from the identity fields and
// the Env seed. Identity keys win over colliding seed entries.
func (c *Configuration) Environment() environ.Env {
	env := environ.NewMapEnvOf(c.Env)
	env.Setenv(environ.KeyHome, c.Home)
	env.Setenv(environ.KeyUser, c.User)
	env.Setenv(environ.KeyHostname, c.Hostname)
	if c.Prompt != "" {
		env.Setenv(environ.KeyPrompt, c.Prompt)
	}
	return env
}

// NewFilesystem builds the initial filesystem from the configured image,
// then makes sure the home directory exists.
func (c *Configuration) NewFilesystem() (*vfs.FileSystem, error) {
	fs := vfs.New()
	if c.Filesystem != nil {
		restored, err := vfs.Restore(c.Filesystem)
		if err != nil {
			return nil, err
		}
		fs = restored
	}

	home := vpath.New(c.Home).AsDir()
	if !fs.Has(home) {
		if err := fs.Add(home, vfs.NewDirectory(), true); err != nil {
			return nil, err
		}
	}
	return fs, nil
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
