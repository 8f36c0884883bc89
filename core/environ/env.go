// Package environ defines the environment key/value store the shell
// expander reads for variable and home-directory substitution.
package environ

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Conventional keys. The expander only depends on the home directory; the
// rest are conventions shared with the interpreter layer.
const (
	KeyHome     = "HOME"
	KeyPWD      = "PWD"
	KeyUser     = "USER"
	KeyHostname = "HOSTNAME"
	KeyPrompt   = "PS1"
)

// Env is the environment provider boundary. Keys and values are arbitrary
// strings.
type Env interface {
	// Getenv retrieves the value for key, empty if unset.
	Getenv(key string) string

	// LookupEnv retrieves the value for key and whether it was set, so an
	// empty value and an unset key can be told apart.
	LookupEnv(key string) (string, bool)

	// Setenv sets the value for key.
	Setenv(key, value string) error

	// Unsetenv removes key.
	Unsetenv(key string) error

	// Environ returns the environment as sorted "key=value" strings.
	Environ() []string

	// UserHomeDir returns the current home directory, empty if unset.
	UserHomeDir() string
}

// MapEnv is an in-memory Env guarded by a mutex.
type MapEnv struct {
	mu  sync.RWMutex
	env map[string]string
}

var _ Env = (*MapEnv)(nil)

// NewMapEnv returns an empty environment.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvOf returns an environment seeded with the given variables.
func NewMapEnvOf(vars map[string]string) *MapEnv {
	out := NewMapEnv()
	for k, v := range vars {
		_ = out.Setenv(k, v)
	}
	return out
}

// NewMapEnvFromList builds an environment from "key=value" strings, the
// shape Environ produces.
func NewMapEnvFromList(environ []string) *MapEnv {
	out := NewMapEnv()
	for _, e := range environ {
		key, value, _ := strings.Cut(e, "=")
		_ = out.Setenv(key, value)
	}
	return out
}

// Getenv implements Env.Getenv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// LookupEnv implements Env.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.env[key]
	return val, ok
}

// Setenv implements Env.Setenv. It never fails for MapEnv.
func (m *MapEnv) Setenv(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
	return nil
}

// Unsetenv implements Env.Unsetenv.
func (m *MapEnv) Unsetenv(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.env, key)
	return nil
}

// Environ implements Env.Environ.
func (m *MapEnv) Environ() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.env))
	for k, v := range m.env {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(out)
	return out
}

// UserHomeDir implements Env.UserHomeDir.
func (m *MapEnv) UserHomeDir() string {
	return m.Getenv(KeyHome)
}
