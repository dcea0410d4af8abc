package store

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// DefaultKey is the environment variable read by [Env] when Key is empty.
const DefaultKey = "DEBUG"

var (
	// ErrLoad indicates the stored spec could not be read.
	ErrLoad = errors.New("load debug spec")
	// ErrSave indicates the enable-spec could not be persisted.
	ErrSave = errors.New("save debug spec")
	// ErrInvalidDocument indicates a stored document failed validation.
	ErrInvalidDocument = errors.New("invalid debug document")
)

// Store persists a single enable-spec.
type Store interface {
	// Load returns the stored spec, or "" when nothing is stored.
	Load() (string, error)
	// Save stores spec. An empty spec removes the stored value.
	Save(spec string) error
}

// Env stores the enable-spec in an environment variable of the current process.
type Env struct {
	// Key is the variable name. Defaults to [DefaultKey].
	Key string
}

func (e Env) key() string {
	if e.Key == "" {
		return DefaultKey
	}

	return e.Key
}

// Load implements [Store].
func (e Env) Load() (string, error) {
	return os.Getenv(e.key()), nil
}

// Save implements [Store]. An empty spec unsets the variable.
func (e Env) Save(spec string) error {
	var err error
	if spec == "" {
		err = os.Unsetenv(e.key())
	} else {
		err = os.Setenv(e.key(), spec)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	return nil
}

// Memory stores the enable-spec in memory. Safe for concurrent use. The zero value
// is empty and ready to use.
type Memory struct {
	spec string
	mu   sync.Mutex
}

// Load implements [Store].
func (m *Memory) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.spec, nil
}

// Save implements [Store].
func (m *Memory) Save(spec string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.spec = spec

	return nil
}
