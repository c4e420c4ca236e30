// Package file provides a durable core.Store persisted as a single JSON object
// file. The file system is abstracted through afero so tests can run against
// an in-memory file system.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/hupe1980/telemetry/core"
)

// DefaultNamespace names the backing file when none is configured.
const DefaultNamespace = "AnalyticsSDK"

// Options configures a file Store.
type Options struct {
	// Fs is the file system to persist to. Defaults to the OS file system.
	Fs afero.Fs
	// Namespace is the file name (without extension) inside Dir.
	Namespace string
}

// Store keeps every key in one JSON file. Writes replace the file atomically
// through a temp file and rename, so a crash never leaves a torn document.
type Store struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// New creates a Store writing to <dir>/<namespace>.json, creating dir if needed.
func New(dir string, optFns ...func(o *Options)) (*Store, error) {
	opts := Options{Fs: afero.NewOsFs(), Namespace: DefaultNamespace}
	for _, fn := range optFns {
		fn(&opts)
	}
	if dir == "" {
		return nil, fmt.Errorf("%w: file store directory must not be empty", core.ErrInvalidConfiguration)
	}
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if err := opts.Fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create store directory: %w", err)
	}
	return &Store{fs: opts.Fs, path: filepath.Join(dir, opts.Namespace+".json")}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Put stores (or overwrites) value under key.
func (s *Store) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Remove deletes key. Missing keys are ignored.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.save(values)
}

// load reads the backing file; caller must hold mu.
func (s *Store) load() (map[string]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return values, nil
}

// save writes values to a temp file and renames it over the backing file;
// caller must hold mu.
func (s *Store) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
