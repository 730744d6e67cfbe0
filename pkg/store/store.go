package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devantler-tech/fcf/pkg/fsutil"
	"github.com/sirupsen/logrus"
)

// FileName is the name of the config document inside the config directory.
const FileName = "fcf"

const jsonIndent = "  "

// Store reads and writes the config document in a config directory.
type Store struct {
	path string
	log  logrus.FieldLogger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Store for the document at <dir>/fcf.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		path: filepath.Join(dir, FileName),
		log:  logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Path returns the location of the config document.
func (s *Store) Path() string {
	return s.path
}

// LoadRaw returns the document exactly as stored, creating an empty document
// (and its directory) when none exists.
func (s *Store) LoadRaw() ([]byte, error) {
	err := fsutil.EnsureFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare config file: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", s.path, err)
	}

	s.log.WithField("path", s.path).WithField("bytes", len(data)).Debug("read config file")

	return data, nil
}

// Load returns the stored config. An empty document yields the default config.
// A non-empty document that is not valid JSON yields ErrMalformedConfig.
func (s *Store) Load() (*Config, error) {
	data, err := s.LoadRaw()
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.log.WithField("path", s.path).Debug("config file is empty, using defaults")

		return NewConfig(), nil
	}

	cfg := &Config{}

	err = json.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedConfig, s.path, err)
	}

	cfg.normalize()

	return cfg, nil
}

// Save replaces the stored document with cfg as indented JSON.
func (s *Store) Save(cfg *Config) error {
	if cfg == nil {
		return ErrNilConfig
	}

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", jsonIndent)

	err := encoder.Encode(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = fsutil.WriteFileAtomic(s.path, buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	s.log.WithField("path", s.path).WithField("bindings", len(cfg.Bindings)).Debug("saved config file")

	return nil
}

// SetEditor stores name as the preferred editor.
func (s *Store) SetEditor(name string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	cfg.SetEditor(name)

	return s.Save(cfg)
}

// Bind binds key to path, overwriting an existing binding for key.
func (s *Store) Bind(key, path string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	err = cfg.Bind(key, path)
	if err != nil {
		return err
	}

	return s.Save(cfg)
}

// Unbind removes the binding for key. When key is not bound it returns
// ErrBindingNotFound and the document is not written.
func (s *Store) Unbind(key string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}

	if !cfg.Unbind(key) {
		return fmt.Errorf("%w: %q", ErrBindingNotFound, key)
	}

	return s.Save(cfg)
}

// Resolve returns the path bound to key.
func (s *Store) Resolve(key string) (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}

	return cfg.Resolve(key)
}
