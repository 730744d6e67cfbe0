package store

import (
	"fmt"
	"strings"
)

// Config is the persisted fcf document.
//
// Editor is nil until an editor has been set. Bindings maps a binding key to
// the path of the file it opens.
type Config struct {
	Editor   *string           `json:"editor"`
	Bindings map[string]string `json:"bindings"`
}

// NewConfig returns the default document: no editor and no bindings.
func NewConfig() *Config {
	return &Config{
		Editor:   nil,
		Bindings: map[string]string{},
	}
}

// EditorName returns the configured editor, or an empty string when none is set.
func (c *Config) EditorName() string {
	if c == nil || c.Editor == nil {
		return ""
	}

	return *c.Editor
}

// SetEditor sets the preferred editor.
func (c *Config) SetEditor(name string) {
	c.Editor = &name
}

// Bind binds key to path, replacing any previous path for key.
func (c *Config) Bind(key, path string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	c.normalize()
	c.Bindings[key] = path

	return nil
}

// Unbind removes the binding for key and reports whether it existed.
func (c *Config) Unbind(key string) bool {
	_, ok := c.Bindings[key]
	if !ok {
		return false
	}

	delete(c.Bindings, key)

	return true
}

// Lookup returns the path bound to key.
func (c *Config) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}

	path, ok := c.Bindings[key]

	return path, ok
}

// Resolve returns the path bound to key, or ErrBindingNotFound naming key.
func (c *Config) Resolve(key string) (string, error) {
	path, ok := c.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBindingNotFound, key)
	}

	return path, nil
}

// normalize replaces a null bindings member with an empty mapping.
func (c *Config) normalize() {
	if c.Bindings == nil {
		c.Bindings = map[string]string{}
	}
}
