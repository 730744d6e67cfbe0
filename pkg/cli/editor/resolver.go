package editor

import (
	"os"
	"strings"
)

// EnvVars are consulted in order when neither an override nor a configured
// editor is set.
//
//nolint:gochecknoglobals
var EnvVars = []string{"EDITOR", "VISUAL"}

// Resolver handles editor resolution with proper precedence.
type Resolver struct {
	override     string
	configEditor string
	getenv       func(string) string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithGetenv replaces os.Getenv for environment lookups.
func WithGetenv(getenv func(string) string) ResolverOption {
	return func(r *Resolver) {
		if getenv != nil {
			r.getenv = getenv
		}
	}
}

// NewResolver creates a new editor resolver.
func NewResolver(override, configEditor string, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		override:     strings.TrimSpace(override),
		configEditor: strings.TrimSpace(configEditor),
		getenv:       os.Getenv,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve resolves the editor command based on precedence:
// 1. override (--editor flag or FCF_EDITOR)
// 2. editor from the fcf config
// 3. Environment variables (EDITOR, VISUAL).
func (r *Resolver) Resolve() (string, error) {
	if r.override != "" {
		return r.override, nil
	}

	if r.configEditor != "" {
		return r.configEditor, nil
	}

	for _, name := range EnvVars {
		if value := strings.TrimSpace(r.getenv(name)); value != "" {
			return value, nil
		}
	}

	return "", ErrNoEditor
}
