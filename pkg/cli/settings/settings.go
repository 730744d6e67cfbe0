// Package settings resolves fcf runtime settings from flags and the environment.
//
// Values are read through viper with the precedence flag > FCF_* environment
// variable > default.
package settings

import (
	"fmt"
	"strings"

	"github.com/devantler-tech/fcf/pkg/fsutil"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by fcf.
const EnvPrefix = "FCF"

// Flag and key names.
const (
	ConfigDirKey = "config-dir"
	VerboseKey   = "verbose"
	EditorKey    = "editor"
)

// Settings are the resolved runtime settings of one invocation.
type Settings struct {
	// ConfigDir is the directory holding the fcf document.
	ConfigDir string `mapstructure:"config-dir"`
	// Verbose enables debug diagnostics on stderr.
	Verbose bool `mapstructure:"verbose"`
	// Editor overrides the configured editor for a single edit.
	Editor string `mapstructure:"editor"`
}

// AddPersistentFlags registers the flags shared by every command.
func AddPersistentFlags(flags *pflag.FlagSet) {
	flags.String(ConfigDirKey, "", "directory holding the fcf config document (default $HOME/.config)")
	flags.BoolP(VerboseKey, "v", false, "print diagnostics to stderr")
}

// AddEditorFlag registers the --editor override flag.
func AddEditorFlag(flags *pflag.FlagSet) {
	flags.StringP(EditorKey, "E", "", "editor to use instead of the configured one")
}

// NewViper returns a viper instance reading FCF_* environment variables and
// the given flags.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{ConfigDirKey, VerboseKey, EditorKey} {
		err := v.BindEnv(key)
		if err != nil {
			return nil, fmt.Errorf("failed to bind %s to the environment: %w", key, err)
		}
	}

	if flags != nil {
		err := v.BindPFlags(flags)
		if err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	return v, nil
}

// Load resolves Settings from flags and the environment. An empty config
// directory falls back to fsutil.DefaultConfigDir; a leading ~ is expanded.
func Load(flags *pflag.FlagSet) (Settings, error) {
	v, err := NewViper(flags)
	if err != nil {
		return Settings{}, err
	}

	var s Settings

	err = v.Unmarshal(&s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}

	s.Editor = strings.TrimSpace(s.Editor)

	s.ConfigDir, err = resolveConfigDir(s.ConfigDir)
	if err != nil {
		return Settings{}, err
	}

	return s, nil
}

func resolveConfigDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		defaultDir, err := fsutil.DefaultConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine config directory: %w", err)
		}

		return defaultDir, nil
	}

	expanded, err := fsutil.ExpandHomePath(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory %q: %w", dir, err)
	}

	return expanded, nil
}
