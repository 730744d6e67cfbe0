// Package envvar expands environment variable references in bound paths.
package envvar

import (
	"fmt"
	"os"
	"regexp"

	"github.com/devantler-tech/fcf/pkg/fsutil"
)

// pattern matches ${VAR_NAME} and ${VAR_NAME:-default} placeholders.
// Groups: 1 = variable name, 2 = ":-default" when present, 3 = default value.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(:-([^}]*))?\}`)

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(name string) (string, bool)

// Expand replaces ${VAR_NAME} and ${VAR_NAME:-default} placeholders with values
// from the process environment. See ExpandFunc.
func Expand(value string) string {
	return ExpandFunc(value, os.LookupEnv)
}

// ExpandFunc replaces placeholders with values from lookup.
// If a referenced variable is not set:
//   - With default syntax ${VAR:-default}: uses the default value
//   - Without default ${VAR}: uses an empty string
func ExpandFunc(value string, lookup LookupFunc) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := pattern.FindStringSubmatch(match)

		envValue, exists := lookup(groups[1])
		if exists {
			return envValue
		}

		return groups[3]
	})
}

// Unset returns the names of variables referenced without a default that
// lookup does not know, in order of appearance.
func Unset(value string, lookup LookupFunc) []string {
	var names []string

	for _, groups := range pattern.FindAllStringSubmatch(value, -1) {
		if groups[2] != "" {
			continue
		}

		if _, exists := lookup(groups[1]); !exists {
			names = append(names, groups[1])
		}
	}

	return names
}

// ExpandPath expands placeholders in path and then a leading ~ to the home
// directory, returning an absolute path.
func ExpandPath(path string) (string, error) {
	expanded, err := fsutil.ExpandHomePath(Expand(path))
	if err != nil {
		return "", fmt.Errorf("failed to expand path %q: %w", path, err)
	}

	return expanded, nil
}
