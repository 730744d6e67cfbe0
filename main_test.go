package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devantler-tech/fcf/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSafelyReturnsRunnerExitCode(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely([]string{"a"}, func(args []string) int {
		assert.Equal(t, []string{"a"}, args)

		return 3
	}, &errOut)

	assert.Equal(t, 3, code)
	assert.Empty(t, errOut.String())
}

func TestRunSafelyRecoversPanic(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely(nil, func([]string) int {
		panic("boom")
	}, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "unexpected failure: boom")
	assert.Contains(t, errOut.String(), "goroutine")
}

func TestRunSuccess(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	configDir := t.TempDir()
	code := run([]string{"--config-dir", configDir, "bind", "k", "/f"}, strings.NewReader(""), &out, &errOut)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "bound k to /f")
	assert.Empty(t, errOut.String())
	assert.FileExists(t, filepath.Join(configDir, store.FileName))
}

func TestRunFailureExitsWithOne(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	code := run([]string{"--config-dir", t.TempDir(), "edit", "missing", "--editor", "true"},
		strings.NewReader(""), &out, &errOut)

	require.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "✗ ")
	assert.Contains(t, errOut.String(), `binding does not exist: "missing"`)
}

func TestRunRemoveMissingBindingExitsWithZero(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	code := run([]string{"--config-dir", t.TempDir(), "remove-binding", "missing"}, strings.NewReader(""), &out, &errOut)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "binding missing does not exist")
}
