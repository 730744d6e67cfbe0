package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/devantler-tech/fcf/pkg/cli/cmd"
	"github.com/devantler-tech/fcf/pkg/cli/ui/errorhandler"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

// run executes the fcf root command with args against configDir and returns
// what it wrote to stdout and stderr.
func run(t *testing.T, configDir string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")
	root.SetIn(strings.NewReader(""))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config-dir", configDir}, args...))

	err := cmd.Execute(root)

	return out.String(), errOut.String(), err
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")

	assert.Equal(t, "1.2.3 (Built on 2025-08-17 from Git SHA abc123)", root.Version)
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, t.TempDir(), "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "fcf version 1.2.3 (Built on 2025-08-17 from Git SHA abc123)")
}

func TestExecuteShowsHelp(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, t.TempDir())

	require.NoError(t, err)
	snaps.MatchSnapshot(t, strings.TrimSpace(out))
}

func TestEditShowsHelp(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, t.TempDir(), "edit", "--help")

	require.NoError(t, err)
	snaps.MatchSnapshot(t, strings.TrimSpace(out))
}

func TestExecuteWithNonexistentCommand(t *testing.T) {
	t.Parallel()

	_, errOut, err := run(t, t.TempDir(), "nonexistent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "nonexistent" for "fcf"`)
	assert.Empty(t, errOut, "cobra's error output belongs in the returned error")

	var cmdErr *errorhandler.CommandError
	assert.True(t, errors.As(err, &cmdErr))
}

func TestExecuteRejectsWrongArgumentCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bind without file", args: []string{"bind", "key"}, want: "accepts 2 arg(s), received 1"},
		{name: "edit without key", args: []string{"edit"}, want: "accepts 1 arg(s), received 0"},
		{name: "editor with two names", args: []string{"editor", "vim", "nano"}, want: "accepts 1 arg(s), received 2"},
		{name: "remove-binding without key", args: []string{"remove-binding"}, want: "accepts 1 arg(s), received 0"},
		{name: "print with argument", args: []string{"print", "extra"}, want: `unknown command "extra" for "fcf print"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := run(t, t.TempDir(), tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVerboseWritesDiagnosticsToStderr(t *testing.T) {
	t.Parallel()

	out, errOut, err := run(t, t.TempDir(), "--verbose", "print")

	require.NoError(t, err)
	assert.Contains(t, out, "the config is currently empty")
	assert.Contains(t, errOut, "level=debug")
}

func TestQuietByDefault(t *testing.T) {
	t.Parallel()

	_, errOut, err := run(t, t.TempDir(), "print")

	require.NoError(t, err)
	assert.Empty(t, errOut)
}
