package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Runner runs a prepared command and waits for it to exit.
type Runner func(cmd *exec.Cmd) error

// Launcher starts an editor as a foreground child process.
type Launcher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	run    Runner
	log    logrus.FieldLogger
}

// LauncherOption configures a Launcher.
type LauncherOption func(*Launcher)

// WithStreams sets the streams inherited by the editor.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) LauncherOption {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// WithRunner replaces the function that runs the editor command.
func WithRunner(run Runner) LauncherOption {
	return func(l *Launcher) {
		if run != nil {
			l.run = run
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log logrus.FieldLogger) LauncherOption {
	return func(l *Launcher) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLauncher creates a Launcher attached to the process stdio by default.
func NewLauncher(opts ...LauncherOption) *Launcher {
	l := &Launcher{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		run:    (*exec.Cmd).Run,
		log:    logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Command builds the editor command for path. An editor value containing
// whitespace is split into the program and its leading arguments, so
// "code --wait" becomes `code --wait <path>`.
func (l *Launcher) Command(ctx context.Context, editorCmd, path string) (*exec.Cmd, error) {
	fields := strings.Fields(editorCmd)
	if len(fields) == 0 {
		return nil, ErrNoEditor
	}

	if path == "" {
		return nil, ErrEmptyPath
	}

	args := append(fields[1:len(fields):len(fields)], path)

	//nolint:gosec // launching the user's chosen editor is the purpose of this command
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	return cmd, nil
}

// Launch opens path in the editor and blocks until the editor exits.
// A non-zero exit status of the editor is logged, not returned; failing to
// start the editor is returned.
func (l *Launcher) Launch(ctx context.Context, editorCmd, path string) error {
	cmd, err := l.Command(ctx, editorCmd, path)
	if err != nil {
		return err
	}

	log := l.log.WithField("editor", editorCmd).WithField("path", path)
	log.Debug("launching editor")

	err = l.run(cmd)
	if err == nil {
		log.Debug("editor exited")

		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.WithField("status", exitErr.ExitCode()).Debug("editor exited with non-zero status")

		return nil
	}

	return fmt.Errorf("failed to run editor %q: %w", editorCmd, err)
}
