// Package errorhandler runs cobra commands and turns their failures into
// single user-facing errors.
package errorhandler

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// Normalizer cleans up the text cobra writes to its error stream.
type Normalizer interface {
	Normalize(raw string) string
}

// Executor coordinates Cobra execution, capturing stderr output and surfacing aggregated errors.
type Executor struct {
	normalizer Normalizer
}

// NewExecutor constructs an Executor using DefaultNormalizer.
func NewExecutor() *Executor {
	return &Executor{normalizer: DefaultNormalizer{}}
}

// Execute runs cmd with a background context. See ExecuteContext.
func (e *Executor) Execute(cmd *cobra.Command) error {
	return e.ExecuteContext(context.Background(), cmd)
}

// ExecuteContext runs cmd while intercepting Cobra's error stream.
// It returns nil on success, or a *CommandError holding the normalized cobra
// output and the original error.
func (e *Executor) ExecuteContext(ctx context.Context, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	ctx = context.WithValue(ctx, errWriterKey{}, originalErrWriter)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		_, _ = errBuf.WriteTo(originalErrWriter)

		return nil
	}

	return &CommandError{
		message: e.normalizer.Normalize(errBuf.String()),
		cause:   err,
	}
}

type errWriterKey struct{}

// ErrWriter returns the stderr writer cmd had before the Executor started
// capturing cobra's error output. Commands use it for output that must reach
// the user directly, such as logs and child processes. Outside an Executor it
// returns cmd.ErrOrStderr().
func ErrWriter(cmd *cobra.Command) io.Writer {
	if ctx := cmd.Context(); ctx != nil {
		if writer, ok := ctx.Value(errWriterKey{}).(io.Writer); ok {
			return writer
		}
	}

	return cmd.ErrOrStderr()
}

// CommandError represents a Cobra execution failure augmented with normalized stderr output.
type CommandError struct {
	message string
	cause   error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message != "":
		if strings.Contains(e.message, e.cause.Error()) {
			return e.message
		}

		return e.message + ": " + e.cause.Error()
	default:
		return e.cause.Error()
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// DefaultNormalizer trims whitespace, removes cobra's "Error:" prefix and
// preserves multi-line usage hints.
type DefaultNormalizer struct{}

// Normalize implements Normalizer.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}
