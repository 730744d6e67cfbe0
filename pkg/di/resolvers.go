package di

import (
	"fmt"

	"github.com/devantler-tech/fcf/pkg/cli/editor"
	"github.com/devantler-tech/fcf/pkg/cli/settings"
	"github.com/devantler-tech/fcf/pkg/store"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Dependency resolvers.

// ResolveSettings retrieves the invocation settings.
func ResolveSettings(injector Injector) (settings.Settings, error) {
	s, err := do.Invoke[settings.Settings](injector)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("resolve settings dependency: %w", err)
	}

	return s, nil
}

// ResolveStreams retrieves the standard streams of the running command.
func ResolveStreams(injector Injector) (Streams, error) {
	streams, err := do.Invoke[Streams](injector)
	if err != nil {
		return Streams{}, fmt.Errorf("resolve streams dependency: %w", err)
	}

	return streams, nil
}

// ResolveLogger retrieves the diagnostics logger.
func ResolveLogger(injector Injector) (*logrus.Logger, error) {
	logger, err := do.Invoke[*logrus.Logger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return logger, nil
}

// ResolveStore retrieves the config store.
func ResolveStore(injector Injector) (*store.Store, error) {
	s, err := do.Invoke[*store.Store](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve store dependency: %w", err)
	}

	return s, nil
}

// ResolveLauncher retrieves the editor launcher.
func ResolveLauncher(injector Injector) (*editor.Launcher, error) {
	launcher, err := do.Invoke[*editor.Launcher](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve launcher dependency: %w", err)
	}

	return launcher, nil
}

// Handler decorators.

// WithStore decorates a handler to automatically resolve the config store.
func WithStore(
	handler func(cmd *cobra.Command, injector Injector, s *store.Store) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		s, err := ResolveStore(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, s)
	}
}
