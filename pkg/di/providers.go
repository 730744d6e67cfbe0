package di

import (
	"io"

	"github.com/devantler-tech/fcf/pkg/cli/editor"
	"github.com/devantler-tech/fcf/pkg/cli/settings"
	"github.com/devantler-tech/fcf/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/fcf/pkg/store"
	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Streams are the standard streams of the running command.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewRuntime constructs the runtime used by the root command and tests.
// It registers the logger, config store and editor launcher.
func NewRuntime() *Runtime {
	return New(
		provideLogger,
		provideStore,
		provideLauncher,
	)
}

// ProvideSettings registers fixed settings, replacing flag-derived ones.
func ProvideSettings(s settings.Settings) Module {
	return func(i Injector) error {
		do.OverrideValue(i, s)

		return nil
	}
}

// ProvideStreams registers fixed streams, replacing the command's.
func ProvideStreams(streams Streams) Module {
	return func(i Injector) error {
		do.OverrideValue(i, streams)

		return nil
	}
}

// provideCommand registers the command's streams and the settings parsed from its flags.
func provideCommand(cmd *cobra.Command) Module {
	return func(i Injector) error {
		do.ProvideValue(i, Streams{
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			ErrOut: errorhandler.ErrWriter(cmd),
		})

		do.Provide(i, func(Injector) (settings.Settings, error) {
			return settings.Load(cmd.Flags())
		})

		return nil
	}
}

// provideLogger registers a logrus logger writing to stderr, at debug level when verbose.
func provideLogger(i Injector) error {
	do.Provide(i, func(i Injector) (*logrus.Logger, error) {
		s, err := ResolveSettings(i)
		if err != nil {
			return nil, err
		}

		streams, err := ResolveStreams(i)
		if err != nil {
			return nil, err
		}

		logger := logrus.New()
		logger.SetOutput(streams.ErrOut)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
		logger.SetLevel(logrus.WarnLevel)

		if s.Verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		return logger, nil
	})

	return nil
}

// provideStore registers the config store for the configured directory.
func provideStore(i Injector) error {
	do.Provide(i, func(i Injector) (*store.Store, error) {
		s, err := ResolveSettings(i)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(i)
		if err != nil {
			return nil, err
		}

		return store.New(s.ConfigDir, store.WithLogger(logger)), nil
	})

	return nil
}

// provideLauncher registers the editor launcher bound to the command's streams.
func provideLauncher(i Injector) error {
	do.Provide(i, func(i Injector) (*editor.Launcher, error) {
		streams, err := ResolveStreams(i)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(i)
		if err != nil {
			return nil, err
		}

		return editor.NewLauncher(
			editor.WithStreams(streams.In, streams.Out, streams.ErrOut),
			editor.WithLogger(logger),
		), nil
	})

	return nil
}
