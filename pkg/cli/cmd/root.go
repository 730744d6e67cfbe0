package cmd

import (
	"context"
	"fmt"

	"github.com/devantler-tech/fcf/pkg/cli/settings"
	"github.com/devantler-tech/fcf/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/fcf/pkg/di"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return newRootCmd(di.NewRuntime(), version, commit, date)
}

func newRootCmd(runtimeContainer *di.Runtime, version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fcf",
		Short:        "Open your configuration files by name",
		Long:         "fcf binds short keys to configuration files and opens them in your editor.",
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	settings.AddPersistentFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewEditCmd(runtimeContainer))
	cmd.AddCommand(NewEditorCmd(runtimeContainer))
	cmd.AddCommand(NewBindCmd(runtimeContainer))
	cmd.AddCommand(NewRemoveBindingCmd(runtimeContainer))
	cmd.AddCommand(NewPrintCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	return ExecuteContext(context.Background(), cmd)
}

// ExecuteContext runs the provided root command with ctx and handles errors.
func ExecuteContext(ctx context.Context, cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	//nolint:wrapcheck // CommandError already carries the normalized message and cause.
	return executor.ExecuteContext(ctx, cmd)
}
