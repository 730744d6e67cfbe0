package cmd

import (
	"errors"

	"github.com/devantler-tech/fcf/pkg/di"
	"github.com/devantler-tech/fcf/pkg/notify"
	"github.com/devantler-tech/fcf/pkg/store"
	"github.com/spf13/cobra"
)

// NewRemoveBindingCmd creates the remove-binding command.
func NewRemoveBindingCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "remove-binding <key>",
		Aliases: []string{"r", "unbind"},
		Short:   "Remove a binding",
		Long:    "Remove a binding. Removing a key that is not bound changes nothing.",
		Args:    cobra.ExactArgs(1),
		RunE:    di.RunEWithRuntime(runtimeContainer, di.WithStore(handleRemoveBindingRunE)),
	}
}

func handleRemoveBindingRunE(cmd *cobra.Command, _ di.Injector, s *store.Store) error {
	key := cmd.Flags().Arg(0)

	err := s.Unbind(key)
	if errors.Is(err, store.ErrBindingNotFound) {
		notify.Warningf(cmd.OutOrStdout(), "binding %s does not exist", key)

		return nil
	}

	if err != nil {
		return err
	}

	notify.Successf(cmd.OutOrStdout(), "removed binding %s", key)

	return nil
}
