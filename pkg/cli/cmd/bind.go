package cmd

import (
	"github.com/devantler-tech/fcf/pkg/di"
	"github.com/devantler-tech/fcf/pkg/notify"
	"github.com/devantler-tech/fcf/pkg/store"
	"github.com/spf13/cobra"
)

const bindArgs = 2

// NewBindCmd creates the bind command.
func NewBindCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "bind <key> <file>",
		Aliases: []string{"b"},
		Short:   "Bind a key to a file",
		Long:    "Bind a key to a file. Binding an existing key replaces its file.",
		Example: "  fcf bind vim-rc ~/.vimrc\n  fcf bind nvim '${XDG_CONFIG_HOME:-~/.config}/nvim/init.lua'",
		Args:    cobra.ExactArgs(bindArgs),
		RunE:    di.RunEWithRuntime(runtimeContainer, di.WithStore(handleBindRunE)),
	}
}

func handleBindRunE(cmd *cobra.Command, _ di.Injector, s *store.Store) error {
	args := cmd.Flags().Args()
	key, file := args[0], args[1]

	err := s.Bind(key, file)
	if err != nil {
		return err
	}

	notify.Successf(cmd.OutOrStdout(), "bound %s to %s", key, file)

	return nil
}
