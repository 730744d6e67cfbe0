package cmd

import (
	"strings"

	"github.com/devantler-tech/fcf/pkg/di"
	"github.com/devantler-tech/fcf/pkg/notify"
	"github.com/devantler-tech/fcf/pkg/store"
	"github.com/spf13/cobra"
)

// NewEditorCmd creates the editor command.
func NewEditorCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "editor <name>",
		Short: "Set the default editor",
		Long: "Set the default editor used by 'fcf edit'. When no editor is set, " +
			"the EDITOR and VISUAL environment variables are used instead.",
		Example: "  fcf editor nvim\n  fcf editor 'code --wait'",
		Args:    cobra.ExactArgs(1),
		RunE:    di.RunEWithRuntime(runtimeContainer, di.WithStore(handleEditorRunE)),
	}
}

func handleEditorRunE(cmd *cobra.Command, _ di.Injector, s *store.Store) error {
	name := strings.TrimSpace(cmd.Flags().Arg(0))
	if name == "" {
		return errEmptyEditorName
	}

	err := s.SetEditor(name)
	if err != nil {
		return err
	}

	notify.Successf(cmd.OutOrStdout(), "set default editor to %s", name)

	return nil
}
