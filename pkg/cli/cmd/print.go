package cmd

import (
	"bytes"

	"github.com/devantler-tech/fcf/pkg/di"
	"github.com/devantler-tech/fcf/pkg/notify"
	"github.com/devantler-tech/fcf/pkg/store"
	"github.com/spf13/cobra"
)

// NewPrintCmd creates the print command.
func NewPrintCmd(runtimeContainer *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the current configuration",
		Long:  "Print the config document exactly as it is stored.",
		Args:  cobra.NoArgs,
		RunE:  di.RunEWithRuntime(runtimeContainer, di.WithStore(handlePrintRunE)),
	}
}

func handlePrintRunE(cmd *cobra.Command, _ di.Injector, s *store.Store) error {
	data, err := s.LoadRaw()
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		notify.Infof(cmd.OutOrStdout(), "the config is currently empty")

		return nil
	}

	out := cmd.OutOrStdout()

	_, err = out.Write(data)
	if err != nil {
		return err
	}

	if !bytes.HasSuffix(data, []byte("\n")) {
		_, err = out.Write([]byte("\n"))
		if err != nil {
			return err
		}
	}

	return nil
}
