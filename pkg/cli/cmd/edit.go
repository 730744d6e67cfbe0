package cmd

import (
	"os"

	"github.com/devantler-tech/fcf/pkg/cli/editor"
	"github.com/devantler-tech/fcf/pkg/cli/settings"
	"github.com/devantler-tech/fcf/pkg/di"
	"github.com/devantler-tech/fcf/pkg/envvar"
	"github.com/devantler-tech/fcf/pkg/notify"
	"github.com/devantler-tech/fcf/pkg/store"
	"github.com/spf13/cobra"
)

// NewEditCmd creates the edit command.
func NewEditCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <key>",
		Aliases: []string{"e"},
		Short:   "Open a bound file in your editor",
		Long: `Open the file bound to key in your editor and wait for it to exit.

The editor is chosen in this order:
  1. --editor or FCF_EDITOR
  2. the editor set with 'fcf editor'
  3. the EDITOR environment variable
  4. the VISUAL environment variable

~ and ${VAR} or ${VAR:-default} references in the bound path are expanded.`,
		Example: "  fcf edit vim-rc\n  fcf edit vim-rc --editor nano",
		Args:    cobra.ExactArgs(1),
		RunE:    di.RunEWithRuntime(runtimeContainer, di.WithStore(handleEditRunE)),
	}

	settings.AddEditorFlag(cmd.Flags())

	return cmd
}

func handleEditRunE(cmd *cobra.Command, injector di.Injector, s *store.Store) error {
	key := cmd.Flags().Arg(0)

	opts, err := di.ResolveSettings(injector)
	if err != nil {
		return err
	}

	logger, err := di.ResolveLogger(injector)
	if err != nil {
		return err
	}

	launcher, err := di.ResolveLauncher(injector)
	if err != nil {
		return err
	}

	cfg, err := s.Load()
	if err != nil {
		return err
	}

	editorCmd, err := editor.NewResolver(opts.Editor, cfg.EditorName()).Resolve()
	if err != nil {
		return err
	}

	bound, err := cfg.Resolve(key)
	if err != nil {
		return err
	}

	for _, name := range envvar.Unset(bound, os.LookupEnv) {
		logger.WithField("variable", name).Warnf("%s is not set, expanding it to an empty string", name)
	}

	path, err := envvar.ExpandPath(bound)
	if err != nil {
		return err
	}

	logger.WithField("key", key).WithField("path", path).Debug("resolved binding")

	watcher, err := editor.WatchFile(path)
	if err != nil {
		logger.WithError(err).Debug("change detection disabled")
	}

	notify.Activityf(cmd.OutOrStdout(), "opening %s in %s", path, editorCmd)

	err = launcher.Launch(cmd.Context(), editorCmd, path)
	if err != nil {
		if watcher != nil {
			watcher.Stop()
		}

		return err
	}

	if watcher == nil {
		return nil
	}

	if watcher.Stop() {
		notify.Successf(cmd.OutOrStdout(), "saved changes to %s", path)
	} else {
		notify.Infof(cmd.OutOrStdout(), "no changes to %s", path)
	}

	return nil
}
