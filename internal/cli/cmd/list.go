package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/keyedit/internal/cli"
	"github.com/bnema/keyedit/internal/cli/styles"
	"github.com/bnema/keyedit/internal/infrastructure/config"
	"github.com/bnema/keyedit/internal/logging"
)

var (
	listJSON  bool
	listAll   bool
	listWatch bool
)

var listCmd = &cobra.Command{
	Use:   "list [keyset]",
	Short: "Show the bindings of a keyset",
	Long: `Show every action of a keyset and its key sequences.

Sequences bound to more than one action are marked as shared.
With --all, list the configured keyset names instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "list keyset names")
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "re-print when the config file changes")
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	if err := printList(cmd, app, name); err != nil {
		return err
	}
	if !listWatch {
		return nil
	}
	return watchList(cmd, app, name)
}

func printList(cmd *cobra.Command, app *cli.App, name string) error {
	ctx := app.Ctx()
	renderer := styles.NewKeysetCLIRenderer(app.Theme)

	if listAll {
		names, err := app.ListKeysetsUC.Execute(ctx)
		if err != nil {
			return err
		}
		if listJSON {
			return writeJSON(cmd.OutOrStdout(), names)
		}
		active, _ := app.Keybindings.ActiveKeyset(ctx)
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderKeysets(names, active))
		return nil
	}

	view, err := app.GetKeysetUC.Execute(ctx, name)
	if err != nil {
		return err
	}
	if listJSON {
		return writeJSON(cmd.OutOrStdout(), view)
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderKeyset(view))
	return nil
}

func watchList(cmd *cobra.Command, app *cli.App, name string) error {
	log := logging.FromContext(app.Ctx())
	renderer := styles.NewConfigRenderer(app.Theme)

	changed := make(chan struct{}, 1)
	app.ConfigManager.OnConfigChange(func(_ *config.Config) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err := app.ConfigManager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	for {
		select {
		case <-sig:
			return nil
		case <-changed:
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderReloaded(app.ConfigManager.GetConfigFile()))
			if err := printList(cmd, app, name); err != nil {
				log.Warn().Err(err).Msg("failed to list keyset after reload")
			}
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
