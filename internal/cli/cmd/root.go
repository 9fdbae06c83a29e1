// Package cmd provides Cobra CLI commands for keyedit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/keyedit/internal/cli"
	"github.com/bnema/keyedit/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "keyedit",
		Short: "Edit keyboard accelerator bindings",
		Long: `keyedit - pick, check and store keyboard accelerator bindings.

Keysets map editor actions to Tk-style key sequences such as
<Control-Key-s> or <Alt-Key-F4>. keyedit opens a key sequence dialog for
one action, checks the candidate against the binding rules and the
binding engine, and saves the result to the config file.

Use 'keyedit edit <action>' to open the dialog, or explore the
subcommands to list, check and verify keysets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/keyedit/config.toml)")
	flags.StringVar(&rootOpts.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&rootOpts.Platform, "platform", "", "modifier set to use: linux, windows or darwin")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
	},
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
