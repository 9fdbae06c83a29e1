package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/keyedit/internal/application/usecase"
	"github.com/bnema/keyedit/internal/cli/model"
	"github.com/bnema/keyedit/internal/cli/styles"
)

var (
	editKeyset string
	editTitle  string
)

var editCmd = &cobra.Command{
	Use:   "edit [action]",
	Short: "Open the key sequence dialog for an action",
	Long: `Open the key sequence dialog for one action of a keyset.

Without an action, pick one from the keyset first. The accepted sequence
replaces the action's bindings in the config file; canceling changes nothing.

Examples:
  keyedit edit copy
  keyedit edit --keyset classic-mac redo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editKeyset, "keyset", "k", "", "keyset to edit (default editor.keyset)")
	editCmd.Flags().StringVar(&editTitle, "title", "", "dialog title")
}

func runEdit(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	renderer := styles.NewKeysetCLIRenderer(app.Theme)

	action := ""
	if len(args) > 0 {
		action = args[0]
	} else {
		view, viewErr := app.GetKeysetUC.Execute(ctx, editKeyset)
		if viewErr != nil {
			return viewErr
		}
		picked, runErr := tea.NewProgram(model.NewKeysetModel(app.Theme, view), tea.WithAltScreen()).Run()
		if runErr != nil {
			return fmt.Errorf("run keyset picker: %w", runErr)
		}
		picker, ok := picked.(model.KeysetModel)
		if !ok {
			return fmt.Errorf("unexpected model type")
		}
		if action = picker.Selected(); action == "" {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCanceled())
			return nil
		}
	}

	session, err := app.SetKeybindingUC.Prepare(ctx, usecase.EditKeybindingInput{
		Keyset: editKeyset,
		Action: action,
		Title:  editTitle,
	}, app.EditorOptions()...)
	if err != nil {
		return err
	}

	dialog := model.NewKeyBindingDialogModel(ctx, app.Theme, session.Editor)
	if _, err := tea.NewProgram(dialog, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run key sequence dialog: %w", err)
	}
	if !session.Editor.Closed() {
		session.Editor.Cancel()
	}

	saved, err := app.SetKeybindingUC.Apply(ctx, session)
	if err != nil {
		return err
	}
	if !saved {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCanceled())
		return nil
	}

	view, err := app.GetKeysetUC.Execute(ctx, session.Keyset)
	if err != nil {
		return err
	}
	for _, e := range view.Bindings {
		if e.Action == session.Action {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSaved(session.Keyset, session.Action, e.Sequences))
		}
	}
	return nil
}
