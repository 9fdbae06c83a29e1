package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/keyedit/internal/application/usecase"
	"github.com/bnema/keyedit/internal/cli/model"
	"github.com/bnema/keyedit/internal/cli/styles"
	"github.com/bnema/keyedit/internal/domain/entity"
)

var (
	historyAction string
	historyMax    int
	historyJSON   bool
	historyTable  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent keybinding changes",
	Long:  `List keybinding changes saved by the dialog, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyAction, "action", "", "only show changes to this action")
	historyCmd.Flags().IntVar(&historyMax, "max", usecase.DefaultHistoryLimit, "maximum entries to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().BoolVar(&historyTable, "table", false, "browse in an interactive table")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if app.History == nil {
		return fmt.Errorf("change history is disabled (database.disable_history)")
	}

	changes, err := app.ListHistoryUC.Execute(app.Ctx(), historyAction, historyMax)
	if err != nil {
		return err
	}

	switch {
	case historyJSON:
		return writeJSON(cmd.OutOrStdout(), changes)
	case historyTable && len(changes) > 0:
		return runHistoryTable(app.Theme, changes)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewKeysetCLIRenderer(app.Theme).RenderHistory(changes))
		return nil
	}
}

func runHistoryTable(theme *styles.Theme, changes []*entity.BindingChange) error {
	_, err := tea.NewProgram(model.NewHistoryModel(theme, changes)).Run()
	return err
}
