package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/keyedit/internal/application/usecase"
	"github.com/bnema/keyedit/internal/cli/styles"
	"github.com/bnema/keyedit/internal/domain/validation"
)

var (
	checkKeyset    string
	checkModifiers []string
	checkFinalKey  string
	checkJSON      bool
)

var checkCmd = &cobra.Command{
	Use:   "check [sequence]",
	Short: "Check a key sequence without saving it",
	Long: `Run a key sequence through the same checks as the dialog.

A sequence argument is checked as advanced entry: only the binding engine
judges it. With --mod and --key the sequence is built as in basic entry
and the binding rules apply too.

Examples:
  keyedit check '<Control-Key-x> <Alt-Key-F4>'
  keyedit check --mod Control --mod Shift --key z`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkKeyset, "keyset", "k", "", "keyset used for the duplicate check")
	checkCmd.Flags().StringArrayVarP(&checkModifiers, "mod", "m", nil, "modifier to toggle (repeatable)")
	checkCmd.Flags().StringVar(&checkFinalKey, "key", "", "final key label, e.g. a, F5, \"Page Up\"")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output as JSON")
}

type checkResult struct {
	Sequence string `json:"sequence"`
	Mode     string `json:"mode"`
	Accepted bool   `json:"accepted"`
	Error    string `json:"error,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	in := usecase.CheckSequenceInput{
		Keyset:    checkKeyset,
		Modifiers: checkModifiers,
		FinalKey:  checkFinalKey,
		Platform:  app.Platform,
	}
	if len(args) > 0 {
		in.Raw = args[0]
	}

	out, err := app.CheckSequenceUC.Execute(app.Ctx(), in)
	if err != nil {
		return err
	}

	if checkJSON {
		res := checkResult{Sequence: out.Sequence, Mode: out.Mode.String(), Accepted: out.Accepted()}
		if !out.Accepted() {
			res.Error = strings.ReplaceAll(validation.Message(out.Err), "\n\n", " ")
		}
		if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewKeysetCLIRenderer(app.Theme).RenderCheck(out))
	}

	if !out.Accepted() {
		return fmt.Errorf("key sequence %q rejected", out.Sequence)
	}
	return nil
}
