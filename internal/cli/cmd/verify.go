package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/keyedit/internal/cli/styles"
)

var verifyJSON bool

var verifyCmd = &cobra.Command{
	Use:   "verify [keyset]",
	Short: "Check every stored sequence of a keyset",
	Long: `Probe every sequence of a keyset against the binding engine and
report the ones it refuses, along with sequences shared by several actions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "output as JSON")
}

type verifyProblem struct {
	Action   string `json:"action"`
	Sequence string `json:"sequence"`
	Error    string `json:"error"`
}

type verifyReport struct {
	Keyset   string              `json:"keyset"`
	Checked  int                 `json:"checked"`
	Problems []verifyProblem     `json:"problems"`
	Shared   map[string][]string `json:"shared"`
}

func runVerify(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	out, err := app.VerifyKeysetUC.Execute(app.Ctx(), name)
	if err != nil {
		return err
	}

	if verifyJSON {
		report := verifyReport{
			Keyset:   out.Keyset,
			Checked:  out.Checked,
			Problems: make([]verifyProblem, 0, len(out.Problems)),
			Shared:   make(map[string][]string, len(out.Shared)),
		}
		for _, p := range out.Problems {
			report.Problems = append(report.Problems, verifyProblem{Action: p.Action, Sequence: p.Sequence, Error: p.Err.Error()})
		}
		for _, s := range out.Shared {
			report.Shared[s.Sequence] = s.Actions
		}
		if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewKeysetCLIRenderer(app.Theme).RenderVerify(out))
	}

	if !out.OK() {
		return fmt.Errorf("%d sequences rejected in keyset %q", len(out.Problems), out.Keyset)
	}
	return nil
}
