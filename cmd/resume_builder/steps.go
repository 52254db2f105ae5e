package main

import (
	"encoding/json"

	"github.com/princejain-2004/RESUME-EXPERT/internal/observability"
	"github.com/princejain-2004/RESUME-EXPERT/internal/wizard"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the form's steps",
	Args:  cobra.NoArgs,
	RunE:  runSteps,
}

var stepsJSON bool

func init() {
	stepsCmd.Flags().BoolVar(&stepsJSON, "json", false, "Print the step table as JSON")
	rootCmd.AddCommand(stepsCmd)
}

func runSteps(cmd *cobra.Command, _ []string) error {
	defs := wizard.Definitions()
	if stepsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSteps(defs)
	return nil
}
