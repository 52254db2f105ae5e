package main

import (
	"fmt"

	"github.com/princejain-2004/RESUME-EXPERT/internal/observability"
	"github.com/princejain-2004/RESUME-EXPERT/internal/wizard"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume.json>",
	Short: "Run the form's step validators against a resume file",
	Long:  "Checks a resume file against the resume schema, then runs one step's validator (--step) or every step's. Exits non-zero when any step fails.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var (
	validateStep string
)

func init() {
	validateCmd.Flags().StringVarP(&validateStep, "step", "s", "", "Step to validate (profile, contact, work, education, skills, projects, certifications, additional)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	d, err := loadDraft(args[0])
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())

	if validateStep != "" {
		step, err := wizard.ParseStep(validateStep)
		if err != nil {
			return err
		}
		errs := wizard.Validate(step, d)
		printer.PrintValidation(step, errs)
		if !errs.OK() {
			return fmt.Errorf("step %s failed with %d error(s)", step, len(errs))
		}
		return nil
	}

	failures := wizard.ValidateAll(d)
	printer.PrintValidationReport(failures)
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d steps failed", len(failures), wizard.StepCount)
	}
	return nil
}
