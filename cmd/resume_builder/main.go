// Package main provides the entry point for the resume builder API server and
// its command-line tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "resume_builder",
	Short:         "Resume Builder HTTP API Server",
	Long:          "Resume Builder stores resume drafts, guides users through a step-by-step form, scores completion and exports finished resumes via REST API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
