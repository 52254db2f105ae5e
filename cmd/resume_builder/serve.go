package main

import (
	"fmt"

	"github.com/princejain-2004/RESUME-EXPERT/internal/config"
	"github.com/princejain-2004/RESUME-EXPERT/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for accounts, resumes,
the step-by-step form and PDF export. Settings come from RESUME_* environment
variables and the optional YAML file named by RESUME_CONFIG.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides RESUME_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	srv, err := server.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
