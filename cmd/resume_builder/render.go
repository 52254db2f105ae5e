package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/princejain-2004/RESUME-EXPERT/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <resume.json>",
	Short: "Render a resume file as HTML, plain text or PDF",
	Long:  "Renders a resume file with its template theme. HTML and text go to stdout unless --out is given; PDF needs --out and a local Chrome or Chromium.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var (
	renderFormat  string
	renderOutput  string
	renderChrome  string
	renderTimeout time.Duration
)

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html, text or pdf")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output file (default stdout)")
	renderCmd.Flags().StringVar(&renderChrome, "chrome", "", "Path to the Chrome binary for PDF output")
	renderCmd.Flags().DurationVar(&renderTimeout, "timeout", rendering.DefaultExportTimeout, "PDF export timeout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := rendering.ParseFormat(renderFormat)
	if err != nil {
		return err
	}
	if format == rendering.FormatPDF && renderOutput == "" {
		return fmt.Errorf("--out is required for pdf output")
	}

	d, err := loadDraft(args[0])
	if err != nil {
		return err
	}

	var content []byte
	switch format {
	case rendering.FormatHTML:
		html, err := rendering.RenderHTML(d)
		if err != nil {
			return err
		}
		content = []byte(html)
	case rendering.FormatText:
		text, err := rendering.RenderText(d)
		if err != nil {
			return err
		}
		content = []byte(text)
	case rendering.FormatPDF:
		content, err = rendering.NewPDFExporter(renderChrome, renderTimeout).Export(cmd.Context(), d)
		if err != nil {
			return err
		}
	}

	if renderOutput == "" {
		return writeAll(cmd.OutOrStdout(), content)
	}
	if err := os.WriteFile(renderOutput, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d bytes)\n", renderOutput, len(content))
	return nil
}

func writeAll(w io.Writer, content []byte) error {
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
