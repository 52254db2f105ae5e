package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/princejain-2004/RESUME-EXPERT/internal/completion"
	"github.com/princejain-2004/RESUME-EXPERT/internal/observability"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume.json>...",
	Short: "Compute completion scores for resume files",
	Long:  "Loads each resume file, checks it against the resume schema and prints its completion percentage. Files are processed concurrently; output keeps argument order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScore,
}

var (
	scoreBreakdown bool
	scoreJSON      bool
)

func init() {
	scoreCmd.Flags().BoolVarP(&scoreBreakdown, "breakdown", "b", false, "Show each category's contribution")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(scoreCmd)
}

// scoreResult is one scored file.
type scoreResult struct {
	File       string                    `json:"file"`
	Completion int                       `json:"completion"`
	Breakdown  []completion.Contribution `json:"breakdown,omitempty"`
}

// scoreFiles loads and scores every path concurrently and returns the first
// failure, if any.
func scoreFiles(paths []string, withBreakdown bool) ([]scoreResult, error) {
	results := make([]scoreResult, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			d, err := loadDraft(path)
			if err != nil {
				return err
			}
			// Each goroutine owns its own slot.
			results[i] = scoreResult{File: path, Completion: completion.Score(d)}
			if withBreakdown {
				results[i].Breakdown = completion.Breakdown(d)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScore(cmd *cobra.Command, args []string) error {
	results, err := scoreFiles(args, scoreBreakdown)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scoreJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		return nil
	}

	printer := observability.NewPrinter(out)
	for _, r := range results {
		printer.PrintScore(filepath.Base(r.File), r.Completion, r.Breakdown)
	}
	return nil
}
