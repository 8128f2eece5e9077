package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"freightquote/internal/pipeline"
)

var (
	reprocessOut     string
	reprocessWorkers int
)

var reprocessCmd = &cobra.Command{
	Use:   "reprocess <requests.json>",
	Short: "Re-price a batch of stored requests",
	Long: `Re-price a JSON array of requests ({id, sender, rawText, reply}) against
the current rate sheet. A failing request is recorded in the output and the
rest of the batch continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runReprocess,
}

func init() {
	reprocessCmd.Flags().StringVarP(&reprocessOut, "out", "o", "", "results file (default stdout)")
	reprocessCmd.Flags().IntVarP(&reprocessWorkers, "workers", "w", 0, "parallel workers (default REPROCESS_WORKERS)")
}

type reprocessReport struct {
	RateCard string                 `json:"rateCard"`
	Terms    string                 `json:"terms"`
	Summary  pipeline.BatchSummary  `json:"summary"`
	Results  []pipeline.BatchResult `json:"results"`
}

func runReprocess(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read requests: %w", err)
	}
	var reqs []pipeline.Request
	if err := json.Unmarshal(data, &reqs); err != nil {
		return fmt.Errorf("decode requests: %w", err)
	}

	workers := reprocessWorkers
	if workers < 1 {
		workers = cfg.ReprocessWorkers
	}
	results, summary, err := pipeline.NewProcessor(sheet, log).ProcessBatch(cmd.Context(), reqs, workers)
	if err != nil {
		return err
	}
	log.Info("reprocess done",
		zap.Int("requests", len(reqs)),
		zap.Int("quoted", summary.Quoted),
		zap.Int("clarification", summary.Clarification),
		zap.Int("failed", summary.Failed))

	var w io.Writer = cmd.OutOrStdout()
	if reprocessOut != "" {
		f, err := os.Create(reprocessOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reprocessReport{
		RateCard: sheet.Name,
		Terms:    sheet.TermsText(),
		Summary:  summary,
		Results:  results,
	})
}
