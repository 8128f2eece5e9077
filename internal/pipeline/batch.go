package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult holds the outcome of one request. Err is set when that request
// failed; other requests are unaffected.
type BatchResult struct {
	Outcome Outcome `json:"outcome"`
	Err     error   `json:"-"`
	Error   string  `json:"error,omitempty"`
}

type BatchSummary struct {
	Quoted        int
	Clarification int
	Failed        int
}

// ProcessBatch runs reqs with at most workers in flight and returns one result
// per request in input order. A failing request is recorded and skipped; only
// cancellation of ctx stops the batch early.
func (p *Processor) ProcessBatch(ctx context.Context, reqs []Request, workers int) ([]BatchResult, BatchSummary, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]BatchResult, len(reqs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out, err := p.Process(gCtx, req)
			if err != nil {
				p.log.Warn("request failed", zap.String("request", req.ID), zap.Error(err))
				results[i] = BatchResult{Outcome: Outcome{ID: req.ID}, Err: err, Error: err.Error()}
				return nil
			}
			results[i] = BatchResult{Outcome: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, summarize(results), err
	}
	return results, summarize(results), nil
}

func summarize(results []BatchResult) BatchSummary {
	var s BatchSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Outcome.Status == StatusQuoted:
			s.Quoted++
		case r.Outcome.Status == StatusNeedsClarification:
			s.Clarification++
		}
	}
	return s
}
