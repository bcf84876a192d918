package engine

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/Foodshareclub/commitguard/internal/model"
	"github.com/Foodshareclub/commitguard/internal/rules"
)

// Report is the complete result of one gate invocation.
type Report struct {
	Findings []model.Finding `json:"findings"`
	Tally    model.Tally     `json:"tally"`
	Outcome  model.Outcome   `json:"-"`
	Decision string          `json:"decision"`
}

// Engine scans a set of staged files and a staged diff against a compiled
// catalog. Files are scanned by a bounded worker pool; results are merged
// back in input order so the report is deterministic regardless of
// scheduling.
type Engine struct {
	cat     *rules.Catalog
	log     *zap.SugaredLogger
	workers int
}

func New(cat *rules.Catalog, log *zap.SugaredLogger) *Engine {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	return &Engine{cat: cat, log: log, workers: workers}
}

// Run scans files and diff and returns the aggregated report. The gate
// decision is computed only after every scan has completed, never from a
// partial tally.
func (e *Engine) Run(ctx context.Context, files []string, diff string) (Report, error) {
	store := NewContentStore()
	perFile := make([][]model.Finding, len(files))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perFile[i] = ScanFile(e.cat, store, files[i])
			}
		}()
	}

	var diffFindings []model.Finding
	wg.Add(1)
	go func() {
		defer wg.Done()
		diffFindings = ScanDiff(e.cat, diff)
	}()

	cancelled := false
	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			cancelled = true
		}
		if cancelled {
			break
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	findings, tally := Aggregate(perFile, diffFindings)
	outcome := Decide(tally)
	e.log.Debugw("scan complete",
		"files", len(files),
		"findings", tally.Total(),
		"decision", outcome.String(),
	)
	return Report{
		Findings: findings,
		Tally:    tally,
		Outcome:  outcome,
		Decision: outcome.String(),
	}, nil
}
