package screener

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"BreakoutSentinel/internal/collector"
	"BreakoutSentinel/internal/model"
)

// Snapshot holds the outcome of one screening pass.
type Snapshot struct {
	Results     []model.AnalysisResult `json:"results"`
	FetchErrors []string               `json:"fetch_errors,omitempty"`
	Scanned     int                    `json:"scanned"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// DoubleBreakouts returns the subset of results that broke both ranges.
func (s *Snapshot) DoubleBreakouts() []model.AnalysisResult {
	var out []model.AnalysisResult
	for _, r := range s.Results {
		if r.IsDoubleBreakout() {
			out = append(out, r)
		}
	}
	return out
}

// Runner executes a full screening pass over the watch list.
type Runner struct {
	Collector *collector.Collector
	Analyzer  *Analyzer
	Watchlist []string
}

// NewRunner creates a Runner for the given watch list.
func NewRunner(col *collector.Collector, an *Analyzer, watchlist []string) *Runner {
	return &Runner{Collector: col, Analyzer: an, Watchlist: watchlist}
}

// Run screens every watch-list symbol sequentially. Per-symbol failures are
// contained: a failed fetch or unusable series only excludes that symbol.
// Cancelling the context stops the pass between symbols.
func (r *Runner) Run(ctx context.Context) *Snapshot {
	snap := &Snapshot{GeneratedAt: time.Now(), Scanned: len(r.Watchlist)}

	var results []model.AnalysisResult
	for _, symbol := range r.Watchlist {
		if ctx.Err() != nil {
			log.Printf("[WARN] pass cancelled: %v", ctx.Err())
			break
		}
		data, err := r.Collector.Collect(symbol)
		if err != nil {
			log.Printf("[ERROR] %s: %v", symbol, err)
			snap.FetchErrors = append(snap.FetchErrors, fmt.Sprintf("%s: %v", symbol, err))
			continue
		}
		res, skip := r.Analyzer.Analyze(data)
		if res == nil {
			if skip != "" {
				log.Printf("[WARN] %s: skipped: %s", symbol, skip)
			}
			continue
		}
		results = append(results, *res)
	}

	// Keep only rows with an actual breakout, strongest trends first. The
	// sort is stable so equal trends keep their watch-list order.
	kept := make([]model.AnalysisResult, 0, len(results))
	for _, res := range results {
		if res.BreakoutType != "" {
			kept = append(kept, res)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return model.TrendPriority(kept[i].Trend) < model.TrendPriority(kept[j].Trend)
	})
	snap.Results = kept
	return snap
}
