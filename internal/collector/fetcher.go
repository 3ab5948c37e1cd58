package collector

import "BreakoutSentinel/internal/model"

// Fetcher defines the interface for fetching price bars.
type Fetcher interface {
	FetchIntradayBars(symbol string, days int) ([]model.Bar, error)
	FetchDailyBars(symbol string, days int) ([]model.Bar, error)
	Name() string
}
