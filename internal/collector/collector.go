package collector

import (
	"fmt"
	"time"

	"BreakoutSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	IntradayData map[string][]model.Bar
	DailyData    map[string][]model.Bar
	Errs         map[string]error
	Price        float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntradayBars(symbol string, days int) ([]model.Bar, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.IntradayData[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.Price, days*25, 15*time.Minute), nil
}

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.Bar, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.DailyData[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.Price, days, 24*time.Hour), nil
}

func generateMockBars(basePrice float64, count int, step time.Duration) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().Add(-time.Duration(count-i) * step),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches both price series needed to analyze one symbol.
type Collector struct {
	Fetcher      Fetcher
	LookbackDays int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, lookbackDays int) *Collector {
	return &Collector{Fetcher: fetcher, LookbackDays: lookbackDays}
}

// Collect fetches the intraday and daily series for a symbol.
func (c *Collector) Collect(symbol string) (*model.SymbolData, error) {
	intraday, err := c.Fetcher.FetchIntradayBars(symbol, c.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch intraday bars: %w", err)
	}
	daily, err := c.Fetcher.FetchDailyBars(symbol, c.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	return &model.SymbolData{
		Symbol:    symbol,
		Intraday:  intraday,
		Daily:     daily,
		FetchedAt: time.Now(),
	}, nil
}
