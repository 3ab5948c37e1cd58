package model

// Trend classifies overall price action relative to the reference ranges.
type Trend string

const (
	TrendVeryBullish Trend = "Very Bullish"
	TrendVeryBearish Trend = "Very Bearish"
	TrendBullish     Trend = "Bullish"
	TrendBearish     Trend = "Bearish"
	TrendSideways    Trend = "Sideways"
)

// Breakout labels as shown in the results table.
const (
	BreakoutAboveOpeningHigh = "Above 15m High"
	BreakoutBelowOpeningLow  = "Below 15m Low"
	BreakoutAboveTwoDayHigh  = "Above 2-Day High"
	BreakoutBelowTwoDayLow   = "Below 2-Day Low"
	BreakoutDouble           = "Double Breakout"
)

// trendPriority orders trends for display: strongest signals first.
var trendPriority = map[Trend]int{
	TrendVeryBullish: 1,
	TrendVeryBearish: 2,
	TrendBullish:     3,
	TrendBearish:     4,
	TrendSideways:    5,
}

// TrendPriority returns the sort rank of a trend (lower sorts first).
// Unknown trends sort last.
func TrendPriority(t Trend) int {
	if p, ok := trendPriority[t]; ok {
		return p
	}
	return len(trendPriority) + 1
}

// AnalysisResult is the per-symbol outcome of one screening pass.
type AnalysisResult struct {
	Symbol         string  `json:"symbol"` // display name, exchange suffix stripped
	Price          float64 `json:"price"`  // last intraday close, rounded to 2 decimals
	TodayBreakout  string  `json:"today_breakout"`
	TwoDayBreakout string  `json:"two_day_breakout"`
	BreakoutType   string  `json:"breakout_type"`
	Trend          Trend   `json:"trend"`
	MACD           float64 `json:"macd"`
	Signal         float64 `json:"signal"`
	MACDTrend      Trend   `json:"macd_trend"`
}

// IsDoubleBreakout reports whether both reference ranges were broken.
func (r AnalysisResult) IsDoubleBreakout() bool {
	return r.BreakoutType == BreakoutDouble
}
