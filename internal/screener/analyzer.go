package screener

import (
	"fmt"
	"math"
	"strings"
	"time"

	"BreakoutSentinel/internal/calculator"
	"BreakoutSentinel/internal/model"
)

// Analyzer derives breakout flags, trend and MACD momentum for one symbol.
type Analyzer struct {
	Location    *time.Location
	WindowStart time.Duration // opening window bounds, offsets from market-local midnight
	WindowEnd   time.Duration
}

// NewAnalyzer creates an Analyzer with an opening window given as "HH:MM" clock times.
func NewAnalyzer(loc *time.Location, windowStart, windowEnd string) (*Analyzer, error) {
	start, err := parseClock(windowStart)
	if err != nil {
		return nil, fmt.Errorf("opening window start: %w", err)
	}
	end, err := parseClock(windowEnd)
	if err != nil {
		return nil, fmt.Errorf("opening window end: %w", err)
	}
	if end < start {
		return nil, fmt.Errorf("opening window end %s before start %s", windowEnd, windowStart)
	}
	return &Analyzer{Location: loc, WindowStart: start, WindowEnd: end}, nil
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Analyze computes the analysis result for one symbol. It returns nil with a
// skip reason when the data cannot produce a result; that is not an error.
func (a *Analyzer) Analyze(data *model.SymbolData) (*model.AnalysisResult, string) {
	if len(data.Intraday) == 0 || len(data.Daily) == 0 {
		return nil, "empty price series"
	}

	// "Today" is the date of the most recent intraday bar, market time.
	today := a.dateOf(data.Intraday[len(data.Intraday)-1].Time)
	todayBars := a.barsOnDate(data.Intraday, today)
	if len(todayBars) == 0 {
		return nil, "no intraday bars for today"
	}

	windowBars := a.openingWindowBars(todayBars)
	if len(windowBars) == 0 {
		return nil, "no bars in opening window"
	}
	openingHigh, openingLow, err := calculator.CalculateRange(windowBars)
	if err != nil {
		return nil, "opening range: " + err.Error()
	}

	priorDaily := a.barsBeforeDate(data.Daily, today)
	if len(priorDaily) == 0 {
		return nil, "no prior daily bars"
	}
	twoDayHigh, twoDayLow, err := calculator.CalculateTrailingRange(priorDaily, 2)
	if err != nil {
		return nil, "two-day range: " + err.Error()
	}

	currentPrice := todayBars[len(todayBars)-1].Close

	result := &model.AnalysisResult{
		Symbol: DisplayName(data.Symbol),
		Price:  round2(currentPrice),
	}

	if currentPrice > openingHigh {
		result.TodayBreakout = model.BreakoutAboveOpeningHigh
	} else if currentPrice < openingLow {
		result.TodayBreakout = model.BreakoutBelowOpeningLow
	}
	if currentPrice > twoDayHigh {
		result.TwoDayBreakout = model.BreakoutAboveTwoDayHigh
	} else if currentPrice < twoDayLow {
		result.TwoDayBreakout = model.BreakoutBelowTwoDayLow
	}

	switch {
	case result.TodayBreakout != "" && result.TwoDayBreakout != "":
		result.BreakoutType = model.BreakoutDouble
	case result.TodayBreakout != "":
		result.BreakoutType = result.TodayBreakout
	case result.TwoDayBreakout != "":
		result.BreakoutType = result.TwoDayBreakout
	}

	macdLine, signalLine, err := calculator.CalculateMACD(calculator.ExtractCloses(todayBars))
	if err != nil {
		return nil, "macd: " + err.Error()
	}
	macd := macdLine[len(macdLine)-1]
	signal := signalLine[len(signalLine)-1]
	result.MACD = round2(macd)
	result.Signal = round2(signal)

	// Momentum classification uses the unrounded values.
	switch {
	case macd > signal:
		result.MACDTrend = model.TrendBullish
	case macd < signal:
		result.MACDTrend = model.TrendBearish
	default:
		result.MACDTrend = model.TrendSideways
	}

	// Overall trend is derived from the raw comparisons, not the labels above.
	switch {
	case currentPrice > openingHigh && currentPrice > twoDayHigh:
		result.Trend = model.TrendVeryBullish
	case currentPrice < openingLow && currentPrice < twoDayLow:
		result.Trend = model.TrendVeryBearish
	case currentPrice > openingHigh || currentPrice > twoDayHigh:
		result.Trend = model.TrendBullish
	case currentPrice < openingLow || currentPrice < twoDayLow:
		result.Trend = model.TrendBearish
	default:
		result.Trend = model.TrendSideways
	}

	return result, ""
}

// dateOf truncates a timestamp to its market-local calendar date.
func (a *Analyzer) dateOf(t time.Time) time.Time {
	y, m, d := t.In(a.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, a.Location)
}

func (a *Analyzer) barsOnDate(bars []model.Bar, date time.Time) []model.Bar {
	var out []model.Bar
	for _, b := range bars {
		if a.dateOf(b.Time).Equal(date) {
			out = append(out, b)
		}
	}
	return out
}

func (a *Analyzer) barsBeforeDate(bars []model.Bar, date time.Time) []model.Bar {
	var out []model.Bar
	for _, b := range bars {
		if a.dateOf(b.Time).Before(date) {
			out = append(out, b)
		}
	}
	return out
}

// openingWindowBars filters today's bars to those whose market-local time of
// day falls within the opening window, both bounds inclusive.
func (a *Analyzer) openingWindowBars(todayBars []model.Bar) []model.Bar {
	var out []model.Bar
	for _, b := range todayBars {
		t := b.Time.In(a.Location)
		clock := time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second
		if clock >= a.WindowStart && clock <= a.WindowEnd {
			out = append(out, b)
		}
	}
	return out
}

// DisplayName strips exchange decorations from a ticker ("RELIANCE.NS" ->
// "RELIANCE", "^NSEI" -> "NSEI").
func DisplayName(symbol string) string {
	s := strings.ReplaceAll(symbol, ".NS", "")
	return strings.ReplaceAll(s, "^", "")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
