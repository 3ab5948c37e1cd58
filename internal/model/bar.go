package model

import "time"

// Bar represents a single OHLCV candlestick at one granularity.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// SymbolData holds the raw price series fetched for one symbol in one pass.
type SymbolData struct {
	Symbol    string
	Intraday  []Bar // 15-minute bars, trailing window
	Daily     []Bar // daily bars, trailing window
	FetchedAt time.Time
}
