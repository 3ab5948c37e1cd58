package calculator

import (
	"errors"
	"math"

	"BreakoutSentinel/internal/model"
)

// CalculateRange scans all bars and returns the highest high and lowest low.
func CalculateRange(bars []model.Bar) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no bars provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low, nil
}

// CalculateTrailingRange returns the high/low range over the most recent n bars.
func CalculateTrailingRange(bars []model.Bar, n int) (high, low float64, err error) {
	if n <= 0 {
		return 0, 0, errors.New("n must be positive")
	}
	start := len(bars) - n
	if start < 0 {
		start = 0
	}
	return CalculateRange(bars[start:])
}

// ExtractCloses returns the close prices of the given bars in order.
func ExtractCloses(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
