package calculator

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateEMASeries_SeededWithFirstValue(t *testing.T) {
	// span 3 -> alpha 0.5: 1, 1.5, 2.25
	ema, err := CalculateEMASeries([]float64{1, 2, 3}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 1.5, 2.25}
	if len(ema) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(ema))
	}
	for i := range want {
		if !almostEqual(ema[i], want[i]) {
			t.Errorf("ema[%d]: expected %v, got %v", i, want[i], ema[i])
		}
	}
}

func TestCalculateEMASeries_Errors(t *testing.T) {
	if _, err := CalculateEMASeries(nil, 12); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := CalculateEMASeries([]float64{1}, 0); err == nil {
		t.Error("expected error for non-positive span")
	}
}

func TestCalculateMACD_ConstantCloses(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 250
	}
	macd, signal, err := CalculateMACD(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(macd[len(macd)-1], 0) {
		t.Errorf("expected zero MACD for constant closes, got %v", macd[len(macd)-1])
	}
	if !almostEqual(signal[len(signal)-1], 0) {
		t.Errorf("expected zero signal for constant closes, got %v", signal[len(signal)-1])
	}
}

func TestCalculateMACD_RisingCloses(t *testing.T) {
	var closes []float64
	for i := 0; i < 30; i++ {
		closes = append(closes, 100+float64(i))
	}
	macd, signal, err := CalculateMACD(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := len(closes) - 1
	if macd[last] <= 0 {
		t.Errorf("expected positive MACD for rising closes, got %v", macd[last])
	}
	if macd[last] <= signal[last] {
		t.Errorf("expected MACD above signal for rising closes, got macd=%v signal=%v",
			macd[last], signal[last])
	}
}

func TestCalculateMACD_SingleClose(t *testing.T) {
	macd, signal, err := CalculateMACD([]float64{100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(macd) != 1 || len(signal) != 1 {
		t.Fatalf("expected single-element series, got %d/%d", len(macd), len(signal))
	}
	if !almostEqual(macd[0], 0) || !almostEqual(signal[0], 0) {
		t.Errorf("expected zero macd/signal for single close, got %v/%v", macd[0], signal[0])
	}
}
