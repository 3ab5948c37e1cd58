package calculator

import "errors"

// CalculateEMASeries computes the exponential moving average of values with the
// given span, using alpha = 2/(span+1). The first EMA value is seeded with the
// first input value (no bias correction).
func CalculateEMASeries(values []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	if len(values) == 0 {
		return nil, errors.New("no values provided")
	}
	alpha := 2.0 / (float64(span) + 1.0)
	ema := make([]float64, len(values))
	ema[0] = values[0]
	for i := 1; i < len(values); i++ {
		ema[i] = alpha*values[i] + (1-alpha)*ema[i-1]
	}
	return ema, nil
}

// CalculateMACD computes the MACD line (EMA12 - EMA26) and its signal line
// (EMA9 of the MACD line) over the given closes, returning the full series.
func CalculateMACD(closes []float64) (macdLine, signalLine []float64, err error) {
	ema12, err := CalculateEMASeries(closes, 12)
	if err != nil {
		return nil, nil, err
	}
	ema26, err := CalculateEMASeries(closes, 26)
	if err != nil {
		return nil, nil, err
	}
	macdLine = make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = ema12[i] - ema26[i]
	}
	signalLine, err = CalculateEMASeries(macdLine, 9)
	if err != nil {
		return nil, nil, err
	}
	return macdLine, signalLine, nil
}
