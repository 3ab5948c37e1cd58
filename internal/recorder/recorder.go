package recorder

// PassEvent summarizes one completed screening pass.
type PassEvent struct {
	Scanned     int // symbols attempted
	Results     int // rows kept after filtering
	Doubles     int // double breakouts in this pass
	FetchErrors int
}

// AlertEvent records one double-breakout alert attempt.
type AlertEvent struct {
	Symbol       string
	BreakoutType string
	Price        float64
	MACD         float64
	Signal       float64
	Sent         bool
	Error        string
}

// Recorder persists operational audit events.
type Recorder interface {
	RecordPass(evt *PassEvent) error
	RecordAlert(evt *AlertEvent) error
	Close() error
}
