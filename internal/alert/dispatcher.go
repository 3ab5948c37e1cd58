package alert

import (
	"log"

	"BreakoutSentinel/internal/ledger"
	"BreakoutSentinel/internal/model"
	"BreakoutSentinel/internal/notifier"
	"BreakoutSentinel/internal/recorder"
)

// Dispatcher sends at-most-once email alerts for double-breakout symbols,
// de-duplicated through the notification ledger.
type Dispatcher struct {
	Ledger   *ledger.Ledger
	Notifier notifier.Notifier
	Recorder recorder.Recorder
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(l *ledger.Ledger, n notifier.Notifier, r recorder.Recorder) *Dispatcher {
	return &Dispatcher{Ledger: l, Notifier: n, Recorder: r}
}

// Dispatch checks every double-breakout result against the ledger and emails
// the ones not yet notified. The symbol is recorded even when the send fails,
// so delivery is best effort: a symbol never alerts twice without a ledger
// reset.
func (d *Dispatcher) Dispatch(results []model.AnalysisResult) {
	for _, res := range results {
		if !res.IsDoubleBreakout() {
			continue
		}
		if d.Ledger.Contains(res.Symbol) {
			continue
		}

		evt := &recorder.AlertEvent{
			Symbol:       res.Symbol,
			BreakoutType: res.BreakoutType,
			Price:        res.Price,
			MACD:         res.MACD,
			Signal:       res.Signal,
			Sent:         true,
		}
		if err := d.Notifier.SendDoubleBreakout(res.Symbol); err != nil {
			log.Printf("[ERROR] email alert for %s: %v", res.Symbol, err)
			evt.Sent = false
			evt.Error = err.Error()
		} else {
			log.Printf("[INFO] email alert sent for %s", res.Symbol)
		}

		if err := d.Ledger.Record(res.Symbol); err != nil {
			log.Printf("[ERROR] record ledger entry for %s: %v", res.Symbol, err)
		}
		if err := d.Recorder.RecordAlert(evt); err != nil {
			log.Printf("[ERROR] record alert: %v", err)
		}
	}
}
