package alert

import (
	"errors"
	"path/filepath"
	"testing"

	"BreakoutSentinel/internal/ledger"
	"BreakoutSentinel/internal/model"
	"BreakoutSentinel/internal/recorder"
)

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) SendDoubleBreakout(symbol string) error {
	f.sent = append(f.sent, symbol)
	return f.err
}

func (f *fakeNotifier) Name() string { return "fake" }

type captureRecorder struct {
	alerts []recorder.AlertEvent
}

func (c *captureRecorder) RecordPass(_ *recorder.PassEvent) error { return nil }
func (c *captureRecorder) RecordAlert(evt *recorder.AlertEvent) error {
	c.alerts = append(c.alerts, *evt)
	return nil
}
func (c *captureRecorder) Close() error { return nil }

func newDispatcher(t *testing.T, notif *fakeNotifier) (*Dispatcher, *captureRecorder) {
	t.Helper()
	led, err := ledger.New(filepath.Join(t.TempDir(), "emailed_stocks.txt"))
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	rec := &captureRecorder{}
	return NewDispatcher(led, notif, rec), rec
}

func doubleBreakout(symbol string) model.AnalysisResult {
	return model.AnalysisResult{
		Symbol:       symbol,
		Price:        107,
		BreakoutType: model.BreakoutDouble,
		Trend:        model.TrendVeryBullish,
	}
}

func TestDispatch_EmailsAtMostOnceAcrossPasses(t *testing.T) {
	notif := &fakeNotifier{}
	d, rec := newDispatcher(t, notif)

	results := []model.AnalysisResult{doubleBreakout("RELIANCE")}
	d.Dispatch(results)
	d.Dispatch(results) // second pass, same breakout

	if len(notif.sent) != 1 {
		t.Fatalf("expected exactly 1 email, got %d", len(notif.sent))
	}
	if notif.sent[0] != "RELIANCE" {
		t.Errorf("expected RELIANCE, got %q", notif.sent[0])
	}
	if len(rec.alerts) != 1 {
		t.Errorf("expected 1 alert event, got %d", len(rec.alerts))
	}
	if !rec.alerts[0].Sent {
		t.Error("expected alert event marked sent")
	}
}

func TestDispatch_AtMostOnceWithDefaultStyleLedgerPath(t *testing.T) {
	// The ledger must stay durable when its parent directory does not exist
	// yet, or the same symbol would email again on every pass.
	led, err := ledger.New(filepath.Join(t.TempDir(), "data", "emailed_stocks.txt"))
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	notif := &fakeNotifier{}
	d := NewDispatcher(led, notif, &captureRecorder{})

	results := []model.AnalysisResult{doubleBreakout("RELIANCE")}
	d.Dispatch(results)
	d.Dispatch(results)

	if len(notif.sent) != 1 {
		t.Fatalf("expected exactly 1 email across passes, got %d", len(notif.sent))
	}
	if !led.Contains("RELIANCE") {
		t.Error("expected RELIANCE recorded in ledger")
	}
}

func TestDispatch_IgnoresNonDoubleBreakouts(t *testing.T) {
	notif := &fakeNotifier{}
	d, _ := newDispatcher(t, notif)

	d.Dispatch([]model.AnalysisResult{
		{Symbol: "TCS", BreakoutType: model.BreakoutAboveOpeningHigh},
		{Symbol: "INFY", BreakoutType: ""},
	})

	if len(notif.sent) != 0 {
		t.Errorf("expected no emails, got %d", len(notif.sent))
	}
}

func TestDispatch_SendFailureStillRecordsSymbol(t *testing.T) {
	// A failed send is never retried: the symbol is recorded anyway.
	notif := &fakeNotifier{err: errors.New("smtp: connection refused")}
	d, rec := newDispatcher(t, notif)

	results := []model.AnalysisResult{doubleBreakout("SBIN")}
	d.Dispatch(results)
	d.Dispatch(results)

	if len(notif.sent) != 1 {
		t.Fatalf("expected exactly 1 send attempt, got %d", len(notif.sent))
	}
	if !d.Ledger.Contains("SBIN") {
		t.Error("expected SBIN recorded despite send failure")
	}
	if len(rec.alerts) != 1 {
		t.Fatalf("expected 1 alert event, got %d", len(rec.alerts))
	}
	if rec.alerts[0].Sent {
		t.Error("expected alert event marked not sent")
	}
	if rec.alerts[0].Error == "" {
		t.Error("expected alert event to carry the send error")
	}
}

func TestDispatch_ResetAllowsReNotification(t *testing.T) {
	notif := &fakeNotifier{}
	d, _ := newDispatcher(t, notif)

	results := []model.AnalysisResult{doubleBreakout("MCX")}
	d.Dispatch(results)
	if err := d.Ledger.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	d.Dispatch(results)

	if len(notif.sent) != 2 {
		t.Errorf("expected 2 emails after reset, got %d", len(notif.sent))
	}
}
