package notifier

// Notifier sends a one-off alert for a symbol that triggered a double breakout.
type Notifier interface {
	SendDoubleBreakout(symbol string) error
	Name() string
}

// NoopNotifier is used when no SMTP transport is configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier { return &NoopNotifier{} }

func (n *NoopNotifier) SendDoubleBreakout(_ string) error { return nil }
func (n *NoopNotifier) Name() string                      { return "noop" }
