package notifier

import (
	"fmt"

	"github.com/wneessen/go-mail"
)

// EmailNotifier sends alerts through an SMTP endpoint over implicit TLS.
type EmailNotifier struct {
	From   string
	To     string
	client *mail.Client
}

// NewEmailNotifier creates a notifier for the given SMTP endpoint. The port is
// expected to speak TLS from the first byte (465 convention).
func NewEmailNotifier(host string, port int, username, password, from, to string) (*EmailNotifier, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &EmailNotifier{From: from, To: to, client: client}, nil
}

func (n *EmailNotifier) Name() string { return "email" }

// SendDoubleBreakout emails the double-breakout alert for one symbol.
func (n *EmailNotifier) SendDoubleBreakout(symbol string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(n.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(fmt.Sprintf("DOUBLE BREAKOUT in %s", symbol))
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("The stock %s has triggered a DOUBLE BREAKOUT.", symbol))

	if err := n.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
