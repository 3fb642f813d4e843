package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	tele "gopkg.in/telebot.v3"

	"github.com/yuniersoad/dota2notify/internal/metrics"
	"github.com/yuniersoad/dota2notify/internal/notifier"
)

// sender is the part of the Telegram bot API the notifier uses.
type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// chat adapts a recipient address string to the bot API recipient type.
type chat string

func (c chat) Recipient() string { return string(c) }

// Notifier delivers messages through a Telegram bot. The recipient address
// is the chat ID.
type Notifier struct {
	bot     sender
	metrics metrics.Metrics
}

var _ notifier.Notifier = (*Notifier)(nil)

// NewNotifier creates a Telegram notifier with the given bot token.
func NewNotifier(token string, m metrics.Metrics) (*Notifier, error) {
	bot, err := tele.NewBot(tele.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return NewNotifierWithBot(bot, m), nil
}

// NewNotifierWithBot creates a Telegram notifier around an existing bot.
// Used in tests to inject a fake sender.
func NewNotifierWithBot(bot sender, m metrics.Metrics) *Notifier {
	return &Notifier{bot: bot, metrics: m}
}

func (n *Notifier) Send(ctx context.Context, message, recipient string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := n.bot.Send(chat(recipient), message)
	if err != nil {
		n.metrics.IncNotificationsFailed()
		log.Error("Failed to send telegram message", "recipient", recipient, "error", err)

		var tbErr *tele.Error
		if errors.As(err, &tbErr) {
			return &notifier.DeliveryError{Status: tbErr.Code, Body: tbErr.Description}
		}
		return err
	}

	n.metrics.IncNotificationsSent()
	log.Info("Telegram message sent", "recipient", recipient)
	return nil
}
