package slack

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	slackapi "github.com/slack-go/slack"

	"github.com/yuniersoad/dota2notify/internal/metrics"
	"github.com/yuniersoad/dota2notify/internal/notifier"
)

// slackClient is the part of the Slack API the notifier uses.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Notifier delivers messages to a Slack channel. The recipient address is
// the channel ID.
type Notifier struct {
	client  slackClient
	metrics metrics.Metrics
}

var _ notifier.Notifier = (*Notifier)(nil)

// NewNotifier creates a Slack notifier with the given bot token.
func NewNotifier(token string, m metrics.Metrics) *Notifier {
	return NewNotifierWithAPI(slackapi.New(token), m)
}

// NewNotifierWithAPI creates a Slack notifier around an existing API client.
// Used in tests to inject a fake client.
func NewNotifierWithAPI(client slackClient, m metrics.Metrics) *Notifier {
	return &Notifier{client: client, metrics: m}
}

func (n *Notifier) Send(ctx context.Context, message, recipient string) error {
	_, _, err := n.client.PostMessageContext(ctx, recipient, slackapi.MsgOptionText(message, false))
	if err != nil {
		n.metrics.IncNotificationsFailed()
		log.Error("Failed to send slack message", "recipient", recipient, "error", err)

		var scErr slackapi.StatusCodeError
		if errors.As(err, &scErr) {
			return &notifier.DeliveryError{Status: scErr.Code, Body: scErr.Status}
		}
		return err
	}

	n.metrics.IncNotificationsSent()
	log.Info("Slack message sent", "recipient", recipient)
	return nil
}
