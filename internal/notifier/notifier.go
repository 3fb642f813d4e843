package notifier

import (
	"context"
	"fmt"
)

// Notifier delivers match notifications to a recipient address. The meaning
// of the address depends on the backend: a Telegram chat ID or a Slack
// channel ID.
type Notifier interface {
	Send(ctx context.Context, message, recipient string) error
}

// DeliveryError carries the backend status of a failed delivery attempt.
type DeliveryError struct {
	Status int
	Body   string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed: status %d: %s", e.Status, e.Body)
}
