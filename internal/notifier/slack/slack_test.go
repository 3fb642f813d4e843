package slack

import (
	"context"
	"errors"
	"testing"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuniersoad/dota2notify/internal/metrics"
	"github.com/yuniersoad/dota2notify/internal/notifier"
)

type fakeSlackClient struct {
	postFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
	calls    []string
}

func (f *fakeSlackClient) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	f.calls = append(f.calls, channelID)
	if f.postFunc != nil {
		return f.postFunc(ctx, channelID, options...)
	}
	return channelID, "", nil
}

func TestSendPostsToChannel(t *testing.T) {
	client := &fakeSlackClient{}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(client, m)

	err := n.Send(context.Background(), "hello", "C12345")
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	assert.Equal(t, "C12345", client.calls[0])
	assert.Equal(t, 1, m.NotificationsSent)
}

func TestSendMapsStatusCodeError(t *testing.T) {
	client := &fakeSlackClient{
		postFunc: func(context.Context, string, ...slackapi.MsgOption) (string, string, error) {
			return "", "", slackapi.StatusCodeError{Code: 429, Status: "429 Too Many Requests"}
		},
	}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(client, m)

	err := n.Send(context.Background(), "hello", "C12345")
	require.Error(t, err)

	var deliveryErr *notifier.DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Equal(t, 429, deliveryErr.Status)
	assert.Equal(t, "429 Too Many Requests", deliveryErr.Body)
	assert.Equal(t, 1, m.NotificationsFailed)
}

func TestSendPassesThroughUnknownError(t *testing.T) {
	apiErr := errors.New("channel_not_found")
	client := &fakeSlackClient{
		postFunc: func(context.Context, string, ...slackapi.MsgOption) (string, string, error) {
			return "", "", apiErr
		},
	}
	n := NewNotifierWithAPI(client, metrics.NewMock())

	err := n.Send(context.Background(), "hello", "C12345")
	assert.ErrorIs(t, err, apiErr)
}
