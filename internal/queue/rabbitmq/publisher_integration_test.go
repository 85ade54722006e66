//go:build integration

package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"feedback_dashboard/internal/model"
	"feedback_dashboard/internal/notify"
)

func TestPublisherIntegration(t *testing.T) {
	ctx := context.Background()
	amqpURL, cleanup := setupRabbitMQContainer(t, ctx)
	defer cleanup()

	cfg := testConfig(amqpURL)
	publisher := NewPublisher(cfg, zap.NewNop())
	sender := notify.NewSender(cfg, publisher, notify.NewMailer(zap.NewNop()))

	conn, err := amqp.Dial(amqpURL)
	require.NoError(t, err)
	defer conn.Close()

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	err = ch.ExchangeDeclare(cfg.RabbitExchange, "topic", true, false, false, false, nil)
	require.NoError(t, err)
	_, err = ch.QueueDeclare(cfg.RabbitQueue, true, false, false, false, nil)
	require.NoError(t, err)
	err = ch.QueueBind(cfg.RabbitQueue, cfg.RabbitRoutingKey, cfg.RabbitExchange, false, nil)
	require.NoError(t, err)

	deliveries, err := ch.Consume(cfg.RabbitQueue, "publisher-test", true, false, false, false, nil)
	require.NoError(t, err)

	want := model.Confirmation{Email: "u1@example.com", Message: "Great experience here!"}
	require.NoError(t, sender.Send(ctx, want))

	select {
	case msg := <-deliveries:
		var got model.Confirmation
		require.NoError(t, json.Unmarshal(msg.Body, &got))
		require.Equal(t, want, got)
		require.Equal(t, "feedback.confirmation", msg.RoutingKey)
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout waiting for published confirmation")
	}
}
