package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"feedback_dashboard/internal/config"
	"feedback_dashboard/internal/model"
	"feedback_dashboard/internal/queue"
)

// QueueSender hands confirmations to the message bus; the mailer runs on the
// consuming side.
type QueueSender struct {
	pub        queue.Publisher
	routingKey string
}

func NewQueueSender(pub queue.Publisher, routingKey string) *QueueSender {
	return &QueueSender{pub: pub, routingKey: routingKey}
}

func (q *QueueSender) Send(ctx context.Context, confirmation model.Confirmation) error {
	payload, err := json.Marshal(confirmation)
	if err != nil {
		return fmt.Errorf("marshal confirmation: %w", err)
	}
	return q.pub.Publish(ctx, payload, q.routingKey)
}

// NewSender publishes through RabbitMQ when it is configured and mails
// directly otherwise.
func NewSender(cfg *config.Config, pub queue.Publisher, mailer *Mailer) Sender {
	if cfg.RabbitMQURL == "" {
		return mailer
	}
	prefix := cfg.RabbitPublishPrefix
	if prefix == "" {
		prefix = "feedback"
	}
	return NewQueueSender(pub, prefix+".confirmation")
}
