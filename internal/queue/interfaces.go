package queue

import "context"

// Consumer drains the confirmation queue until ctx is done.
type Consumer interface {
	Start(ctx context.Context) error
}

// Publisher sends one JSON confirmation to the exchange under routingKey.
type Publisher interface {
	Publish(ctx context.Context, payload []byte, routingKey string) error
}
