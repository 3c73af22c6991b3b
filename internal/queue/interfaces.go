package queue

import "context"

type Consumer interface {
	Start(ctx context.Context) error
}

type Publisher interface {
	Publish(ctx context.Context, payload []byte, routingKey string) error
}

// CommandHandler applies a create command received from the broker.
type CommandHandler interface {
	HandleCreate(ctx context.Context, body []byte) error
}
