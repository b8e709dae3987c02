package contracts

import "context"

type QueueService interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}
