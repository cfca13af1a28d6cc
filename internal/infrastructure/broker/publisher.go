package broker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	brokerRepository "audiblebooks/internal/domain/repository/broker"
)

type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

// Publish appends one record-lifecycle event to the stream. Callers treat
// failures as non-fatal.
func (p *Publisher) Publish(ctx context.Context, event brokerRepository.Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	return p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{
			"id":           event.ID,
			"kind":         event.Kind,
			"audiobook_id": event.AudiobookID,
			"author_id":    event.AuthorID,
			"at":           time.Now().Unix(),
		},
	}).Err()
}
