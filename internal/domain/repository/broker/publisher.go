package broker

import "context"

const (
	EventUploaded = "uploaded"
	EventDeleted  = "deleted"
)

// Event describes a lifecycle change on an audiobook record, published for
// downstream consumers (indexers, recommenders). Publishing is best effort.
type Event struct {
	ID          string
	Kind        string
	AudiobookID string
	AuthorID    string
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
