package filestore

import "context"

// Remover deletes the most recent revision of a named object, header and
// chunks together. Concurrent lookups see the object fully or not at all.
type Remover interface {
	RemoveByName(ctx context.Context, name string) error
}
