package entity

import "time"

// ObjectHeader identifies one stored binary blob in the file store. The sum of
// its chunk lengths equals Length; chunks are contiguous starting at index 0.
type ObjectHeader struct {
	ID          string
	Name        string
	ContentType string
	Length      int64
	ChunkSize   int32
	CreatedAt   time.Time
}
