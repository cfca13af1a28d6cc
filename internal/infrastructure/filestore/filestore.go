// Package filestore is the chunked binary object store: payloads are split
// into fixed-size chunk documents and finalized by a header document written
// last, so readers never observe a partial write. Object names are not unique;
// lookups resolve to the most recent revision.
package filestore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"audiblebooks/internal/infrastructure/database"
	"audiblebooks/pkg/logger"
)

// DefaultChunkSize matches the GridFS default segmentation size.
const DefaultChunkSize int32 = 255 * 1024

type Store struct {
	bucket    *gridfs.Bucket
	chunkSize int32
	timeout   time.Duration
}

func New(db *database.Database, cfg Config) (*Store, error) {
	logger.Info("opening file store bucket", "bucket", cfg.BucketName)

	chunkSize := cfg.ChunkSizeBytes
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	opts := options.GridFSBucket().SetChunkSizeBytes(chunkSize)
	if cfg.BucketName != "" {
		opts = opts.SetName(cfg.BucketName)
	}

	bucket, err := gridfs.NewBucket(db.Client.Database(db.DBName), opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		bucket:    bucket,
		chunkSize: chunkSize,
		timeout:   time.Duration(cfg.Timeout) * time.Millisecond,
	}, nil
}

// fileDoc mirrors the header document layout of the files collection.
type fileDoc struct {
	ID         primitive.ObjectID `bson:"_id"`
	Length     int64              `bson:"length"`
	ChunkSize  int32              `bson:"chunkSize"`
	UploadDate time.Time          `bson:"uploadDate"`
	Filename   string             `bson:"filename"`
	Metadata   bson.Raw           `bson:"metadata"`
}

type fileMetadata struct {
	ContentType string `bson:"contentType"`
}

func contentTypeOf(raw bson.Raw) string {
	var md fileMetadata
	if len(raw) > 0 {
		_ = bson.Unmarshal(raw, &md)
	}

	return md.ContentType
}
