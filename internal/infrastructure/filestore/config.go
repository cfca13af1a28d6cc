package filestore

type Config struct {
	BucketName     string `yaml:"bucket"`
	ChunkSizeBytes int32  `yaml:"chunk_size_bytes"`
	Timeout        int64  `yaml:"timeout_in_ms"`
}
