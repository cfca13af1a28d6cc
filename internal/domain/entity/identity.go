package entity

const (
	RoleUser   = "user"
	RoleAuthor = "author"
)

// Identity is the verified caller supplied by the auth middleware. Usecases
// trust it as-is.
type Identity struct {
	ID   string
	Name string
	Role string
}

// Part is one already-parsed multipart upload: the original filename, the
// declared (or detected) MIME type and the full payload buffered in memory.
type Part struct {
	Name        string
	ContentType string
	Data        []byte
}
