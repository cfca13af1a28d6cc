package presentation

const (
	AuthKey       = "Authorization"
	BearerPrefix  = "Bearer "
	IdentityKey   = "identity"
	IDParam       = "id"
	FilenameParam = "filename"
	CategoryParam = "category"
)
