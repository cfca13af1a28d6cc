package database

import (
	"context"

	"audiblebooks/internal/domain/model"
)

// Updater mutates existing records. Save is a whole-document replace
// (read-modify-write, used for rating mutations); SetFields applies a partial
// update and returns the updated record.
type Updater interface {
	Save(ctx context.Context, book *model.Audiobook) error
	SetFields(ctx context.Context, id string, fields map[string]any) (*model.Audiobook, error)
}
