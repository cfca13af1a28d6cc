package database

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/domain/model"
)

type AudiobookLister struct {
	db *Database
}

func NewLister(db *Database) *AudiobookLister {
	return &AudiobookLister{db: db}
}

func (l *AudiobookLister) List(ctx context.Context, authorID string) ([]model.Audiobook, error) {
	filter := bson.M{}
	if authorID != "" {
		filter["authorId"] = authorID
	}

	return l.find(ctx, filter)
}

func (l *AudiobookLister) Search(ctx context.Context, query string) ([]model.Audiobook, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	return l.find(ctx, bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"description": pattern},
		bson.M{"genre": pattern},
		bson.M{"authorName": pattern},
		bson.M{"categories": pattern},
	}})
}

func (l *AudiobookLister) ListByCategory(ctx context.Context, category string) ([]model.Audiobook, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(category), Options: "i"}

	return l.find(ctx, bson.M{"$or": bson.A{
		bson.M{"categories": pattern},
		bson.M{"genre": pattern},
	}})
}

func (l *AudiobookLister) Categories(ctx context.Context) ([]string, error) {
	return l.distinct(ctx, "categories")
}

func (l *AudiobookLister) Subcategories(ctx context.Context) ([]string, error) {
	return l.distinct(ctx, "subcategories")
}

func (l *AudiobookLister) distinct(ctx context.Context, field string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(AudiobookCollection)

	values, err := coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, errs.StoreReadf("failed to list %s: %v", field, err)
	}

	names := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}

	return names, nil
}

func (l *AudiobookLister) find(ctx context.Context, filter bson.M) ([]model.Audiobook, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(AudiobookCollection)

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, errs.StoreReadf("failed to retrieve audiobooks: %v", err)
	}
	defer cursor.Close(ctx)

	var books []model.Audiobook
	if err := cursor.All(ctx, &books); err != nil {
		return nil, errs.StoreReadf("failed to decode audiobooks: %v", err)
	}

	return books, nil
}
