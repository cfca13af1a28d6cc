package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const AudiobookCollection = "audiobooks"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initAudiobookCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initAudiobookCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": AudiobookCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"authorId", "authorName", "title", "categories", "coverImage", "audioFile"},
			"properties": bson.M{
				"authorId": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
				"authorName": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
				"title": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
				"description": bson.M{"bsonType": "string"},
				"categories": bson.M{
					"bsonType": "array",
					"minItems": 1,
					"items":    bson.M{"bsonType": "string"},
				},
				"subcategories": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
				"genre":      bson.M{"bsonType": "string"},
				"coverImage": bson.M{"bsonType": "string"},
				"audioFile":  bson.M{"bsonType": "string"},
				"uploadedAt": bson.M{"bsonType": "date"},
				"ratings": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": []string{"userId", "rating"},
						"properties": bson.M{
							"userId": bson.M{"bsonType": "string"},
							"rating": bson.M{
								"bsonType": "int",
								"minimum":  1,
								"maximum":  5,
							},
							"review": bson.M{
								"bsonType":  "string",
								"maxLength": 500,
							},
						},
					},
				},
				"total_ratings":  bson.M{"bsonType": []string{"int", "long"}},
				"total_count":    bson.M{"bsonType": []string{"int", "long"}},
				"average_rating": bson.M{"bsonType": []string{"int", "long", "double"}},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, AudiobookCollection, collOpts)
	if err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(AudiobookCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "authorId", Value: 1}}},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
