package database

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const StructureCollection = "structure"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	logger.Info("connecting to mongodb", "db", cfg.DBName)

	ctx, cancel := withTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, qCancel := withTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer qCancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initStructureCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initStructureCollection(db *Database) error {
	ctx, cancel := withTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": StructureCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "value"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":    "string",
					"pattern":     "^structure_",
					"description": "must be a structure key",
				},
				"value": bson.M{
					"bsonType":    "string",
					"description": "JSON encoded payload or pointer url",
				},
			},
		},
	})

	return db.Client.Database(db.DBName).CreateCollection(ctx, StructureCollection, collOpts)
}

// withTimeout bounds ctx by d. A zero or negative d leaves ctx without a
// deadline of our own.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, d)
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
