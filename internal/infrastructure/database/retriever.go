package database

import (
	"context"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rockzerox/Project-Sekai-Ranking-sub001/internal/domain/repository/kvstore"
)

type entry struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// StructureRetriever serves the structure collection as a key-value store.
type StructureRetriever struct {
	db *Database
}

func NewStructureRetriever(db *Database) *StructureRetriever {
	return &StructureRetriever{
		db: db,
	}
}

func (r *StructureRetriever) Get(ctx context.Context, key string) (json.RawMessage, error) {
	ctx, cancel := withTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(StructureCollection)

	var e entry
	err := coll.FindOne(ctx, bson.M{"_id": key}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return kvstore.Value(e.Value), nil
}
