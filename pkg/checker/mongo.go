package checker

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DocumentCounter is the slice of the mongo driver the Mongo checker needs.
// *mongo.Collection satisfies it.
type DocumentCounter interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

var _ DocumentCounter = (*mongo.Collection)(nil)

// Mongo returns an existence check that counts documents whose field equals
// the value, capped at one. Panics when field is empty.
func Mongo(coll DocumentCounter, field string) func(ctx context.Context, value string) (bool, error) {
	if coll == nil {
		panic("checker: collection must not be nil")
	}
	if field == "" {
		panic("checker: field must not be empty")
	}

	limitOne := options.Count().SetLimit(1)

	return func(ctx context.Context, value string) (bool, error) {
		n, err := coll.CountDocuments(ctx, bson.D{{Key: field, Value: value}}, limitOne)
		if err != nil {
			return false, errors.Join(ErrMongoQueryFailed, err)
		}
		return n > 0, nil
	}
}
