package db

import (
	"context"
	"fmt"

	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func toUpdateResult(res *mongo.UpdateResult) models.UpdateResult {
	out := models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = &id
	}
	return out
}

func insertedID(res *mongo.InsertOneResult) (primitive.ObjectID, error) {
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// findAll runs filter against coll and decodes every match into out.
func findAll(ctx context.Context, coll *mongo.Collection, component string, filter interface{}, out interface{}) error {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, out); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return nil
}

// deleteByID removes at most one document; a missing id yields a zero count.
func deleteByID(ctx context.Context, coll *mongo.Collection, component string, id primitive.ObjectID) (int64, error) {
	result, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return 0, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return result.DeletedCount, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, component string, doc interface{}) (primitive.ObjectID, error) {
	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	return insertedID(result)
}
