package db

import (
	"context"

	"github.com/arzan03/MedicineShop/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryStore struct {
	coll *mongo.Collection
}

func NewCategoryStore(coll *mongo.Collection) *CategoryStore {
	return &CategoryStore{coll: coll}
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := findAll(ctx, s.coll, "ListCategories", bson.D{}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Insert(ctx context.Context, category models.Category) (primitive.ObjectID, error) {
	category.ID = primitive.NilObjectID
	return insertOne(ctx, s.coll, "InsertCategory", category)
}

func (s *CategoryStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return deleteByID(ctx, s.coll, "DeleteCategory", id)
}
