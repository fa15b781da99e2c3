package db

import (
	"context"

	"github.com/arzan03/MedicineShop/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductStore struct {
	coll *mongo.Collection
}

func NewProductStore(coll *mongo.Collection) *ProductStore {
	return &ProductStore{coll: coll}
}

// List returns the products of category, or every product when category is empty.
func (s *ProductStore) List(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.D{}
	if category != "" {
		filter = bson.D{{Key: "category", Value: category}}
	}

	products := []models.Product{}
	if err := findAll(ctx, s.coll, "ListProducts", filter, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error) {
	product.ID = primitive.NilObjectID
	return insertOne(ctx, s.coll, "InsertProduct", product)
}

func (s *ProductStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return deleteByID(ctx, s.coll, "DeleteProduct", id)
}
