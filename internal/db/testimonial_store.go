package db

import (
	"context"

	"github.com/arzan03/MedicineShop/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TestimonialStore struct {
	coll *mongo.Collection
}

func NewTestimonialStore(coll *mongo.Collection) *TestimonialStore {
	return &TestimonialStore{coll: coll}
}

func (s *TestimonialStore) List(ctx context.Context) ([]models.Testimonial, error) {
	testimonials := []models.Testimonial{}
	if err := findAll(ctx, s.coll, "ListTestimonials", bson.D{}, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

// Insert stores review as submitted; any client supplied _id is replaced by a generated one.
func (s *TestimonialStore) Insert(ctx context.Context, review models.Testimonial) (primitive.ObjectID, error) {
	doc := make(bson.M, len(review)+1)
	for k, v := range review {
		doc[k] = v
	}
	doc["_id"] = primitive.NewObjectID()
	return insertOne(ctx, s.coll, "InsertTestimonial", doc)
}
