package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BannerStore struct {
	coll *mongo.Collection
}

func NewBannerStore(coll *mongo.Collection) *BannerStore {
	return &BannerStore{coll: coll}
}

func (s *BannerStore) List(ctx context.Context) ([]models.Banner, error) {
	banners := []models.Banner{}
	if err := findAll(ctx, s.coll, "ListBanners", bson.D{}, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// Get returns nil without error when the banner does not exist.
func (s *BannerStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Banner, error) {
	var banner models.Banner
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&banner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBanner").Msg("")
		return nil, fmt.Errorf("find banner: %w", err)
	}
	return &banner, nil
}

func (s *BannerStore) Insert(ctx context.Context, banner models.Banner) (primitive.ObjectID, error) {
	banner.ID = primitive.NilObjectID
	return insertOne(ctx, s.coll, "InsertBanner", banner)
}

// Update replaces title, description and image of an existing banner. Unknown ids
// match nothing and are reported through MatchedCount.
func (s *BannerStore) Update(ctx context.Context, banner models.Banner) (models.UpdateResult, error) {
	filter := bson.D{{Key: "_id", Value: banner.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: banner.Title},
		{Key: "description", Value: banner.Description},
		{Key: "image", Value: banner.Image},
	}}}

	result, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateBanner").Msg("")
		return models.UpdateResult{}, fmt.Errorf("update banner: %w", err)
	}
	return toUpdateResult(result), nil
}

func (s *BannerStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return deleteByID(ctx, s.coll, "DeleteBanner", id)
}
