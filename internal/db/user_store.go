package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(coll *mongo.Collection) *UserStore {
	return &UserStore{coll: coll}
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := findAll(ctx, s.coll, "ListUsers", bson.D{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	users := []models.User{}
	if err := findAll(ctx, s.coll, "ListUsersByRole", bson.D{{Key: "role", Value: role}}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NilObjectID
	return insertOne(ctx, s.coll, "InsertUser", user)
}

// UpsertByEmail sets the fields sent for user on the document with the same
// email, creating it when none exists. A nil Role leaves the stored role alone.
func (s *UserStore) UpsertByEmail(ctx context.Context, user models.User) (models.UpdateResult, error) {
	// _id is immutable; never let a client-supplied one reach $set
	user.ID = primitive.NilObjectID

	filter := bson.D{{Key: "email", Value: user.Email}}
	update := bson.D{{Key: "$set", Value: user}}
	opts := options.Update().SetUpsert(true)

	result, err := s.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpsertUser").Msg("")
		return models.UpdateResult{}, fmt.Errorf("upsert user: %w", err)
	}
	return toUpdateResult(result), nil
}

func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return deleteByID(ctx, s.coll, "DeleteUser", id)
}

// FindByEmail returns errs.ErrNotFound when no user has the email.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "FindUserByEmail").Msg("")
		return user, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// SetRole updates the role of the user with the given email. It never creates a user.
func (s *UserStore) SetRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	filter := bson.D{{Key: "email", Value: email}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: role}}}}

	result, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetUserRole").Msg("")
		return models.UpdateResult{}, fmt.Errorf("set user role: %w", err)
	}
	if result.MatchedCount == 0 {
		log.Ctx(ctx).Warn().Str("component", "SetUserRole").Str("email", email).Msg("no user matched")
	}
	return toUpdateResult(result), nil
}
