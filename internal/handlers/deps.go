package handlers

import (
	"context"

	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/arzan03/MedicineShop/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Insert(ctx context.Context, category models.Category) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	UpsertByEmail(ctx context.Context, user models.User) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	SetRole(ctx context.Context, email, role string) (models.UpdateResult, error)
}

type ProductStore interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type BannerStore interface {
	List(ctx context.Context) ([]models.Banner, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Banner, error)
	Insert(ctx context.Context, banner models.Banner) (primitive.ObjectID, error)
	Update(ctx context.Context, banner models.Banner) (models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type TestimonialStore interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Insert(ctx context.Context, review models.Testimonial) (primitive.ObjectID, error)
}

// ImageMirror receives a copy of every stored upload. Optional.
type ImageMirror interface {
	Mirror(collection string, id primitive.ObjectID, img services.Image)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
