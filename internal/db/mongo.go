package db

import (
	"context"
	"fmt"

	"github.com/arzan03/MedicineShop/internal/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

// Collection names
const (
	CategoriesCollection   = "categories"
	UsersCollection        = "users"
	ProductsCollection     = "products"
	BannersCollection      = "banners"
	TestimonialsCollection = "testimonials"
)

// ConnectMongoDB opens the client pool and verifies it with a ping.
// The caller owns the client and must Disconnect it.
func ConnectMongoDB(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetMonitor(otelmongo.NewMonitor())

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	// Ping the database to verify connection
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	log.Info().Str("database", cfg.Database).Msg("connected to MongoDB")
	return client, nil
}

// Stores groups one store per collection of the shop database.
type Stores struct {
	Categories   *CategoryStore
	Users        *UserStore
	Products     *ProductStore
	Banners      *BannerStore
	Testimonials *TestimonialStore
}

func NewStores(database *mongo.Database) *Stores {
	return &Stores{
		Categories:   NewCategoryStore(database.Collection(CategoriesCollection)),
		Users:        NewUserStore(database.Collection(UsersCollection)),
		Products:     NewProductStore(database.Collection(ProductsCollection)),
		Banners:      NewBannerStore(database.Collection(BannersCollection)),
		Testimonials: NewTestimonialStore(database.Collection(TestimonialsCollection)),
	}
}

// Pinger reports whether the primary is reachable.
type Pinger struct {
	client *mongo.Client
}

func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
