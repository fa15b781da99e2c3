package handlers

import (
	"time"

	"github.com/arzan03/MedicineShop/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

type Deps struct {
	Categories   CategoryStore
	Users        UserStore
	Products     ProductStore
	Banners      BannerStore
	Testimonials TestimonialStore
	Mirror       ImageMirror
	Health       *HealthHandler
}

type Options struct {
	Logger      zerolog.Logger
	BodyLimitMB int
	CORSOrigins string
	// QueryTimeout bounds the context every handler hands to the database.
	QueryTimeout time.Duration
	// Tracer is optional; requests are not traced without one.
	Tracer trace.Tracer
}

// NewApp builds the Fiber app with every route of the shop API.
func NewApp(deps Deps, opts Options) *fiber.App {
	bodyLimit := opts.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		BodyLimit:             bodyLimit * 1024 * 1024,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(middleware.Logger(opts.Logger))
	app.Use(recover.New())
	if opts.Tracer != nil {
		app.Use(middleware.Tracing(opts.Tracer))
	}
	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))

	Register(app, deps, opts.QueryTimeout)
	return app
}

// Register mounts the routes on router.
func Register(router fiber.Router, deps Deps, queryTimeout time.Duration) {
	bounded := func(h fiber.Handler) fiber.Handler {
		if queryTimeout <= 0 {
			return h
		}
		return timeout.NewWithContext(h, queryTimeout)
	}

	categories := &CategoryHandler{Categories: deps.Categories}
	users := &UserHandler{Users: deps.Users}
	products := &ProductHandler{Products: deps.Products, Mirror: deps.Mirror}
	banners := &BannerHandler{Banners: deps.Banners, Mirror: deps.Mirror}
	testimonials := &TestimonialHandler{Testimonials: deps.Testimonials}

	if deps.Health != nil {
		router.Get("/", deps.Health.Root)
		router.Get("/healthz", deps.Health.Ready)
	}

	// Category routes
	router.Get("/categories", bounded(categories.List))
	router.Post("/categories", bounded(categories.Create))
	router.Delete("/categories/:id", bounded(categories.Delete))

	// User routes
	router.Get("/users", bounded(users.List))
	router.Post("/users", bounded(users.Create))
	router.Put("/users", bounded(users.Upsert))
	router.Delete("/users/:id", bounded(users.Delete))
	router.Get("/users/:email", bounded(users.AdminStatus))
	router.Put("/make-admin/:email", bounded(users.MakeAdmin))
	router.Get("/admins", bounded(users.ListAdmins))

	// Product routes
	router.Get("/products", bounded(products.List))
	router.Post("/products", bounded(products.Create))
	router.Delete("/product/:id", bounded(products.Delete))

	// Banner routes
	router.Get("/banners", bounded(banners.List))
	router.Get("/banners/:id", bounded(banners.Get))
	router.Delete("/banners/:id", bounded(banners.Delete))
	router.Post("/banners", bounded(banners.Create))
	router.Put("/banners", bounded(banners.Update))

	// Testimonial routes
	router.Get("/testimonials", bounded(testimonials.List))
	router.Post("/add-review", bounded(testimonials.AddReview))
}
