package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/arzan03/MedicineShop/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errDatabaseDown = errors.New("server selection error: context deadline exceeded, current topology: secret-host:27017")

type memCategories struct {
	mu    sync.Mutex
	items []models.Category
	err   error
	// hang makes List wait for the request context to end
	hang bool
}

func (m *memCategories) List(ctx context.Context) ([]models.Category, error) {
	if m.hang {
		<-ctx.Done()
		return nil, fmt.Errorf("find categories: %w", ctx.Err())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.Category{}, m.items...), nil
}

func (m *memCategories) Insert(ctx context.Context, category models.Category) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	category.ID = primitive.NewObjectID()
	m.items = append(m.items, category)
	return category.ID, nil
}

func (m *memCategories) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.items {
		if c.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memUsers struct {
	mu    sync.Mutex
	items []models.User
}

func (m *memUsers) List(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.User{}, m.items...), nil
}

func (m *memUsers) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.items {
		if u.Role != nil && *u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUsers) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = primitive.NewObjectID()
	m.items = append(m.items, user)
	return user.ID, nil
}

func (m *memUsers) UpsertByEmail(ctx context.Context, user models.User) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.items {
		if u.Email != user.Email {
			continue
		}
		before := u
		if user.DisplayName != "" {
			u.DisplayName = user.DisplayName
		}
		if user.Role != nil {
			u.Role = user.Role
		}
		m.items[i] = u
		var modified int64
		if before.DisplayName != u.DisplayName || roleValue(before) != roleValue(u) {
			modified = 1
		}
		return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
	}
	user.ID = primitive.NewObjectID()
	m.items = append(m.items, user)
	id := user.ID
	return models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
}

func (m *memUsers) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.items {
		if u.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.items {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, errs.ErrNotFound
}

func (m *memUsers) SetRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.items {
		if u.Email == email {
			var modified int64
			if roleValue(u) != role {
				modified = 1
			}
			m.items[i].Role = models.RoleOf(role)
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

func roleValue(u models.User) string {
	if u.Role == nil {
		return ""
	}
	return *u.Role
}

type memProducts struct {
	mu    sync.Mutex
	items []models.Product
}

func (m *memProducts) List(ctx context.Context, category string) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, p := range m.items {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	product.ID = primitive.NewObjectID()
	m.items = append(m.items, product)
	return product.ID, nil
}

func (m *memProducts) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memBanners struct {
	mu    sync.Mutex
	items []models.Banner
}

func (m *memBanners) List(ctx context.Context) ([]models.Banner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Banner{}, m.items...), nil
}

func (m *memBanners) Get(ctx context.Context, id primitive.ObjectID) (*models.Banner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.items {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memBanners) Insert(ctx context.Context, banner models.Banner) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	banner.ID = primitive.NewObjectID()
	m.items = append(m.items, banner)
	return banner.ID, nil
}

func (m *memBanners) Update(ctx context.Context, banner models.Banner) (models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.items {
		if b.ID == banner.ID {
			m.items[i] = banner
			return models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return models.UpdateResult{Acknowledged: true}, nil
}

func (m *memBanners) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.items {
		if b.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memTestimonials struct {
	mu    sync.Mutex
	items []models.Testimonial
}

func (m *memTestimonials) List(ctx context.Context) ([]models.Testimonial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Testimonial{}, m.items...), nil
}

func (m *memTestimonials) Insert(ctx context.Context, review models.Testimonial) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	doc := models.Testimonial{}
	for k, v := range review {
		doc[k] = v
	}
	doc["_id"] = id
	m.items = append(m.items, doc)
	return id, nil
}

type mirrored struct {
	collection string
	id         primitive.ObjectID
	data       []byte
}

type recordingMirror struct {
	mu    sync.Mutex
	calls []mirrored
}

func (r *recordingMirror) Mirror(collection string, id primitive.ObjectID, img services.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, mirrored{collection: collection, id: id, data: img.Data})
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error {
	return s.err
}
