package handlers

import (
	"fmt"
	"strings"

	"github.com/arzan03/MedicineShop/internal/db"
	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/arzan03/MedicineShop/internal/middleware"
	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/arzan03/MedicineShop/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BannerHandler struct {
	Banners BannerStore
	Mirror  ImageMirror
}

func (h *BannerHandler) List(c *fiber.Ctx) error {
	banners, err := h.Banners.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(banners)
}

// Get returns a single banner, or JSON null when it does not exist.
func (h *BannerHandler) Get(c *fiber.Ctx) error {
	id, err := parseObjectID(c.Params("id"))
	if err != nil {
		return err
	}

	banner, err := h.Banners.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if banner == nil {
		return c.JSON(nil)
	}
	return c.JSON(banner)
}

func (h *BannerHandler) Create(c *fiber.Ctx) error {
	banner, img, err := parseBanner(c)
	if err != nil {
		return err
	}

	id, err := h.Banners.Insert(c.UserContext(), banner)
	if err != nil {
		return err
	}
	if h.Mirror != nil {
		h.Mirror.Mirror(db.BannersCollection, id, img)
	}
	return c.JSON(models.NewInsertResult(id))
}

// Update replaces the banner named by the "_id" form field. It never creates one.
func (h *BannerHandler) Update(c *fiber.Ctx) error {
	id, err := parseObjectID(c.FormValue("_id"))
	if err != nil {
		return err
	}
	banner, img, err := parseBanner(c)
	if err != nil {
		return err
	}
	banner.ID = id

	result, err := h.Banners.Update(c.UserContext(), banner)
	if err != nil {
		return err
	}

	middleware.Ctx(c).Info().
		Str("banner_id", id.Hex()).
		Int64("matched", result.MatchedCount).
		Int64("modified", result.ModifiedCount).
		Msg("banner updated")
	if h.Mirror != nil && result.MatchedCount > 0 {
		h.Mirror.Mirror(db.BannersCollection, id, img)
	}
	return c.JSON(result)
}

func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := parseObjectID(raw)
	if err != nil {
		return err
	}

	count, err := h.Banners.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(deleted(raw, count))
}

func parseBanner(c *fiber.Ctx) (models.Banner, services.Image, error) {
	img, err := services.ReadImage(c, services.ImageField)
	if err != nil {
		return models.Banner{}, img, err
	}

	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return models.Banner{}, img, fmt.Errorf("%w: title", errs.ErrMissingField)
	}

	return models.Banner{
		Title:       title,
		Description: c.FormValue("description"),
		Image:       img.Data,
	}, img, nil
}
