package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arzan03/MedicineShop/internal/db"
	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/arzan03/MedicineShop/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Products ProductStore
	Mirror   ImageMirror
}

// List returns the products of the category given in ?category=, or all of
// them without it.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Products.List(c.UserContext(), c.Query("category"))
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return errs.ErrProductNotFound
	}
	return c.JSON(products)
}

// Create adds a product sent as multipart form with its picture in "image".
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	img, err := services.ReadImage(c, services.ImageField)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return fmt.Errorf("%w: name", errs.ErrMissingField)
	}
	price, err := parsePrice(c.FormValue("price"))
	if err != nil {
		return err
	}

	product := models.Product{
		Category:    c.FormValue("category"),
		Name:        name,
		Description: models.DescriptionLines(c.FormValue("description")),
		Price:       price,
		Image:       img.Data,
	}

	id, err := h.Products.Insert(c.UserContext(), product)
	if err != nil {
		return err
	}
	if h.Mirror != nil {
		h.Mirror.Mirror(db.ProductsCollection, id, img)
	}
	return c.JSON(models.NewInsertResult(id))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := parseObjectID(raw)
	if err != nil {
		return err
	}

	count, err := h.Products.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(deleted(raw, count))
}

func parsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: price", errs.ErrMissingField)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidPrice, raw)
	}
	return price, nil
}
