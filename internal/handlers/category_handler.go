package handlers

import (
	"fmt"
	"strings"

	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Categories CategoryStore
}

// List all categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.Categories.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return badBody(err)
	}
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return fmt.Errorf("%w: name", errs.ErrMissingField)
	}

	id, err := h.Categories.Insert(c.UserContext(), category)
	if err != nil {
		return err
	}
	return c.JSON(models.CreatedCategory{ID: id, Name: category.Name})
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := parseObjectID(raw)
	if err != nil {
		return err
	}

	count, err := h.Categories.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(deleted(raw, count))
}
