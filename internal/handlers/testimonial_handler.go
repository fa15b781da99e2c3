package handlers

import (
	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/gofiber/fiber/v2"
)

type TestimonialHandler struct {
	Testimonials TestimonialStore
}

func (h *TestimonialHandler) List(c *fiber.Ctx) error {
	testimonials, err := h.Testimonials.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(testimonials)
}

// AddReview stores the review JSON object as it was sent.
func (h *TestimonialHandler) AddReview(c *fiber.Ctx) error {
	var review models.Testimonial
	if err := c.BodyParser(&review); err != nil {
		return badBody(err)
	}
	if len(review) == 0 {
		return errs.ErrEmptyBody
	}

	id, err := h.Testimonials.Insert(c.UserContext(), review)
	if err != nil {
		return err
	}
	return c.JSON(models.NewInsertResult(id))
}
