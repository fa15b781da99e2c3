package handlers

import (
	"errors"
	"fmt"

	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/arzan03/MedicineShop/internal/middleware"
	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorHandler is the single place where handler errors become HTTP responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := errs.StatusCode(err)
	message := errs.Message(err)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		middleware.Ctx(c).Error().Err(err).Str("component", "ErrorHandler").Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).JSON(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

func parseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", errs.ErrInvalidID, raw)
	}
	return id, nil
}

func badBody(err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	return fmt.Errorf("%w: %v", errs.ErrClient, err)
}

func deleted(raw string, count int64) models.DeleteResult {
	return models.DeleteResult{ID: raw, DeletedCount: count}
}
