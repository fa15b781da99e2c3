package handlers

import (
	"errors"
	"net/url"
	"strings"

	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/arzan03/MedicineShop/internal/middleware"
	"github.com/arzan03/MedicineShop/internal/models"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Users UserStore
}

// List all users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// ListAdmins lists only users holding the admin role
func (h *UserHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.Users.ListByRole(c.UserContext(), models.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(admins)
}

// Create saves the user info sent after a sign up
func (h *UserHandler) Create(c *fiber.Ctx) error {
	user, err := parseUser(c)
	if err != nil {
		return err
	}

	id, err := h.Users.Insert(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(models.NewInsertResult(id))
}

// Upsert stores the user sent by a third party login, keyed by email
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	user, err := parseUser(c)
	if err != nil {
		return err
	}

	result, err := h.Users.UpsertByEmail(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := parseObjectID(raw)
	if err != nil {
		return err
	}

	count, err := h.Users.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(deleted(raw, count))
}

// AdminStatus answers whether the user with the email is an admin. Unknown
// users are simply not admins.
func (h *UserHandler) AdminStatus(c *fiber.Ctx) error {
	email := emailParam(c)

	user, err := h.Users.FindByEmail(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.JSON(models.AdminStatus{Admin: false})
		}
		return err
	}
	return c.JSON(models.AdminStatus{Admin: user.IsAdmin()})
}

// MakeAdmin grants the admin role to the user with the email
func (h *UserHandler) MakeAdmin(c *fiber.Ctx) error {
	email := emailParam(c)
	if email == "" {
		return errs.ErrMissingEmail
	}

	result, err := h.Users.SetRole(c.UserContext(), email, models.RoleAdmin)
	if err != nil {
		return err
	}

	middleware.Ctx(c).Info().
		Str("email", email).
		Int64("matched", result.MatchedCount).
		Int64("modified", result.ModifiedCount).
		Msg("admin role granted")
	return c.JSON(result)
}

func parseUser(c *fiber.Ctx) (models.User, error) {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return user, badBody(err)
	}
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return user, errs.ErrMissingEmail
	}
	return user, nil
}

func emailParam(c *fiber.Ctx) string {
	raw := c.Params("email")
	if email, err := url.PathUnescape(raw); err == nil {
		return email
	}
	return raw
}
