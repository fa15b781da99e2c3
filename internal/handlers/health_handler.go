package handlers

import (
	"context"
	"time"

	"github.com/arzan03/MedicineShop/internal/middleware"
	"github.com/arzan03/MedicineShop/internal/utils"
	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 3 * time.Second

type HealthHandler struct {
	Mongo Pinger
	// Archive is nil when image mirroring is disabled.
	Archive Pinger
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Mongo     string    `json:"mongo"`
	Archive   string    `json:"archive"`
	Timestamp time.Time `json:"timestamp"`
}

// Root keeps the plain liveness answer older clients probe.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Simple Express Server is Running")
}

// Ready pings MongoDB and the archive concurrently. Only MongoDB decides readiness.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	tasks := []utils.Task{func() error { return h.Mongo.Ping(ctx) }}
	if h.Archive != nil {
		tasks = append(tasks, func() error { return h.Archive.Ping(ctx) })
	}
	results := utils.RunParallel(tasks...)

	resp := HealthResponse{
		Status:    "ok",
		Mongo:     "up",
		Archive:   "disabled",
		Timestamp: time.Now().UTC(),
	}
	status := fiber.StatusOK

	if results[0] != nil {
		middleware.Ctx(c).Error().Err(results[0]).Str("component", "HealthCheck").Msg("mongodb ping failed")
		resp.Status = "unavailable"
		resp.Mongo = "down"
		status = fiber.StatusServiceUnavailable
	}
	if h.Archive != nil {
		resp.Archive = "up"
		if results[1] != nil {
			middleware.Ctx(c).Warn().Err(results[1]).Str("component", "HealthCheck").Msg("archive ping failed")
			resp.Archive = "down"
		}
	}

	return c.Status(status).JSON(resp)
}
