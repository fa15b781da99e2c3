package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// Logger tags every request with a request id, makes a child logger carrying it
// available through log.Ctx(c.UserContext()) and logs the outcome.
//
// Errors from the chain are answered here with the app's error handler, so the
// logged status is the one the client receives.
func Logger(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDHeader, requestID)

		logger := base.With().Str("request_id", requestID).Logger()
		c.SetUserContext(logger.WithContext(c.UserContext()))

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := logger.Info()
		if status >= fiber.StatusInternalServerError {
			event = logger.Error()
		} else if status >= fiber.StatusBadRequest {
			event = logger.Warn()
		}

		event.
			Str("method", c.Method()).
			Str("endpoint", c.Path()).
			Int("status", status).
			Int64("latency", time.Since(start).Milliseconds()).
			Str("ip", c.IP()).
			Msg("Request processed")

		return nil
	}
}

// Ctx returns the request scoped logger, or the global one outside a request.
func Ctx(c *fiber.Ctx) *zerolog.Logger {
	if l := zerolog.Ctx(c.UserContext()); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}
