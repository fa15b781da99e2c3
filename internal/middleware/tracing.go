package middleware

import (
	"errors"
	"fmt"

	"github.com/arzan03/MedicineShop/internal/errs"
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing opens a server span per request and hands its context to the handlers,
// so MongoDB commands issued with c.UserContext() become child spans.
func Tracing(tracer trace.Tracer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, span := tracer.Start(c.UserContext(), fmt.Sprintf("[%s] %s", c.Method(), c.Path()),
			trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		c.SetUserContext(ctx)

		err := c.Next()

		span.SetName(fmt.Sprintf("[%s] %s", c.Method(), c.Route().Path))
		span.SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.route", c.Route().Path),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.Int("http.status_code", statusOf(err)))
		} else {
			span.SetAttributes(attribute.Int("http.status_code", c.Response().StatusCode()))
		}

		return err
	}
}

func statusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return errs.StatusCode(err)
}
