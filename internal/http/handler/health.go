package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"notesvc/internal/service"
)

// HealthCheck handles GET /healthz. This is the only endpoint that recovers
// from store failures: a failed ping becomes a structured 500 instead of
// propagating to the global error handler. The orchestration layer uses it
// to gate traffic and restart decisions.
func HealthCheck(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := svc.Ping(ctx); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"details": err.Error(),
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	}
}
