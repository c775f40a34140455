// internals/route/base_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	database "magangku_backend/internals/databases"
	helper "magangku_backend/internals/helpers"
)

// BaseRoutes: health check untuk load balancer / Railway.
func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(); err != nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "DB tidak sehat")
		}
		return helper.JsonOK(c, "ok", fiber.Map{"status": "healthy"})
	})
}
