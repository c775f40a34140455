// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "magangku_backend/internals/features/users/auth/controller"
	"magangku_backend/internals/middlewares"
	authmw "magangku_backend/internals/middlewares/auth"
)

// AuthRoutes: login terbuka; logout pakai middleware auth inline
// supaya prefix /api lainnya tetap publik.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.LoginParticipant)
	auth.Post("/login/admin", middlewares.LoginRateLimiter(), ctrl.LoginAdmin)
	auth.Post("/logout", authmw.AuthMiddleware(db), ctrl.Logout)
}
