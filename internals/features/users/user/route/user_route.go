// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "magangku_backend/internals/features/users/user/controller"
)

// UserParticipantRoutes didaftarkan di group yang sudah melewati auth + role peserta.
func UserParticipantRoutes(r fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	docCtrl := userController.NewDocumentController(db)

	users := r.Group("/users")
	users.Get("/me", userCtrl.Me)
	users.Get("/me/profile", userCtrl.MyProfile)
	users.Put("/me/profile", userCtrl.UpsertMyProfile)
	users.Get("/me/completeness", userCtrl.MyCompleteness)

	docs := r.Group("/documents")
	docs.Get("/", docCtrl.MyDocuments)
	docs.Post("/", docCtrl.Upsert)
}

// UserAdminRoutes didaftarkan di group admin.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	docCtrl := userController.NewDocumentController(db)

	users := r.Group("/users")
	users.Get("/", userCtrl.List)
	users.Get("/:id", userCtrl.Detail)
	users.Get("/:id/documents", docCtrl.ListByUser)

	docs := r.Group("/documents")
	docs.Post("/:id/verify", docCtrl.Verify)
}
