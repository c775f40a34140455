// internals/features/announcements/announcement/route/announcement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annController "magangku_backend/internals/features/announcements/announcement/controller"
)

// AnnouncementParticipantRoutes: feed pengumuman terpublikasi.
func AnnouncementParticipantRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := annController.NewAnnouncementController(db)

	anns := r.Group("/announcements")
	anns.Get("/", ctrl.Feed)
}

// AnnouncementAdminRoutes: CRUD pengumuman.
func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := annController.NewAnnouncementController(db)

	anns := r.Group("/announcements")
	anns.Get("/", ctrl.List)
	anns.Post("/", ctrl.Create)
	anns.Put("/:id", ctrl.Update)
	anns.Delete("/:id", ctrl.Delete)
}
