// internals/features/reports/report/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "magangku_backend/internals/features/reports/report/controller"
)

// ReportParticipantRoutes: peserta menulis dan mengajukan laporan.
func ReportParticipantRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := r.Group("/reports")
	reports.Get("/", ctrl.MyReports)
	reports.Post("/", ctrl.Create)
	reports.Put("/:id", ctrl.Update)
	reports.Post("/:id/submit", ctrl.Submit)
	reports.Get("/:id/comments", ctrl.ListComments)
	reports.Post("/:id/comments", ctrl.AddComment)
}

// ReportAdminRoutes: review dan diskusi.
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := r.Group("/reports")
	reports.Get("/", ctrl.List)
	reports.Post("/:id/review", ctrl.Review)
	reports.Get("/:id/comments", ctrl.ListComments)
	reports.Post("/:id/comments", ctrl.AddComment)
}
