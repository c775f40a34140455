// internals/features/attendance/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attController "magangku_backend/internals/features/attendance/attendance/controller"
)

// AttendanceParticipantRoutes: presensi harian peserta.
func AttendanceParticipantRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attController.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Post("/check-in", ctrl.CheckIn)
	att.Post("/check-out", ctrl.CheckOut)
	att.Get("/me", ctrl.MyHistory)
	att.Get("/me/stats", ctrl.MyMonthlyStats)
}

// AttendanceAdminRoutes: rekap, koreksi status, dan pengaturan geofence.
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attController.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Get("/users/:id", ctrl.HistoryByUser)
	att.Get("/users/:id/stats", ctrl.StatsByUser)
	att.Post("/mark", ctrl.MarkStatus)
	att.Get("/settings", ctrl.GetSettings)
	att.Put("/settings", ctrl.UpdateSettings)
}
