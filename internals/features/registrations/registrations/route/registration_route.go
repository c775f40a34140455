// internals/features/registrations/registrations/route/registration_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	puController "magangku_backend/internals/features/registrations/placement_units/controller"
	regController "magangku_backend/internals/features/registrations/registrations/controller"
	"magangku_backend/internals/middlewares"
)

// RegistrationPublicRoutes: form pendaftaran terbuka tanpa login.
func RegistrationPublicRoutes(r fiber.Router, db *gorm.DB) {
	regCtrl := regController.NewRegistrationController(db)
	puCtrl := puController.NewPlacementUnitController(db)

	r.Get("/placement-units", puCtrl.ListPublic)
	r.Post("/registrations", middlewares.RegisterRateLimiter(), regCtrl.Submit)
}

// RegistrationParticipantRoutes: peserta melihat pendaftarannya sendiri.
func RegistrationParticipantRoutes(r fiber.Router, db *gorm.DB) {
	regCtrl := regController.NewRegistrationController(db)

	regs := r.Group("/registrations")
	regs.Get("/me", regCtrl.MyRegistrations)
}

// RegistrationAdminRoutes: kelola unit, periode, dan keputusan pendaftaran.
func RegistrationAdminRoutes(r fiber.Router, db *gorm.DB) {
	regCtrl := regController.NewRegistrationController(db)
	puCtrl := puController.NewPlacementUnitController(db)

	units := r.Group("/placement-units")
	units.Get("/", puCtrl.List)
	units.Post("/", puCtrl.Create)
	units.Put("/:id", puCtrl.Update)
	units.Delete("/:id", puCtrl.Delete)

	regs := r.Group("/registrations")
	regs.Get("/", regCtrl.List)
	regs.Get("/stats", regCtrl.Stats)
	regs.Get("/:id", regCtrl.Detail)
	regs.Post("/:id/decide", regCtrl.Decide)
	regs.Post("/:id/advance", regCtrl.Advance)

	periods := r.Group("/registration-periods")
	periods.Get("/", regCtrl.ListPeriods)
	periods.Post("/", regCtrl.CreatePeriod)
	periods.Put("/:id", regCtrl.UpdatePeriod)
}
