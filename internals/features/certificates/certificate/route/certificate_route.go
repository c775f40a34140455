// internals/features/certificates/certificate/route/certificate_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certController "magangku_backend/internals/features/certificates/certificate/controller"
)

// CertificatePublicRoutes: verifikasi keaslian tanpa login.
func CertificatePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)
	r.Get("/certificates/verify/:code", ctrl.Verify)
}

// CertificateParticipantRoutes: peserta mengunduh sertifikatnya.
func CertificateParticipantRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)

	certs := r.Group("/certificates")
	certs.Get("/me", ctrl.MyCertificate)
}

// CertificateAdminRoutes: daftar & penerbitan.
func CertificateAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := certController.NewCertificateController(db)

	certs := r.Group("/certificates")
	certs.Get("/", ctrl.List)

	regs := r.Group("/registrations")
	regs.Post("/:id/certificate", ctrl.Issue)
}
