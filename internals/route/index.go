// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	annRoute "magangku_backend/internals/features/announcements/announcement/route"
	attRoute "magangku_backend/internals/features/attendance/attendance/route"
	certRoute "magangku_backend/internals/features/certificates/certificate/route"
	payRoute "magangku_backend/internals/features/payments/payment/route"
	regRoute "magangku_backend/internals/features/registrations/registrations/route"
	reportRoute "magangku_backend/internals/features/reports/report/route"
	authRoute "magangku_backend/internals/features/users/auth/route"
	userRoute "magangku_backend/internals/features/users/user/route"
	authmw "magangku_backend/internals/middlewares/auth"
)

// SetupRoutes merakit seluruh endpoint:
//   - /api   → publik (login, pendaftaran, verifikasi sertifikat, webhook Midtrans)
//   - /api/u → peserta (student/general), auth + role
//   - /api/a → admin, auth + role
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	// ===== Publik (logout di dalamnya pakai middleware inline) =====
	public := app.Group("/api")
	authRoute.AuthRoutes(public, db)
	regRoute.RegistrationPublicRoutes(public, db)
	certRoute.CertificatePublicRoutes(public, db)
	payRoute.PaymentWebhookRoutes(public, db)

	// ===== Peserta =====
	participant := app.Group("/api/u",
		authmw.AuthMiddleware(db),
		authmw.OnlyRolesSlice(constants.RoleErrorParticipant("peserta"), constants.ParticipantRoles),
	)
	userRoute.UserParticipantRoutes(participant, db)
	regRoute.RegistrationParticipantRoutes(participant, db)
	attRoute.AttendanceParticipantRoutes(participant, db)
	reportRoute.ReportParticipantRoutes(participant, db)
	certRoute.CertificateParticipantRoutes(participant, db)
	annRoute.AnnouncementParticipantRoutes(participant, db)
	payRoute.PaymentParticipantRoutes(participant, db)

	// ===== Admin =====
	admin := app.Group("/api/a",
		authmw.AuthMiddleware(db),
		authmw.OnlyRoles(constants.RoleErrorAdmin("administrasi"), constants.RoleAdmin),
	)
	userRoute.UserAdminRoutes(admin, db)
	regRoute.RegistrationAdminRoutes(admin, db)
	attRoute.AttendanceAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
	certRoute.CertificateAdminRoutes(admin, db)
	annRoute.AnnouncementAdminRoutes(admin, db)
	payRoute.PaymentAdminRoutes(admin, db)
}
