// internals/features/payments/payment/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	payController "magangku_backend/internals/features/payments/payment/controller"
)

// PaymentWebhookRoutes: notifikasi Midtrans, tanpa auth.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := payController.NewPaymentController(db)
	r.Post("/payments/notification", ctrl.Notification)
}

// PaymentParticipantRoutes: tagihan peserta umum.
func PaymentParticipantRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := payController.NewPaymentController(db)

	pays := r.Group("/payments")
	pays.Post("/", ctrl.Create)
	pays.Get("/me", ctrl.MyPayments)
}

// PaymentAdminRoutes: monitoring pembayaran.
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := payController.NewPaymentController(db)

	pays := r.Group("/payments")
	pays.Get("/", ctrl.List)
}
