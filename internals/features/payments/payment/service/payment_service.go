// internals/features/payments/payment/service/payment_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	payModel "magangku_backend/internals/features/payments/payment/model"
	uModel "magangku_backend/internals/features/users/user/model"
)

/* ===================== STATUS MAPPING (pure) ===================== */

// MapMidtransStatus memetakan transaction_status Midtrans ke status internal.
// Status antara (pending, authorize) tetap pending.
func MapMidtransStatus(transactionStatus string) payModel.PaymentStatus {
	switch strings.ToLower(transactionStatus) {
	case "settlement", "capture":
		return payModel.PaymentStatusPaid
	case "deny", "cancel", "failure":
		return payModel.PaymentStatusFailed
	case "expire":
		return payModel.PaymentStatusExpired
	default:
		return payModel.PaymentStatusPending
	}
}

/* ===================== SERVICE ===================== */

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// CreatePayment membuat tagihan + snap token. Biaya hanya untuk peserta umum;
// satu tagihan pending dipakai ulang, tidak dibuat baru tiap klik.
func (s *PaymentService) CreatePayment(userID uuid.UUID, amount int64) (*payModel.PaymentModel, error) {
	var user uModel.UserModel
	if err := s.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	if user.UserType != uModel.UserTypeGeneral {
		return nil, fiber.NewError(fiber.StatusConflict, "Biaya pelatihan hanya untuk peserta umum")
	}
	if user.UserIsPaymentComplete {
		return nil, fiber.NewError(fiber.StatusConflict, "Pembayaran sudah lunas")
	}

	var existing payModel.PaymentModel
	err := s.DB.Where("payment_user_id = ? AND payment_status = ?", userID, payModel.PaymentStatusPending).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa tagihan")
	}

	orderID := fmt.Sprintf("MAGANG-%d-%s", time.Now().Unix(), strings.ToUpper(uuid.NewString()[:8]))
	email := ""
	if user.UserEmail != nil {
		email = *user.UserEmail
	}
	token, err := GenerateSnapToken(orderID, amount, user.UserFullName, email)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
	}

	payment := payModel.PaymentModel{
		PaymentUserID:    userID,
		PaymentOrderID:   orderID,
		PaymentAmount:    amount,
		PaymentStatus:    payModel.PaymentStatusPending,
		PaymentSnapToken: &token,
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan tagihan")
	}
	return &payment, nil
}

// ApplyNotification memperbarui status tagihan dari webhook Midtrans.
// Saat lunas, flag pembayaran user ikut dinyalakan dalam transaksi yang sama.
func (s *PaymentService) ApplyNotification(orderID, transactionStatus, paymentType string) error {
	status := MapMidtransStatus(transactionStatus)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var payment payModel.PaymentModel
		if err := tx.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Order tidak dikenal")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
		}

		// Webhook bisa datang berulang; status final tidak diturunkan lagi.
		if payment.PaymentStatus == payModel.PaymentStatusPaid {
			return nil
		}

		payment.PaymentStatus = status
		if paymentType != "" {
			payment.PaymentMethod = &paymentType
		}
		if status == payModel.PaymentStatusPaid {
			now := time.Now()
			payment.PaymentPaidAt = &now
		}
		if err := tx.Save(&payment).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan status pembayaran")
		}

		if status == payModel.PaymentStatusPaid {
			if err := tx.Model(&uModel.UserModel{}).
				Where("user_id = ?", payment.PaymentUserID).
				Update("user_is_payment_complete", true).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui status user")
			}
		}
		return nil
	})
}
