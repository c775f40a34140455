// internals/features/payments/payment/controller/payment_controller.go
package controller

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	payModel "magangku_backend/internals/features/payments/payment/model"
	payService "magangku_backend/internals/features/payments/payment/service"
	helper "magangku_backend/internals/helpers"
)

// Biaya pelatihan default (IDR) kalau TRAINING_FEE tidak diset.
const defaultTrainingFee = 500000

type PaymentController struct {
	DB      *gorm.DB
	Service *payService.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:      db,
		Service: payService.NewPaymentService(db),
	}
}

/* ===================== HANDLERS (PESERTA) ===================== */

// POST /api/u/payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	payment, err := h.Service.CreatePayment(userID, trainingFee())
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonCreated(c, "Tagihan dibuat", payment)
}

// GET /api/u/payments/me
func (h *PaymentController) MyPayments(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var rows []payModel.PaymentModel
	if err := h.DB.
		Where("payment_user_id = ?", userID).
		Order("payment_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	return helper.JsonOK(c, "ok", rows)
}

/* ===================== WEBHOOK ===================== */

// POST /api/payments/notification
// Dipanggil server Midtrans, tidak lewat auth middleware.
func (h *PaymentController) Notification(c *fiber.Ctx) error {
	var payload struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		PaymentType       string `json:"payment_type"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if payload.OrderID == "" || payload.TransactionStatus == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id dan transaction_status wajib")
	}

	if err := h.Service.ApplyNotification(payload.OrderID, payload.TransactionStatus, payload.PaymentType); err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", nil)
}

/* ===================== HANDLERS (ADMIN) ===================== */

// GET /api/a/payments?status=
func (h *PaymentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	orderExpr, err := p.SafeOrderClause(map[string]string{
		"created_at": "payment_created_at",
		"paid_at":    "payment_paid_at",
		"amount":     "payment_amount",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak dikenal")
	}

	dbq := h.DB.Model(&payModel.PaymentModel{})
	if v := c.Query("status"); v != "" {
		dbq = dbq.Where("payment_status = ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []payModel.PaymentModel
	if err := dbq.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPagination(total, p))
}

/* ===================== HELPERS ===================== */

func trainingFee() int64 {
	if v, err := strconv.ParseInt(os.Getenv("TRAINING_FEE"), 10, 64); err == nil && v > 0 {
		return v
	}
	return defaultTrainingFee
}
