// internals/features/payments/payment/model/payment_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
)

/*
Status pembayaran biaya pelatihan (peserta umum):
- "pending" → menunggu pembayaran di Midtrans
- "paid"    → settlement/capture diterima
- "failed"  → deny/cancel
- "expired" → kadaluarsa
*/
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
	PaymentStatusExpired PaymentStatus = "expired"
)

func (s *PaymentStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = PaymentStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s PaymentStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type PaymentModel struct {
	PaymentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`
	PaymentUserID uuid.UUID `gorm:"type:uuid;not null;index;column:payment_user_id" json:"payment_user_id"`

	// Order ID yang dikirim ke Midtrans, kunci pencocokan webhook
	PaymentOrderID string `gorm:"type:varchar(64);unique;not null;column:payment_order_id" json:"payment_order_id"`
	PaymentAmount  int64  `gorm:"not null;column:payment_amount" json:"payment_amount"`

	PaymentStatus    PaymentStatus `gorm:"type:varchar(10);not null;default:'pending';column:payment_status" json:"payment_status"`
	PaymentSnapToken *string       `gorm:"type:varchar(100);column:payment_snap_token" json:"payment_snap_token,omitempty"`
	PaymentMethod    *string       `gorm:"type:varchar(50);column:payment_method" json:"payment_method,omitempty"`
	PaymentPaidAt    *time.Time    `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
