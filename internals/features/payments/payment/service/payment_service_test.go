package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	payModel "magangku_backend/internals/features/payments/payment/model"
)

func TestMapMidtransStatus(t *testing.T) {
	tests := []struct {
		in   string
		want payModel.PaymentStatus
	}{
		{"settlement", payModel.PaymentStatusPaid},
		{"capture", payModel.PaymentStatusPaid},
		{"SETTLEMENT", payModel.PaymentStatusPaid},
		{"deny", payModel.PaymentStatusFailed},
		{"cancel", payModel.PaymentStatusFailed},
		{"failure", payModel.PaymentStatusFailed},
		{"expire", payModel.PaymentStatusExpired},
		{"pending", payModel.PaymentStatusPending},
		{"authorize", payModel.PaymentStatusPending},
		{"", payModel.PaymentStatusPending},
	}
	for _, tt := range tests {
		t.Run("status_"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MapMidtransStatus(tt.in))
		})
	}
}
