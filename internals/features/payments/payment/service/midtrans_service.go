// internals/features/payments/payment/service/midtrans_service.go
package service

import (
	"log"
	"os"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// InitMidtrans menyiapkan client Snap. Default sandbox;
// set MIDTRANS_ENV=production untuk go-live.
func InitMidtrans() {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		log.Println("[WARN] MIDTRANS_SERVER_KEY kosong, pembayaran tidak akan jalan")
	}

	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
	log.Println("[INFO] Midtrans snap client siap")
}

// GenerateSnapToken membuat token pembayaran untuk satu order.
func GenerateSnapToken(orderID string, amount int64, customerName, customerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
