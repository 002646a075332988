// file: internals/features/finance/payments/service/webhook.go
package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"investku_backend/internals/features/finance/payments/model"
)

// HandlePaymentStatusWebhook dipanggil saat menerima notifikasi dari Midtrans
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 Order ID:", orderID)
	log.Println("📌 Transaction Status:", status)

	var payment model.AssessmentPaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] Payment tidak ditemukan:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		payment.PaymentStatus = model.PaymentStatusPaid
		payment.PaymentPaidAt = &now

	case "expire":
		payment.PaymentStatus = model.PaymentStatusExpired
	case "cancel", "deny":
		payment.PaymentStatus = model.PaymentStatusCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	// Simpan payload mentah untuk audit
	if raw, err := json.Marshal(body); err == nil {
		payment.PaymentWebhookPayload = datatypes.JSON(raw)
	}

	if err := db.Save(&payment).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status payment:", err)
		return err
	}

	return nil
}
