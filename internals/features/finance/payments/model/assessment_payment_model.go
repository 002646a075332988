// file: internals/features/finance/payments/model/assessment_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status pembayaran assessment.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusExpired  = "expired"
	PaymentStatusCanceled = "canceled"
)

// AssessmentPaymentModel merepresentasikan tabel `assessment_payments`:
// biaya layanan assessment/review yang dibayar enterprise lewat Midtrans Snap.
type AssessmentPaymentModel struct {
	PaymentID           uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	PaymentAssessmentID uuid.UUID `json:"payment_assessment_id" gorm:"column:payment_assessment_id;type:uuid;not null;index:idx_payments_assessment"`
	PaymentEnterpriseID uuid.UUID `json:"payment_enterprise_id" gorm:"column:payment_enterprise_id;type:uuid;not null;index:idx_payments_enterprise"`

	// Order ID yang dikirim ke Midtrans, unik per transaksi
	PaymentOrderID string `json:"payment_order_id" gorm:"column:payment_order_id;type:varchar(64);not null;uniqueIndex:uq_payments_order_id"`
	PaymentAmount  int64  `json:"payment_amount" gorm:"column:payment_amount;not null"`
	PaymentStatus  string `json:"payment_status" gorm:"column:payment_status;type:varchar(20);not null;default:'pending'"`

	PaymentSnapToken   string `json:"payment_snap_token" gorm:"column:payment_snap_token;type:varchar(255)"`
	PaymentRedirectURL string `json:"payment_redirect_url" gorm:"column:payment_redirect_url;type:text"`

	// Payload mentah notifikasi terakhir dari Midtrans (audit)
	PaymentWebhookPayload datatypes.JSON `json:"payment_webhook_payload" gorm:"column:payment_webhook_payload;type:jsonb"`

	PaymentPaidAt    *time.Time `json:"payment_paid_at" gorm:"column:payment_paid_at"`
	PaymentCreatedAt time.Time  `json:"payment_created_at" gorm:"column:payment_created_at;not null;autoCreateTime"`
	PaymentUpdatedAt time.Time  `json:"payment_updated_at" gorm:"column:payment_updated_at;not null;autoUpdateTime"`
}

func (AssessmentPaymentModel) TableName() string {
	return "assessment_payments"
}
