// file: internals/features/finance/payments/dto/assessment_payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"investku_backend/internals/features/finance/payments/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateAssessmentPaymentRequest struct {
	PaymentAssessmentID uuid.UUID `json:"payment_assessment_id" validate:"required"`
	PaymentAmount       int64     `json:"payment_amount" validate:"required,gt=0"`

	// Data customer untuk Midtrans Snap
	CustomerName  string `json:"customer_name" validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type AssessmentPaymentResponse struct {
	PaymentID           uuid.UUID `json:"payment_id"`
	PaymentAssessmentID uuid.UUID `json:"payment_assessment_id"`
	PaymentEnterpriseID uuid.UUID `json:"payment_enterprise_id"`

	PaymentOrderID string `json:"payment_order_id"`
	PaymentAmount  int64  `json:"payment_amount"`
	PaymentStatus  string `json:"payment_status"`

	PaymentSnapToken   string `json:"payment_snap_token,omitempty"`
	PaymentRedirectURL string `json:"payment_redirect_url,omitempty"`

	PaymentPaidAt    *time.Time `json:"payment_paid_at"`
	PaymentCreatedAt time.Time  `json:"payment_created_at"`
}

func ToAssessmentPaymentResponse(m *model.AssessmentPaymentModel) *AssessmentPaymentResponse {
	return &AssessmentPaymentResponse{
		PaymentID:           m.PaymentID,
		PaymentAssessmentID: m.PaymentAssessmentID,
		PaymentEnterpriseID: m.PaymentEnterpriseID,
		PaymentOrderID:      m.PaymentOrderID,
		PaymentAmount:       m.PaymentAmount,
		PaymentStatus:       m.PaymentStatus,
		PaymentSnapToken:    m.PaymentSnapToken,
		PaymentRedirectURL:  m.PaymentRedirectURL,
		PaymentPaidAt:       m.PaymentPaidAt,
		PaymentCreatedAt:    m.PaymentCreatedAt,
	}
}

func ToAssessmentPaymentResponses(list []model.AssessmentPaymentModel) []AssessmentPaymentResponse {
	out := make([]AssessmentPaymentResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToAssessmentPaymentResponse(&list[i]))
	}
	return out
}
