// file: internals/features/finance/payments/route/all_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pCtrl "investku_backend/internals/features/finance/payments/controller"
)

// Webhook Midtrans: public, dipanggil server-to-server tanpa JWT.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	paymentCtrl := pCtrl.NewAssessmentPaymentController(db)
	r.Post("/payments/notification", paymentCtrl.HandleNotification)
}
