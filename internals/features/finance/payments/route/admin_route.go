// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pCtrl "investku_backend/internals/features/finance/payments/controller"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	paymentCtrl := pCtrl.NewAssessmentPaymentController(db)

	pGroup := r.Group("/payments")
	pGroup.Get("/", paymentCtrl.GetAllPayments)
}
