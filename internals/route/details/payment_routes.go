// file: internals/route/details/payment_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "investku_backend/internals/features/finance/payments/route"
	"investku_backend/internals/middlewares"
)

// Public: webhook Midtrans (server-to-server, tanpa JWT, rate limited)
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	webhook := r.Group("", middlewares.WebhookRateLimiter())
	paymentRoute.PaymentWebhookRoutes(webhook, db)
}

// User (/api/u): buat payment + lihat payment sendiri
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentUserRoutes(r, db)
}

// Admin (/api/a): list semua payment
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentAdminRoutes(r, db)
}
