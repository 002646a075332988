// file: internals/route/index.go
package routes

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"investku_backend/internals/configs"
	"investku_backend/internals/constants"
	insightService "investku_backend/internals/features/assessments/insights/service"
	authMiddleware "investku_backend/internals/middlewares/auth"
	routeDetails "investku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT (webhook Midtrans dsb.)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	// PRIVATE (USER) → JWT wajib
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)

	// ADMIN → JWT + role check
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("mengelola assessment"), constants.AdminAndAbove...),
	)

	// ===== Gemini generator (nil kalau API key kosong → endpoint balas 502) =====
	var generator insightService.InsightGenerator
	if configs.GeminiAPIKey != "" {
		g, err := insightService.NewGeminiInsightGenerator(context.Background(), configs.GeminiAPIKey)
		if err != nil {
			log.Printf("[WARN] Gemini client gagal diinisialisasi: %v", err)
		} else {
			generator = g
		}
	}

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Assessment routes...")
	routeDetails.AssessmentPublicRoutes(public, db)
	routeDetails.AssessmentUserRoutes(private, db)
	routeDetails.AssessmentAdminRoutes(admin, db, generator)

	log.Println("[INFO] Mounting Payment routes...")
	routeDetails.PaymentPublicRoutes(public, db)
	routeDetails.PaymentUserRoutes(private, db)
	routeDetails.PaymentAdminRoutes(admin, db)
}
