// file: internals/route/details/assessment_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentRoute "investku_backend/internals/features/assessments/assessments/route"
	insightService "investku_backend/internals/features/assessments/insights/service"
	questionnaireRoute "investku_backend/internals/features/assessments/questionnaires/route"
)

// Public: tidak ada endpoint assessment tanpa JWT saat ini.
func AssessmentPublicRoutes(r fiber.Router, db *gorm.DB) {}

// User (/api/u): enterprise mengisi assessment
func AssessmentUserRoutes(r fiber.Router, db *gorm.DB) {
	questionnaireRoute.QuestionnaireUserRoutes(r, db)
	assessmentRoute.AssessmentUserRoutes(r, db)
}

// Admin (/api/a): kelola katalog + review workflow + insight AI
func AssessmentAdminRoutes(r fiber.Router, db *gorm.DB, generator insightService.InsightGenerator) {
	questionnaireRoute.QuestionnaireAdminRoutes(r, db)
	assessmentRoute.AssessmentAdminRoutes(r, db, generator)
}
