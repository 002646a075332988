// file: internals/features/assessments/assessments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aCtrl "investku_backend/internals/features/assessments/assessments/controller"
	iCtrl "investku_backend/internals/features/assessments/insights/controller"
	isvc "investku_backend/internals/features/assessments/insights/service"
	"investku_backend/internals/middlewares"
)

func AssessmentAdminRoutes(r fiber.Router, db *gorm.DB, generator isvc.InsightGenerator) {
	// =====================
	// Assessments (review workflow)
	// =====================
	assessmentCtrl := aCtrl.NewAssessmentAdminController(db)
	aGroup := r.Group("/assessments")
	aGroup.Get("/", assessmentCtrl.GetAssessments)
	aGroup.Get("/:id", assessmentCtrl.GetAssessmentByID)
	aGroup.Post("/:id/assign-reviewer", assessmentCtrl.AssignReviewer)
	aGroup.Post("/:id/review", assessmentCtrl.MarkReviewed)
	aGroup.Post("/:id/regrade", assessmentCtrl.RegradeAssessment)

	// =====================
	// AI Insights
	// =====================
	insightCtrl := iCtrl.NewInsightController(db, generator)
	aGroup.Get("/:id/insights", insightCtrl.GetInsights)
	aGroup.Post("/:id/insights/generate", middlewares.InsightRateLimiter(), insightCtrl.GenerateInsights)
	aGroup.Put("/:id/insights", insightCtrl.UpdateInsights)
}
