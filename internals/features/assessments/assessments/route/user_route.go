// file: internals/features/assessments/assessments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aCtrl "investku_backend/internals/features/assessments/assessments/controller"
)

func AssessmentUserRoutes(r fiber.Router, db *gorm.DB) {
	assessmentCtrl := aCtrl.NewAssessmentUserController(db)

	aGroup := r.Group("/assessments")
	aGroup.Get("/", assessmentCtrl.GetMyAssessments)
	aGroup.Post("/", assessmentCtrl.CreateAssessment)
	aGroup.Get("/:id", assessmentCtrl.GetMyAssessmentByID)
	aGroup.Post("/:id/start", assessmentCtrl.StartAssessment)
	aGroup.Post("/:id/responses", assessmentCtrl.SaveResponse)
	aGroup.Post("/:id/submit", assessmentCtrl.SubmitAssessment)
	aGroup.Get("/:id/insights", assessmentCtrl.GetMyInsights)
}
