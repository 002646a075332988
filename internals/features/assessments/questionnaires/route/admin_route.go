// file: internals/features/assessments/questionnaires/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qCtrl "investku_backend/internals/features/assessments/questionnaires/controller"
)

func QuestionnaireAdminRoutes(r fiber.Router, db *gorm.DB) {
	// =====================
	// Assessment Categories
	// =====================
	categoryCtrl := qCtrl.NewAssessmentCategoryController(db)
	catGroup := r.Group("/assessment-categories")
	catGroup.Get("/", categoryCtrl.GetCategories)   // ?all=true untuk termasuk nonaktif
	catGroup.Post("/", categoryCtrl.CreateCategory)
	catGroup.Put("/:id", categoryCtrl.UpdateCategory)

	// =====================
	// Questionnaires (catalog management)
	// =====================
	questionnaireCtrl := qCtrl.NewQuestionnaireAdminController(db)
	qGroup := r.Group("/questionnaires")
	qGroup.Get("/", questionnaireCtrl.GetQuestionnaires)
	qGroup.Post("/", questionnaireCtrl.CreateQuestionnaire)
	qGroup.Get("/:id", questionnaireCtrl.GetQuestionnaireByID)
	qGroup.Put("/:id", questionnaireCtrl.UpdateQuestionnaire)
	qGroup.Patch("/:id/active", questionnaireCtrl.SetQuestionnaireActive)
	qGroup.Delete("/:id", questionnaireCtrl.DeleteQuestionnaire)
	qGroup.Post("/:id/questions", questionnaireCtrl.AddQuestion)
	qGroup.Post("/:id/calculate-time", questionnaireCtrl.CalculateEstimatedTime)
}
