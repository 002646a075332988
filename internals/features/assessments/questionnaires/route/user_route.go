// file: internals/features/assessments/questionnaires/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qCtrl "investku_backend/internals/features/assessments/questionnaires/controller"
)

func QuestionnaireUserRoutes(r fiber.Router, db *gorm.DB) {
	questionnaireCtrl := qCtrl.NewQuestionnaireUserController(db)
	categoryCtrl := qCtrl.NewAssessmentCategoryController(db)

	qGroup := r.Group("/questionnaires")
	qGroup.Get("/available", questionnaireCtrl.GetAvailableQuestionnaires) // matched dengan enterprise user
	qGroup.Get("/:id", questionnaireCtrl.GetQuestionnaireByID)

	r.Get("/assessment-categories", categoryCtrl.GetCategories)
}
