// file: internals/features/assessments/questionnaires/controller/questionnaire_user_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"investku_backend/internals/features/assessments/questionnaires/dto"
	"investku_backend/internals/features/assessments/questionnaires/model"
	"investku_backend/internals/features/assessments/questionnaires/service"
	emodel "investku_backend/internals/features/enterprises/model"
	helper "investku_backend/internals/helpers"
)

type QuestionnaireUserController struct {
	DB *gorm.DB
}

func NewQuestionnaireUserController(db *gorm.DB) *QuestionnaireUserController {
	return &QuestionnaireUserController{DB: db}
}

/* =========================================================
   📄 Questionnaire aktif yang cocok dengan enterprise user login
   Matching (sector/size/district/employee range) dievaluasi in-memory:
   jumlah questionnaire aktif kecil, kriterianya lintas kolom array.
========================================================= */
func (ctrl *QuestionnaireUserController) GetAvailableQuestionnaires(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var enterprise emodel.EnterpriseModel
	if err := ctrl.DB.First(&enterprise, "enterprise_user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Enterprise untuk user ini tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil enterprise")
	}

	var questionnaires []model.QuestionnaireModel
	if err := ctrl.DB.
		Where("questionnaire_is_active = TRUE").
		Order("questionnaire_created_at DESC").
		Find(&questionnaires).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil questionnaire")
	}

	matched := make([]model.QuestionnaireModel, 0, len(questionnaires))
	for i := range questionnaires {
		if service.MatchesEnterprise(&questionnaires[i], &enterprise) {
			matched = append(matched, questionnaires[i])
		}
	}

	return helper.Success(c, "Questionnaire tersedia berhasil diambil", dto.ToQuestionnaireLiteResponses(matched))
}

/* =========================================================
   🔍 Detail questionnaire aktif + questions untuk pengisian
========================================================= */
func (ctrl *QuestionnaireUserController) GetQuestionnaireByID(c *fiber.Ctx) error {
	questionnaireID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var questionnaire model.QuestionnaireModel
	if err := ctrl.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_option_order ASC")
		}).
		Where("questionnaire_is_active = TRUE").
		First(&questionnaire, "questionnaire_id = ?", questionnaireID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Questionnaire tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil questionnaire")
	}

	return helper.Success(c, "Questionnaire berhasil diambil", dto.ToQuestionnaireResponse(&questionnaire))
}
