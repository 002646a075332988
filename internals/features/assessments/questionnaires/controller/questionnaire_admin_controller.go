// file: internals/features/assessments/questionnaires/controller/questionnaire_admin_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"investku_backend/internals/features/assessments/questionnaires/dto"
	"investku_backend/internals/features/assessments/questionnaires/model"
	"investku_backend/internals/features/assessments/questionnaires/service"
	helper "investku_backend/internals/helpers"
)

type QuestionnaireAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Catalog   *service.CatalogService
}

func NewQuestionnaireAdminController(db *gorm.DB) *QuestionnaireAdminController {
	return &QuestionnaireAdminController{
		DB:        db,
		Validator: validator.New(),
		Catalog:   service.NewCatalogService(db),
	}
}

/* =========================================================
   ➕ Create questionnaire (boleh sekalian nested questions+options)
========================================================= */
func (ctrl *QuestionnaireAdminController) CreateQuestionnaire(c *fiber.Ctx) error {
	var req dto.CreateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	for _, q := range req.Questions {
		if !model.IsValidQuestionType(q.QuestionType) {
			return helper.Error(c, fiber.StatusBadRequest, "question_type tidak dikenal: "+q.QuestionType)
		}
		if err := q.ValidateScores(); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
	}

	var createdBy *uuid.UUID
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		createdBy = &userID
	}

	questionnaire := req.ToModel(createdBy)
	if err := ctrl.DB.Create(questionnaire).Error; err != nil {
		log.Printf("[QUESTIONNAIRE] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat questionnaire")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Questionnaire berhasil dibuat", dto.ToQuestionnaireResponse(questionnaire))
}

/* =========================================================
   📄 List semua questionnaire (termasuk nonaktif) + pagination
========================================================= */
func (ctrl *QuestionnaireAdminController) GetQuestionnaires(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	allowedSort := map[string]string{
		"created_at": "questionnaire_created_at",
		"title":      "questionnaire_title",
	}
	orderClause, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	tx := ctrl.DB.Model(&model.QuestionnaireModel{})
	if sector := c.Query("sector"); sector != "" {
		tx = tx.Where("? = ANY(questionnaire_target_sectors) OR questionnaire_target_sectors IS NULL OR cardinality(questionnaire_target_sectors) = 0", sector)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung questionnaire")
	}

	var questionnaires []model.QuestionnaireModel
	if err := tx.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&questionnaires).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil questionnaire")
	}

	return helper.Success(c, "Questionnaire berhasil diambil", fiber.Map{
		"items": dto.ToQuestionnaireLiteResponses(questionnaires),
		"meta":  helper.BuildMeta(total, p),
	})
}

/* =========================================================
   🔍 Detail questionnaire + questions + options
========================================================= */
func (ctrl *QuestionnaireAdminController) GetQuestionnaireByID(c *fiber.Ctx) error {
	questionnaireID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	questionnaire, err := ctrl.loadWithQuestions(questionnaireID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Questionnaire tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil questionnaire")
	}

	return helper.Success(c, "Questionnaire berhasil diambil", dto.ToQuestionnaireResponse(questionnaire))
}

/* =========================================================
   ✏️ Update metadata/targeting
   Isi (questions) questionnaire yang sudah direferensikan assessment
   tidak boleh berubah; metadata juga dikunci supaya versi konsisten.
========================================================= */
func (ctrl *QuestionnaireAdminController) UpdateQuestionnaire(c *fiber.Ctx) error {
	questionnaireID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Catalog.EnsureEditable(c.Context(), questionnaireID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var questionnaire model.QuestionnaireModel
	if err := ctrl.DB.First(&questionnaire, "questionnaire_id = ?", questionnaireID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Questionnaire tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil questionnaire")
	}

	req.ApplyToModel(&questionnaire)
	if err := ctrl.DB.Save(&questionnaire).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui questionnaire")
	}

	return helper.Success(c, "Questionnaire berhasil diperbarui", dto.ToQuestionnaireResponse(&questionnaire))
}

/* =========================================================
   🔁 Toggle aktif/nonaktif
   Menonaktifkan selalu boleh, meskipun sudah direferensikan;
   assessment lama tetap membaca versi yang sama.
========================================================= */
func (ctrl *QuestionnaireAdminController) SetQuestionnaireActive(c *fiber.Ctx) error {
	questionnaireID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req struct {
		IsActive *bool `json:"questionnaire_is_active" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.QuestionnaireModel{}).
		Where("questionnaire_id = ?", questionnaireID).
		Update("questionnaire_is_active", *req.IsActive)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status questionnaire")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Questionnaire tidak ditemukan")
	}

	return helper.Success(c, "Status questionnaire berhasil diperbarui", fiber.Map{
		"questionnaire_id":        questionnaireID,
		"questionnaire_is_active": *req.IsActive,
	})
}

/* =========================================================
   ➕ Tambah question ke questionnaire (selama belum direferensikan)
========================================================= */
func (ctrl *QuestionnaireAdminController) AddQuestion(c *fiber.Ctx) error {
	questionnaireID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !model.IsValidQuestionType(req.QuestionType) {
		return helper.Error(c, fiber.StatusBadRequest, "question_type tidak dikenal: "+req.QuestionType)
	}
	if err := req.ValidateScores(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.Catalog.EnsureEditable(c.Context(), questionnaireID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var exists int64
	if err := ctrl.DB.Model(&model.QuestionnaireModel{}).
		Where("questionnaire_id = ?", questionnaireID).
		Count(&exists).Error; err != nil || exists == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Questionnaire tidak ditemukan")
	}

	question := req.ToModel(questionnaireID)
	if err := ctrl.DB.Create(question).Error; err != nil {
		log.Printf("[QUESTIONNAIRE] add question failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menambah question")
	}

	if _, err := ctrl.Catalog.RecalculateEstimatedTime(c.Context(), questionnaireID); err != nil {
		log.Printf("[QUESTIONNAIRE] recalc estimated time failed: %v", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question berhasil ditambahkan", dto.ToQuestionResponse(question))
}

/* =========================================================
   ⏱️ Hitung ulang estimasi waktu pengerjaan
========================================================= */
func (ctrl *QuestionnaireAdminController) CalculateEstimatedTime(c *fiber.Ctx) error {
	questionnaireID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	minutes, err := ctrl.Catalog.RecalculateEstimatedTime(c.Context(), questionnaireID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung estimasi waktu")
	}

	return helper.Success(c, "Estimasi waktu berhasil dihitung", fiber.Map{
		"questionnaire_id":                     questionnaireID,
		"questionnaire_estimated_time_minutes": minutes,
	})
}

/* =========================================================
   🗑️ Soft delete (selama belum direferensikan assessment)
========================================================= */
func (ctrl *QuestionnaireAdminController) DeleteQuestionnaire(c *fiber.Ctx) error {
	questionnaireID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.Catalog.EnsureEditable(c.Context(), questionnaireID); err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.Where("questionnaire_id = ?", questionnaireID).Delete(&model.QuestionnaireModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus questionnaire")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Questionnaire tidak ditemukan")
	}

	return helper.Success(c, "Questionnaire berhasil dihapus", fiber.Map{
		"questionnaire_id": questionnaireID,
	})
}

/* ============ internals ============ */

func (ctrl *QuestionnaireAdminController) loadWithQuestions(id uuid.UUID) (*model.QuestionnaireModel, error) {
	var questionnaire model.QuestionnaireModel
	err := ctrl.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_option_order ASC")
		}).
		First(&questionnaire, "questionnaire_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &questionnaire, nil
}
