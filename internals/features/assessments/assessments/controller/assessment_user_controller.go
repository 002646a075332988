// file: internals/features/assessments/assessments/controller/assessment_user_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"investku_backend/internals/features/assessments/assessments/dto"
	"investku_backend/internals/features/assessments/assessments/model"
	"investku_backend/internals/features/assessments/assessments/service"
	isvc "investku_backend/internals/features/assessments/insights/service"
	emodel "investku_backend/internals/features/enterprises/model"
	helper "investku_backend/internals/helpers"
)

type AssessmentUserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Workflow  *service.WorkflowService
}

func NewAssessmentUserController(db *gorm.DB) *AssessmentUserController {
	return &AssessmentUserController{
		DB:        db,
		Validator: validator.New(),
		Workflow:  service.NewWorkflowService(db),
	}
}

/* =========================================================
   ➕ Create assessment (enterprise user)
========================================================= */
func (ctrl *AssessmentUserController) CreateAssessment(c *fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	enterprise, err := ctrl.currentEnterprise(c)
	if err != nil {
		return err
	}

	assessment, err := ctrl.Workflow.Create(c.Context(), service.CreateAssessmentInput{
		EnterpriseID:    enterprise.EnterpriseID,
		QuestionnaireID: req.AssessmentQuestionnaireID,
		FiscalYear:      req.AssessmentFiscalYear,
	})
	if err != nil {
		return helper.DomainError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Assessment berhasil dibuat", dto.ToAssessmentLiteResponse(assessment))
}

/* =========================================================
   📄 List assessment milik enterprise user login
========================================================= */
func (ctrl *AssessmentUserController) GetMyAssessments(c *fiber.Ctx) error {
	enterprise, err := ctrl.currentEnterprise(c)
	if err != nil {
		return err
	}

	tx := ctrl.DB.Model(&model.AssessmentModel{}).
		Where("assessment_enterprise_id = ?", enterprise.EnterpriseID)
	if status := c.Query("status"); status != "" {
		if !model.AssessmentStatus(status).IsValid() {
			return helper.Error(c, fiber.StatusBadRequest, "status tidak dikenal: "+status)
		}
		tx = tx.Where("assessment_status = ?", status)
	}
	if fy := c.QueryInt("fiscal_year"); fy > 0 {
		tx = tx.Where("assessment_fiscal_year = ?", fy)
	}

	var assessments []model.AssessmentModel
	if err := tx.Order("assessment_created_at DESC").Find(&assessments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil assessment")
	}

	return helper.Success(c, "Assessment berhasil diambil", dto.ToAssessmentLiteResponses(assessments))
}

/* =========================================================
   🔍 Detail assessment milik sendiri (responses + skor + rekomendasi)
========================================================= */
func (ctrl *AssessmentUserController) GetMyAssessmentByID(c *fiber.Ctx) error {
	assessment, err := ctrl.loadOwned(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "Assessment berhasil diambil", dto.ToAssessmentDetailResponse(assessment))
}

/* =========================================================
   ▶️ Start (draft → in_progress)
========================================================= */
func (ctrl *AssessmentUserController) StartAssessment(c *fiber.Ctx) error {
	assessment, err := ctrl.loadOwned(c)
	if err != nil {
		return err
	}

	updated, err := ctrl.Workflow.Start(c.Context(), assessment.AssessmentID, ctrl.actor(c))
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Assessment dimulai", dto.ToAssessmentLiteResponse(updated))
}

/* =========================================================
   💾 Save (upsert) satu jawaban
========================================================= */
func (ctrl *AssessmentUserController) SaveResponse(c *fiber.Ctx) error {
	assessment, err := ctrl.loadOwned(c)
	if err != nil {
		return err
	}

	var req dto.SaveResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctrl.Workflow.UpsertResponse(c.Context(), req.ToInput(assessment.AssessmentID), ctrl.actor(c))
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Jawaban berhasil disimpan", dto.ToAssessmentResponseItem(resp))
}

/* =========================================================
   ✅ Submit (in_progress → completed, trigger scoring)
========================================================= */
func (ctrl *AssessmentUserController) SubmitAssessment(c *fiber.Ctx) error {
	assessment, err := ctrl.loadOwned(c)
	if err != nil {
		return err
	}

	submitted, err := ctrl.Workflow.Submit(c.Context(), assessment.AssessmentID, ctrl.actor(c))
	if err != nil {
		return helper.DomainError(c, err)
	}

	// Reload relasi derived untuk response lengkap
	full, err := loadAssessmentDetail(ctrl.DB, submitted.AssessmentID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil hasil assessment")
	}
	return helper.Success(c, "Assessment berhasil disubmit", dto.ToAssessmentDetailResponse(full))
}

/* =========================================================
   🤖 Baca insight AI milik sendiri (read-only)
========================================================= */
func (ctrl *AssessmentUserController) GetMyInsights(c *fiber.Ctx) error {
	assessment, err := ctrl.loadOwned(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "Insight berhasil diambil", isvc.InsightFromAssessment(assessment))
}

/* ============ internals ============ */

func (ctrl *AssessmentUserController) actor(c *fiber.Ctx) service.Actor {
	userID, _ := helper.GetUserIDFromToken(c)
	return service.Actor{UserID: userID, Role: helper.GetUserRole(c)}
}

func (ctrl *AssessmentUserController) currentEnterprise(c *fiber.Ctx) (*emodel.EnterpriseModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}

	var enterprise emodel.EnterpriseModel
	if err := ctrl.DB.First(&enterprise, "enterprise_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Enterprise untuk user ini tidak ditemukan")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil enterprise")
	}
	return &enterprise, nil
}

// loadOwned ambil assessment :id dan pastikan milik enterprise user login.
func (ctrl *AssessmentUserController) loadOwned(c *fiber.Ctx) (*model.AssessmentModel, error) {
	assessmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}

	enterprise, err := ctrl.currentEnterprise(c)
	if err != nil {
		return nil, err
	}

	assessment, loadErr := loadAssessmentDetail(ctrl.DB, assessmentID)
	if loadErr != nil {
		if errors.Is(loadErr, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Assessment tidak ditemukan")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil assessment")
	}
	if assessment.AssessmentEnterpriseID != enterprise.EnterpriseID {
		// 404, bukan 403: jangan bocorkan keberadaan assessment orang lain
		return nil, helper.Error(c, fiber.StatusNotFound, "Assessment tidak ditemukan")
	}
	return assessment, nil
}

func loadAssessmentDetail(db *gorm.DB, id uuid.UUID) (*model.AssessmentModel, error) {
	var assessment model.AssessmentModel
	err := db.
		Preload("Responses").
		Preload("CategoryScores").
		Preload("Recommendations", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("recommendation_sort_order ASC")
		}).
		First(&assessment, "assessment_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}
