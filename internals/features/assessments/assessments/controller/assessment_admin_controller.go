// file: internals/features/assessments/assessments/controller/assessment_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"investku_backend/internals/features/assessments/assessments/dto"
	"investku_backend/internals/features/assessments/assessments/model"
	"investku_backend/internals/features/assessments/assessments/service"
	helper "investku_backend/internals/helpers"
)

type AssessmentAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Workflow  *service.WorkflowService
}

func NewAssessmentAdminController(db *gorm.DB) *AssessmentAdminController {
	return &AssessmentAdminController{
		DB:        db,
		Validator: validator.New(),
		Workflow:  service.NewWorkflowService(db),
	}
}

/* =========================================================
   📄 List semua assessment + filter status/fy/enterprise + pagination
========================================================= */
func (ctrl *AssessmentAdminController) GetAssessments(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	allowedSort := map[string]string{
		"created_at": "assessment_created_at",
		"status":     "assessment_status",
		"percentage": "assessment_percentage_score",
	}
	orderClause, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	tx := ctrl.DB.Model(&model.AssessmentModel{})
	if status := c.Query("status"); status != "" {
		if !model.AssessmentStatus(status).IsValid() {
			return helper.Error(c, fiber.StatusBadRequest, "status tidak dikenal: "+status)
		}
		tx = tx.Where("assessment_status = ?", status)
	}
	if fy := c.QueryInt("fiscal_year"); fy > 0 {
		tx = tx.Where("assessment_fiscal_year = ?", fy)
	}
	if enterpriseID := c.Query("enterprise_id"); enterpriseID != "" {
		tx = tx.Where("assessment_enterprise_id = ?", enterpriseID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung assessment")
	}

	var assessments []model.AssessmentModel
	if err := tx.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&assessments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil assessment")
	}

	return helper.Success(c, "Assessment berhasil diambil", fiber.Map{
		"items": dto.ToAssessmentLiteResponses(assessments),
		"meta":  helper.BuildMeta(total, p),
	})
}

/* =========================================================
   🔍 Detail assessment (semua enterprise)
========================================================= */
func (ctrl *AssessmentAdminController) GetAssessmentByID(c *fiber.Ctx) error {
	assessmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	assessment, err := loadAssessmentDetail(ctrl.DB, assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assessment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil assessment")
	}

	return helper.Success(c, "Assessment berhasil diambil", dto.ToAssessmentDetailResponse(assessment))
}

/* =========================================================
   👤 Assign / reassign reviewer (completed saja)
========================================================= */
func (ctrl *AssessmentAdminController) AssignReviewer(c *fiber.Ctx) error {
	assessmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AssignReviewerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	assessment, err := ctrl.Workflow.AssignReviewer(c.Context(), assessmentID, req.ReviewerID, ctrl.actor(c))
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Reviewer berhasil di-assign", dto.ToAssessmentDetailResponse(assessment))
}

/* =========================================================
   ✔️ Mark reviewed (completed → reviewed; reviewer wajib terisi)
========================================================= */
func (ctrl *AssessmentAdminController) MarkReviewed(c *fiber.Ctx) error {
	assessmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	assessment, err := ctrl.Workflow.MarkReviewed(c.Context(), assessmentID, ctrl.actor(c))
	if err != nil {
		return helper.DomainError(c, err)
	}
	return helper.Success(c, "Assessment ditandai reviewed", dto.ToAssessmentLiteResponse(assessment))
}

/* =========================================================
   🔁 Regrade: hitung ulang skor & rekomendasi tanpa ubah status
========================================================= */
func (ctrl *AssessmentAdminController) RegradeAssessment(c *fiber.Ctx) error {
	assessmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if _, err := ctrl.Workflow.Regrade(c.Context(), assessmentID, ctrl.actor(c)); err != nil {
		return helper.DomainError(c, err)
	}

	assessment, err := loadAssessmentDetail(ctrl.DB, assessmentID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil hasil regrade")
	}
	return helper.Success(c, "Assessment berhasil di-regrade", dto.ToAssessmentDetailResponse(assessment))
}

/* ============ internals ============ */

func (ctrl *AssessmentAdminController) actor(c *fiber.Ctx) service.Actor {
	userID, _ := helper.GetUserIDFromToken(c)
	return service.Actor{UserID: userID, Role: helper.GetUserRole(c)}
}
