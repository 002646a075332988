// file: internals/features/assessments/insights/controller/insight_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adto "investku_backend/internals/features/assessments/assessments/dto"
	asvc "investku_backend/internals/features/assessments/assessments/service"
	"investku_backend/internals/features/assessments/insights/service"
	helper "investku_backend/internals/helpers"
)

type InsightController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Insights  *service.InsightService
}

func NewInsightController(db *gorm.DB, generator service.InsightGenerator) *InsightController {
	return &InsightController{
		DB:        db,
		Validator: validator.New(),
		Insights:  service.NewInsightService(db, generator),
	}
}

/* =========================================================
   🤖 Generate insight AI (admin, assessment completed/reviewed)
========================================================= */
func (ctrl *InsightController) GenerateInsights(c *fiber.Ctx) error {
	assessmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	insight, err := ctrl.Insights.GenerateInsights(c.Context(), assessmentID, ctrl.actor(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assessment tidak ditemukan")
		}
		return helper.DomainError(c, err)
	}

	return helper.Success(c, "Insight berhasil digenerate", insight)
}

/* =========================================================
   ✏️ Edit insight manual (admin, overwrite penuh, idempotent)
========================================================= */
func (ctrl *InsightController) UpdateInsights(c *fiber.Ctx) error {
	assessmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req adto.UpdateInsightsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	insight, err := ctrl.Insights.UpdateInsights(c.Context(), assessmentID, req.AIStrengths, req.AIWeaknesses, ctrl.actor(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assessment tidak ditemukan")
		}
		return helper.DomainError(c, err)
	}

	return helper.Success(c, "Insight berhasil diperbarui", insight)
}

/* =========================================================
   🔍 Baca insight tersimpan
========================================================= */
func (ctrl *InsightController) GetInsights(c *fiber.Ctx) error {
	assessmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	insight, err := ctrl.Insights.GetInsight(c.Context(), assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Assessment tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil insight")
	}

	return helper.Success(c, "Insight berhasil diambil", insight)
}

/* ============ internals ============ */

func (ctrl *InsightController) actor(c *fiber.Ctx) asvc.Actor {
	userID, _ := helper.GetUserIDFromToken(c)
	return asvc.Actor{UserID: userID, Role: helper.GetUserRole(c)}
}
