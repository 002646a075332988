// file: internals/features/assessments/questionnaires/controller/assessment_category_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"investku_backend/internals/features/assessments/questionnaires/dto"
	"investku_backend/internals/features/assessments/questionnaires/model"
	helper "investku_backend/internals/helpers"
)

type AssessmentCategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssessmentCategoryController(db *gorm.DB) *AssessmentCategoryController {
	return &AssessmentCategoryController{DB: db, Validator: validator.New()}
}

/* =========================================================
   📄 List (semua role) — kategori aktif saja kecuali ?all=true
========================================================= */
func (ctrl *AssessmentCategoryController) GetCategories(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AssessmentCategoryModel{}).Order("category_name ASC")
	if c.Query("all") != "true" {
		q = q.Where("category_is_active = TRUE")
	}

	var categories []model.AssessmentCategoryModel
	if err := q.Find(&categories).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	return helper.Success(c, "Kategori berhasil diambil", dto.ToAssessmentCategoryResponses(categories))
}

/* =========================================================
   ➕ Create (admin)
========================================================= */
func (ctrl *AssessmentCategoryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateAssessmentCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	category := req.ToModel()
	if err := ctrl.DB.Create(category).Error; err != nil {
		log.Printf("[CATEGORY] create failed: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kategori berhasil dibuat", dto.ToAssessmentCategoryResponse(category))
}

/* =========================================================
   ✏️ Update (admin) — partial
========================================================= */
func (ctrl *AssessmentCategoryController) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateAssessmentCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var category model.AssessmentCategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	req.ApplyToModel(&category)
	if err := ctrl.DB.Save(&category).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
	}

	return helper.Success(c, "Kategori berhasil diperbarui", dto.ToAssessmentCategoryResponse(&category))
}
