// file: internals/features/assessments/questionnaires/dto/assessment_category_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"investku_backend/internals/features/assessments/questionnaires/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateAssessmentCategoryRequest struct {
	CategoryName        string   `json:"category_name" validate:"required,min=3,max=255"`
	CategoryDescription string   `json:"category_description" validate:"omitempty"`
	CategoryWeight      *float64 `json:"category_weight" validate:"omitempty,gt=0"`
}

type UpdateAssessmentCategoryRequest struct {
	CategoryName        *string  `json:"category_name" validate:"omitempty,min=3,max=255"`
	CategoryDescription *string  `json:"category_description" validate:"omitempty"`
	CategoryWeight      *float64 `json:"category_weight" validate:"omitempty,gt=0"`
	CategoryIsActive    *bool    `json:"category_is_active" validate:"omitempty"`
}

func (r *CreateAssessmentCategoryRequest) ToModel() *model.AssessmentCategoryModel {
	weight := 1.0
	if r.CategoryWeight != nil {
		weight = *r.CategoryWeight
	}
	return &model.AssessmentCategoryModel{
		CategoryName:        r.CategoryName,
		CategoryDescription: r.CategoryDescription,
		CategoryWeight:      weight,
		CategoryIsActive:    true,
	}
}

// ApplyToModel: partial update, hanya field non-nil yang ditimpa.
func (r *UpdateAssessmentCategoryRequest) ApplyToModel(m *model.AssessmentCategoryModel) {
	if r.CategoryName != nil {
		m.CategoryName = *r.CategoryName
	}
	if r.CategoryDescription != nil {
		m.CategoryDescription = *r.CategoryDescription
	}
	if r.CategoryWeight != nil {
		m.CategoryWeight = *r.CategoryWeight
	}
	if r.CategoryIsActive != nil {
		m.CategoryIsActive = *r.CategoryIsActive
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type AssessmentCategoryResponse struct {
	CategoryID          uuid.UUID `json:"category_id"`
	CategoryName        string    `json:"category_name"`
	CategoryDescription string    `json:"category_description"`
	CategoryWeight      float64   `json:"category_weight"`
	CategoryIsActive    bool      `json:"category_is_active"`
	CategoryCreatedAt   time.Time `json:"category_created_at"`
}

func ToAssessmentCategoryResponse(m *model.AssessmentCategoryModel) *AssessmentCategoryResponse {
	return &AssessmentCategoryResponse{
		CategoryID:          m.CategoryID,
		CategoryName:        m.CategoryName,
		CategoryDescription: m.CategoryDescription,
		CategoryWeight:      m.CategoryWeight,
		CategoryIsActive:    m.CategoryIsActive,
		CategoryCreatedAt:   m.CategoryCreatedAt,
	}
}

func ToAssessmentCategoryResponses(list []model.AssessmentCategoryModel) []AssessmentCategoryResponse {
	out := make([]AssessmentCategoryResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToAssessmentCategoryResponse(&list[i]))
	}
	return out
}
