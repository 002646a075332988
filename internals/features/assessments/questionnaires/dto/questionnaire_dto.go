// file: internals/features/assessments/questionnaires/dto/questionnaire_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"investku_backend/internals/features/assessments/questionnaires/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateQuestionnaireRequest struct {
	QuestionnaireTitle       string `json:"questionnaire_title" validate:"required,min=3,max=255"`
	QuestionnaireDescription string `json:"questionnaire_description" validate:"omitempty"`
	QuestionnaireVersion     string `json:"questionnaire_version" validate:"omitempty,max=10"`
	QuestionnaireLanguage    string `json:"questionnaire_language" validate:"omitempty,max=5"`

	QuestionnaireTargetSectors   []string `json:"questionnaire_target_sectors" validate:"omitempty,dive,min=1"`
	QuestionnaireTargetSizes     []string `json:"questionnaire_target_sizes" validate:"omitempty,dive,min=1"`
	QuestionnaireTargetDistricts []string `json:"questionnaire_target_districts" validate:"omitempty,dive,min=1"`
	QuestionnaireMinEmployees    *int     `json:"questionnaire_min_employees" validate:"omitempty,gte=0"`
	QuestionnaireMaxEmployees    *int     `json:"questionnaire_max_employees" validate:"omitempty,gte=0"`

	Questions []CreateQuestionRequest `json:"questions" validate:"omitempty,dive"`
}

type UpdateQuestionnaireRequest struct {
	QuestionnaireTitle       *string `json:"questionnaire_title" validate:"omitempty,min=3,max=255"`
	QuestionnaireDescription *string `json:"questionnaire_description" validate:"omitempty"`
	QuestionnaireLanguage    *string `json:"questionnaire_language" validate:"omitempty,max=5"`

	QuestionnaireTargetSectors   []string `json:"questionnaire_target_sectors" validate:"omitempty,dive,min=1"`
	QuestionnaireTargetSizes     []string `json:"questionnaire_target_sizes" validate:"omitempty,dive,min=1"`
	QuestionnaireTargetDistricts []string `json:"questionnaire_target_districts" validate:"omitempty,dive,min=1"`
	QuestionnaireMinEmployees    *int     `json:"questionnaire_min_employees" validate:"omitempty,gte=0"`
	QuestionnaireMaxEmployees    *int     `json:"questionnaire_max_employees" validate:"omitempty,gte=0"`
}

func (r *CreateQuestionnaireRequest) ToModel(createdBy *uuid.UUID) *model.QuestionnaireModel {
	version := r.QuestionnaireVersion
	if version == "" {
		version = "1.0"
	}
	language := r.QuestionnaireLanguage
	if language == "" {
		language = "en"
	}

	q := &model.QuestionnaireModel{
		QuestionnaireTitle:           r.QuestionnaireTitle,
		QuestionnaireDescription:     r.QuestionnaireDescription,
		QuestionnaireVersion:         version,
		QuestionnaireLanguage:        language,
		QuestionnaireIsActive:        true,
		QuestionnaireTargetSectors:   r.QuestionnaireTargetSectors,
		QuestionnaireTargetSizes:     r.QuestionnaireTargetSizes,
		QuestionnaireTargetDistricts: r.QuestionnaireTargetDistricts,
		QuestionnaireMinEmployees:    r.QuestionnaireMinEmployees,
		QuestionnaireMaxEmployees:    r.QuestionnaireMaxEmployees,
		QuestionnaireCreatedBy:       createdBy,
	}

	// Estimasi waktu langsung dari jumlah question bawaan (3 menit/pertanyaan)
	q.QuestionnaireEstimatedTimeMinutes = len(r.Questions) * 3

	for i := range r.Questions {
		qm := r.Questions[i].ToModel(uuid.Nil) // FK diisi GORM lewat relasi
		q.Questions = append(q.Questions, *qm)
	}
	return q
}

func (r *UpdateQuestionnaireRequest) ApplyToModel(m *model.QuestionnaireModel) {
	if r.QuestionnaireTitle != nil {
		m.QuestionnaireTitle = *r.QuestionnaireTitle
	}
	if r.QuestionnaireDescription != nil {
		m.QuestionnaireDescription = *r.QuestionnaireDescription
	}
	if r.QuestionnaireLanguage != nil {
		m.QuestionnaireLanguage = *r.QuestionnaireLanguage
	}
	if r.QuestionnaireTargetSectors != nil {
		m.QuestionnaireTargetSectors = r.QuestionnaireTargetSectors
	}
	if r.QuestionnaireTargetSizes != nil {
		m.QuestionnaireTargetSizes = r.QuestionnaireTargetSizes
	}
	if r.QuestionnaireTargetDistricts != nil {
		m.QuestionnaireTargetDistricts = r.QuestionnaireTargetDistricts
	}
	if r.QuestionnaireMinEmployees != nil {
		m.QuestionnaireMinEmployees = r.QuestionnaireMinEmployees
	}
	if r.QuestionnaireMaxEmployees != nil {
		m.QuestionnaireMaxEmployees = r.QuestionnaireMaxEmployees
	}
}

/* =========================================================
   RESPONSE DTO
========================================================= */

// QuestionnaireLiteResponse untuk listing (tanpa questions).
type QuestionnaireLiteResponse struct {
	QuestionnaireID          uuid.UUID `json:"questionnaire_id"`
	QuestionnaireTitle       string    `json:"questionnaire_title"`
	QuestionnaireDescription string    `json:"questionnaire_description"`
	QuestionnaireVersion     string    `json:"questionnaire_version"`
	QuestionnaireLanguage    string    `json:"questionnaire_language"`
	QuestionnaireIsActive    bool      `json:"questionnaire_is_active"`

	QuestionnaireEstimatedTimeMinutes int       `json:"questionnaire_estimated_time_minutes"`
	QuestionnaireCreatedAt            time.Time `json:"questionnaire_created_at"`
}

type QuestionnaireResponse struct {
	QuestionnaireLiteResponse

	QuestionnaireTargetSectors   []string `json:"questionnaire_target_sectors"`
	QuestionnaireTargetSizes     []string `json:"questionnaire_target_sizes"`
	QuestionnaireTargetDistricts []string `json:"questionnaire_target_districts"`
	QuestionnaireMinEmployees    *int     `json:"questionnaire_min_employees"`
	QuestionnaireMaxEmployees    *int     `json:"questionnaire_max_employees"`

	Questions []QuestionResponse `json:"questions"`
}

func ToQuestionnaireLiteResponse(m *model.QuestionnaireModel) *QuestionnaireLiteResponse {
	return &QuestionnaireLiteResponse{
		QuestionnaireID:                   m.QuestionnaireID,
		QuestionnaireTitle:                m.QuestionnaireTitle,
		QuestionnaireDescription:          m.QuestionnaireDescription,
		QuestionnaireVersion:              m.QuestionnaireVersion,
		QuestionnaireLanguage:             m.QuestionnaireLanguage,
		QuestionnaireIsActive:             m.QuestionnaireIsActive,
		QuestionnaireEstimatedTimeMinutes: m.QuestionnaireEstimatedTimeMinutes,
		QuestionnaireCreatedAt:            m.QuestionnaireCreatedAt,
	}
}

func ToQuestionnaireLiteResponses(list []model.QuestionnaireModel) []QuestionnaireLiteResponse {
	out := make([]QuestionnaireLiteResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToQuestionnaireLiteResponse(&list[i]))
	}
	return out
}

func ToQuestionnaireResponse(m *model.QuestionnaireModel) *QuestionnaireResponse {
	return &QuestionnaireResponse{
		QuestionnaireLiteResponse:    *ToQuestionnaireLiteResponse(m),
		QuestionnaireTargetSectors:   m.QuestionnaireTargetSectors,
		QuestionnaireTargetSizes:     m.QuestionnaireTargetSizes,
		QuestionnaireTargetDistricts: m.QuestionnaireTargetDistricts,
		QuestionnaireMinEmployees:    m.QuestionnaireMinEmployees,
		QuestionnaireMaxEmployees:    m.QuestionnaireMaxEmployees,
		Questions:                    ToQuestionResponses(m.Questions),
	}
}
