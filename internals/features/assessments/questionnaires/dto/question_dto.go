// file: internals/features/assessments/questionnaires/dto/question_dto.go
package dto

import (
	"fmt"

	"github.com/google/uuid"

	"investku_backend/internals/features/assessments/questionnaires/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type QuestionOptionRequest struct {
	QuestionOptionText  string  `json:"question_option_text" validate:"required,max=255"`
	QuestionOptionScore float64 `json:"question_option_score" validate:"gte=0"`
	QuestionOptionOrder int     `json:"question_option_order" validate:"gte=0"`
}

type CreateQuestionRequest struct {
	QuestionCategoryID uuid.UUID `json:"question_category_id" validate:"required"`

	QuestionText       string  `json:"question_text" validate:"required"`
	QuestionType       string  `json:"question_type" validate:"required,oneof=single_choice multiple_choice text number scale"`
	QuestionIsRequired *bool   `json:"question_is_required" validate:"omitempty"`
	QuestionOrder      int     `json:"question_order" validate:"gte=0"`
	QuestionMaxScore   float64 `json:"question_max_score" validate:"required,gt=0"`

	Options []QuestionOptionRequest `json:"options" validate:"omitempty,dive"`
}

// ValidateScores menolak option yang skornya melebihi plafon question.
// Skor tercapai tidak boleh bisa melewati question_max_score.
func (r CreateQuestionRequest) ValidateScores() error {
	for _, opt := range r.Options {
		if opt.QuestionOptionScore > r.QuestionMaxScore {
			return fmt.Errorf("question_option_score %.2f melebihi question_max_score %.2f",
				opt.QuestionOptionScore, r.QuestionMaxScore)
		}
	}
	return nil
}

func (r *CreateQuestionRequest) ToModel(questionnaireID uuid.UUID) *model.QuestionModel {
	required := true
	if r.QuestionIsRequired != nil {
		required = *r.QuestionIsRequired
	}
	q := &model.QuestionModel{
		QuestionQuestionnaireID: questionnaireID,
		QuestionCategoryID:      r.QuestionCategoryID,
		QuestionText:            r.QuestionText,
		QuestionType:            r.QuestionType,
		QuestionIsRequired:      required,
		QuestionOrder:           r.QuestionOrder,
		QuestionMaxScore:        r.QuestionMaxScore,
	}
	for _, opt := range r.Options {
		q.Options = append(q.Options, model.QuestionOptionModel{
			QuestionOptionText:  opt.QuestionOptionText,
			QuestionOptionScore: opt.QuestionOptionScore,
			QuestionOptionOrder: opt.QuestionOptionOrder,
		})
	}
	return q
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type QuestionOptionResponse struct {
	QuestionOptionID    uuid.UUID `json:"question_option_id"`
	QuestionOptionText  string    `json:"question_option_text"`
	QuestionOptionScore float64   `json:"question_option_score"`
	QuestionOptionOrder int       `json:"question_option_order"`
}

type QuestionResponse struct {
	QuestionID              uuid.UUID `json:"question_id"`
	QuestionQuestionnaireID uuid.UUID `json:"question_questionnaire_id"`
	QuestionCategoryID      uuid.UUID `json:"question_category_id"`

	QuestionText       string  `json:"question_text"`
	QuestionType       string  `json:"question_type"`
	QuestionIsRequired bool    `json:"question_is_required"`
	QuestionOrder      int     `json:"question_order"`
	QuestionMaxScore   float64 `json:"question_max_score"`

	Options []QuestionOptionResponse `json:"options"`
}

func ToQuestionResponse(m *model.QuestionModel) *QuestionResponse {
	resp := &QuestionResponse{
		QuestionID:              m.QuestionID,
		QuestionQuestionnaireID: m.QuestionQuestionnaireID,
		QuestionCategoryID:      m.QuestionCategoryID,
		QuestionText:            m.QuestionText,
		QuestionType:            m.QuestionType,
		QuestionIsRequired:      m.QuestionIsRequired,
		QuestionOrder:           m.QuestionOrder,
		QuestionMaxScore:        m.QuestionMaxScore,
		Options:                 []QuestionOptionResponse{},
	}
	for i := range m.Options {
		o := &m.Options[i]
		resp.Options = append(resp.Options, QuestionOptionResponse{
			QuestionOptionID:    o.QuestionOptionID,
			QuestionOptionText:  o.QuestionOptionText,
			QuestionOptionScore: o.QuestionOptionScore,
			QuestionOptionOrder: o.QuestionOptionOrder,
		})
	}
	return resp
}

func ToQuestionResponses(list []model.QuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToQuestionResponse(&list[i]))
	}
	return out
}
