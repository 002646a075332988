// file: internals/features/assessments/assessments/dto/assessment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"investku_backend/internals/features/assessments/assessments/model"
	"investku_backend/internals/features/assessments/assessments/service"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateAssessmentRequest struct {
	AssessmentQuestionnaireID uuid.UUID `json:"assessment_questionnaire_id" validate:"required"`
	// Optional override; default dihitung dari tanggal sekarang (Juli–Juni)
	AssessmentFiscalYear *int `json:"assessment_fiscal_year" validate:"omitempty,gte=2000,lte=2100"`
}

type SaveResponseRequest struct {
	ResponseQuestionID      uuid.UUID   `json:"response_question_id" validate:"required"`
	ResponseSelectedOptions []uuid.UUID `json:"response_selected_options" validate:"omitempty"`
	ResponseText            *string     `json:"response_text" validate:"omitempty"`
	ResponseNumber          *float64    `json:"response_number" validate:"omitempty"`
	// Nilai rubric manual (hanya dihormati untuk admin)
	ResponseRubricScore *float64 `json:"response_rubric_score" validate:"omitempty,gte=0"`
}

func (r *SaveResponseRequest) ToInput(assessmentID uuid.UUID) service.SaveResponseInput {
	return service.SaveResponseInput{
		AssessmentID:    assessmentID,
		QuestionID:      r.ResponseQuestionID,
		SelectedOptions: r.ResponseSelectedOptions,
		TextResponse:    r.ResponseText,
		NumberResponse:  r.ResponseNumber,
		RubricScore:     r.ResponseRubricScore,
	}
}

type AssignReviewerRequest struct {
	ReviewerID uuid.UUID `json:"reviewer_id" validate:"required"`
}

type UpdateInsightsRequest struct {
	AIStrengths  []string `json:"ai_strengths" validate:"omitempty,dive,min=1"`
	AIWeaknesses []string `json:"ai_weaknesses" validate:"omitempty,dive,min=1"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type AssessmentResponseItem struct {
	ResponseID         uuid.UUID `json:"response_id"`
	ResponseQuestionID uuid.UUID `json:"response_question_id"`

	ResponseSelectedOptions []string `json:"response_selected_options"`
	ResponseText            *string  `json:"response_text"`
	ResponseNumber          *float64 `json:"response_number"`
	ResponseScore           float64  `json:"response_score"`
}

type CategoryScoreResponse struct {
	CategoryScoreCategoryID uuid.UUID `json:"category_score_category_id"`
	CategoryScoreScore      float64   `json:"category_score_score"`
	CategoryScoreMaxScore   float64   `json:"category_score_max_score"`
	CategoryScorePercentage float64   `json:"category_score_percentage"`
}

type RecommendationResponse struct {
	RecommendationID         uuid.UUID `json:"recommendation_id"`
	RecommendationCategoryID uuid.UUID `json:"recommendation_category_id"`

	RecommendationTitle            string `json:"recommendation_title"`
	RecommendationDescription      string `json:"recommendation_description"`
	RecommendationPriority         string `json:"recommendation_priority"`
	RecommendationSuggestedActions string `json:"recommendation_suggested_actions"`
	RecommendationSortOrder        int    `json:"recommendation_sort_order"`
}

// AssessmentLiteResponse untuk listing.
type AssessmentLiteResponse struct {
	AssessmentID              uuid.UUID `json:"assessment_id"`
	AssessmentEnterpriseID    uuid.UUID `json:"assessment_enterprise_id"`
	AssessmentQuestionnaireID uuid.UUID `json:"assessment_questionnaire_id"`
	AssessmentFiscalYear      int       `json:"assessment_fiscal_year"`
	AssessmentStatus          string    `json:"assessment_status"`

	AssessmentTotalScore       float64 `json:"assessment_total_score"`
	AssessmentMaxPossibleScore float64 `json:"assessment_max_possible_score"`
	// Persentase presisi penuh untuk agregasi FE
	AssessmentPercentageScore float64 `json:"assessment_percentage_score"`
	// Persentase display (1 desimal); storage tetap full precision
	AssessmentPercentageDisplay float64 `json:"assessment_percentage_display"`

	AssessmentStartedAt   *time.Time `json:"assessment_started_at"`
	AssessmentCompletedAt *time.Time `json:"assessment_completed_at"`
	AssessmentReviewedAt  *time.Time `json:"assessment_reviewed_at"`
	AssessmentCreatedAt   time.Time  `json:"assessment_created_at"`
}

type AssessmentDetailResponse struct {
	AssessmentLiteResponse

	AssessmentReviewedBy    *uuid.UUID `json:"assessment_reviewed_by"`
	AssessmentAIGeneratedAt *time.Time `json:"assessment_ai_generated_at"`
	AssessmentLockVersion   int        `json:"assessment_lock_version"`

	Responses       []AssessmentResponseItem `json:"responses"`
	CategoryScores  []CategoryScoreResponse  `json:"category_scores"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

/* ============ converters ============ */

func ToAssessmentLiteResponse(m *model.AssessmentModel) *AssessmentLiteResponse {
	return &AssessmentLiteResponse{
		AssessmentID:                m.AssessmentID,
		AssessmentEnterpriseID:      m.AssessmentEnterpriseID,
		AssessmentQuestionnaireID:   m.AssessmentQuestionnaireID,
		AssessmentFiscalYear:        m.AssessmentFiscalYear,
		AssessmentStatus:            m.AssessmentStatus.String(),
		AssessmentTotalScore:        m.AssessmentTotalScore,
		AssessmentMaxPossibleScore:  m.AssessmentMaxPossibleScore,
		AssessmentPercentageScore:   m.AssessmentPercentageScore,
		AssessmentPercentageDisplay: service.RoundPercentage(m.AssessmentPercentageScore),
		AssessmentStartedAt:         m.AssessmentStartedAt,
		AssessmentCompletedAt:       m.AssessmentCompletedAt,
		AssessmentReviewedAt:        m.AssessmentReviewedAt,
		AssessmentCreatedAt:         m.AssessmentCreatedAt,
	}
}

func ToAssessmentLiteResponses(list []model.AssessmentModel) []AssessmentLiteResponse {
	out := make([]AssessmentLiteResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToAssessmentLiteResponse(&list[i]))
	}
	return out
}

func ToAssessmentDetailResponse(m *model.AssessmentModel) *AssessmentDetailResponse {
	resp := &AssessmentDetailResponse{
		AssessmentLiteResponse:  *ToAssessmentLiteResponse(m),
		AssessmentReviewedBy:    m.AssessmentReviewedBy,
		AssessmentAIGeneratedAt: m.AssessmentAIGeneratedAt,
		AssessmentLockVersion:   m.AssessmentLockVersion,
		Responses:               []AssessmentResponseItem{},
		CategoryScores:          []CategoryScoreResponse{},
		Recommendations:         []RecommendationResponse{},
	}

	for i := range m.Responses {
		resp.Responses = append(resp.Responses, *ToAssessmentResponseItem(&m.Responses[i]))
	}
	for i := range m.CategoryScores {
		cs := &m.CategoryScores[i]
		resp.CategoryScores = append(resp.CategoryScores, CategoryScoreResponse{
			CategoryScoreCategoryID: cs.CategoryScoreCategoryID,
			CategoryScoreScore:      cs.CategoryScoreScore,
			CategoryScoreMaxScore:   cs.CategoryScoreMaxScore,
			CategoryScorePercentage: cs.CategoryScorePercentage,
		})
	}
	for i := range m.Recommendations {
		r := &m.Recommendations[i]
		resp.Recommendations = append(resp.Recommendations, RecommendationResponse{
			RecommendationID:               r.RecommendationID,
			RecommendationCategoryID:       r.RecommendationCategoryID,
			RecommendationTitle:            r.RecommendationTitle,
			RecommendationDescription:      r.RecommendationDescription,
			RecommendationPriority:         string(r.RecommendationPriority),
			RecommendationSuggestedActions: r.RecommendationSuggestedActions,
			RecommendationSortOrder:        r.RecommendationSortOrder,
		})
	}
	return resp
}

func ToAssessmentResponseItem(r *model.AssessmentResponseModel) *AssessmentResponseItem {
	selected := []string{}
	if r.ResponseSelectedOptions != nil {
		selected = r.ResponseSelectedOptions
	}
	return &AssessmentResponseItem{
		ResponseID:              r.ResponseID,
		ResponseQuestionID:      r.ResponseQuestionID,
		ResponseSelectedOptions: selected,
		ResponseText:            r.ResponseText,
		ResponseNumber:          r.ResponseNumber,
		ResponseScore:           r.ResponseScore,
	}
}
