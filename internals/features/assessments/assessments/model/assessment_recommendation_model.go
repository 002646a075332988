// file: internals/features/assessments/assessments/model/assessment_recommendation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationPriority string

const (
	PriorityHigh   RecommendationPriority = "high"
	PriorityMedium RecommendationPriority = "medium"
	PriorityLow    RecommendationPriority = "low"
)

// Rank dipakai untuk sort presentasi: high < medium < low.
func (p RecommendationPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// AssessmentRecommendationModel merepresentasikan tabel `assessment_recommendations`.
// Derived state: di-replace penuh setiap submit/regrade supaya tidak ada entry basi.
type AssessmentRecommendationModel struct {
	RecommendationID           uuid.UUID `json:"recommendation_id" gorm:"column:recommendation_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RecommendationAssessmentID uuid.UUID `json:"recommendation_assessment_id" gorm:"column:recommendation_assessment_id;type:uuid;not null;index:idx_recommendations_assessment"`
	RecommendationCategoryID   uuid.UUID `json:"recommendation_category_id" gorm:"column:recommendation_category_id;type:uuid;not null"`

	RecommendationTitle            string                 `json:"recommendation_title" gorm:"column:recommendation_title;type:varchar(255);not null"`
	RecommendationDescription      string                 `json:"recommendation_description" gorm:"column:recommendation_description;type:text;not null"`
	RecommendationPriority         RecommendationPriority `json:"recommendation_priority" gorm:"column:recommendation_priority;type:varchar(10);not null"`
	RecommendationSuggestedActions string                 `json:"recommendation_suggested_actions" gorm:"column:recommendation_suggested_actions;type:text;not null"`

	// Posisi hasil sort (stabil) supaya urutan presentasi tersimpan
	RecommendationSortOrder int       `json:"recommendation_sort_order" gorm:"column:recommendation_sort_order;not null;default:0"`
	RecommendationCreatedAt time.Time `json:"recommendation_created_at" gorm:"column:recommendation_created_at;not null;autoCreateTime"`
}

func (AssessmentRecommendationModel) TableName() string {
	return "assessment_recommendations"
}
