// file: internals/features/assessments/assessments/model/assessment_category_score_model.go
package model

import (
	"github.com/google/uuid"
)

// AssessmentCategoryScoreModel merepresentasikan tabel `assessment_category_scores`.
// Derived state: di-replace penuh setiap submit/regrade, tidak pernah di-patch.
type AssessmentCategoryScoreModel struct {
	CategoryScoreID           uuid.UUID `json:"category_score_id" gorm:"column:category_score_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryScoreAssessmentID uuid.UUID `json:"category_score_assessment_id" gorm:"column:category_score_assessment_id;type:uuid;not null;uniqueIndex:uq_category_scores_assessment_category,priority:1"`
	CategoryScoreCategoryID   uuid.UUID `json:"category_score_category_id" gorm:"column:category_score_category_id;type:uuid;not null;uniqueIndex:uq_category_scores_assessment_category,priority:2"`

	CategoryScoreScore      float64 `json:"category_score_score" gorm:"column:category_score_score;type:numeric(10,4);not null;default:0"`
	CategoryScoreMaxScore   float64 `json:"category_score_max_score" gorm:"column:category_score_max_score;type:numeric(10,4);not null;default:0"`
	CategoryScorePercentage float64 `json:"category_score_percentage" gorm:"column:category_score_percentage;type:numeric(7,4);not null;default:0"`
}

func (AssessmentCategoryScoreModel) TableName() string {
	return "assessment_category_scores"
}
