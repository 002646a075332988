// file: internals/features/assessments/assessments/model/assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   Status assessment (closed enum, bukan string bebas)
========================================================= */

type AssessmentStatus string

const (
	StatusDraft      AssessmentStatus = "draft"
	StatusInProgress AssessmentStatus = "in_progress"
	StatusCompleted  AssessmentStatus = "completed"
	StatusReviewed   AssessmentStatus = "reviewed"
)

func (s AssessmentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusCompleted, StatusReviewed:
		return true
	}
	return false
}

func (s AssessmentStatus) String() string { return string(s) }

/* =========================================================
   Model
========================================================= */

// AssessmentModel merepresentasikan tabel `assessments`:
// satu enterprise mengerjakan satu questionnaire untuk satu fiscal year.
// Skor & insight hanya boleh dimutasi lewat workflow service, bukan langsung dari UI.
type AssessmentModel struct {
	AssessmentID uuid.UUID `json:"assessment_id" gorm:"column:assessment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	AssessmentEnterpriseID    uuid.UUID `json:"assessment_enterprise_id" gorm:"column:assessment_enterprise_id;type:uuid;not null;uniqueIndex:uq_assessments_enterprise_q_fy,priority:1;index:idx_assessments_enterprise"`
	AssessmentQuestionnaireID uuid.UUID `json:"assessment_questionnaire_id" gorm:"column:assessment_questionnaire_id;type:uuid;not null;uniqueIndex:uq_assessments_enterprise_q_fy,priority:2"`
	AssessmentFiscalYear      int       `json:"assessment_fiscal_year" gorm:"column:assessment_fiscal_year;not null;uniqueIndex:uq_assessments_enterprise_q_fy,priority:3"`

	AssessmentStatus AssessmentStatus `json:"assessment_status" gorm:"column:assessment_status;type:varchar(20);not null;default:'draft'"`

	// =========================
	// Scoring (derived, full precision)
	// =========================
	AssessmentTotalScore       float64 `json:"assessment_total_score" gorm:"column:assessment_total_score;type:numeric(10,4);not null;default:0"`
	AssessmentMaxPossibleScore float64 `json:"assessment_max_possible_score" gorm:"column:assessment_max_possible_score;type:numeric(10,4);not null;default:0"`
	AssessmentPercentageScore  float64 `json:"assessment_percentage_score" gorm:"column:assessment_percentage_score;type:numeric(7,4);not null;default:0"`

	// =========================
	// Review
	// =========================
	AssessmentReviewedBy *uuid.UUID `json:"assessment_reviewed_by" gorm:"column:assessment_reviewed_by;type:uuid"`

	// =========================
	// Insight AI (1:1 dengan assessment, overwrite penuh)
	// =========================
	AssessmentAIStrengths    datatypes.JSON `json:"assessment_ai_strengths" gorm:"column:assessment_ai_strengths;type:jsonb"`
	AssessmentAIWeaknesses   datatypes.JSON `json:"assessment_ai_weaknesses" gorm:"column:assessment_ai_weaknesses;type:jsonb"`
	AssessmentAIGeneratedAt  *time.Time     `json:"assessment_ai_generated_at" gorm:"column:assessment_ai_generated_at"`

	// Optimistic lock: setiap write workflow menaikkan versi ini.
	AssessmentLockVersion int `json:"assessment_lock_version" gorm:"column:assessment_lock_version;not null;default:0"`

	// =========================
	// Timestamps
	// =========================
	AssessmentStartedAt   *time.Time `json:"assessment_started_at" gorm:"column:assessment_started_at"`
	AssessmentCompletedAt *time.Time `json:"assessment_completed_at" gorm:"column:assessment_completed_at"`
	AssessmentReviewedAt  *time.Time `json:"assessment_reviewed_at" gorm:"column:assessment_reviewed_at"`

	AssessmentCreatedAt time.Time      `json:"assessment_created_at" gorm:"column:assessment_created_at;not null;autoCreateTime;index:idx_assessments_created_at,sort:desc"`
	AssessmentUpdatedAt time.Time      `json:"assessment_updated_at" gorm:"column:assessment_updated_at;not null;autoUpdateTime"`
	AssessmentDeletedAt gorm.DeletedAt `json:"assessment_deleted_at" gorm:"column:assessment_deleted_at;index"`

	// Relations
	Responses       []AssessmentResponseModel       `json:"responses,omitempty" gorm:"foreignKey:ResponseAssessmentID;references:AssessmentID"`
	CategoryScores  []AssessmentCategoryScoreModel  `json:"category_scores,omitempty" gorm:"foreignKey:CategoryScoreAssessmentID;references:AssessmentID"`
	Recommendations []AssessmentRecommendationModel `json:"recommendations,omitempty" gorm:"foreignKey:RecommendationAssessmentID;references:AssessmentID"`
}

func (AssessmentModel) TableName() string {
	return "assessments"
}
