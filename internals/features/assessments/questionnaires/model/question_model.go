// file: internals/features/assessments/questionnaires/model/question_model.go
package model

import (
	"github.com/google/uuid"
)

// Tipe pertanyaan yang dikenal scoring engine.
const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeText           = "text"
	QuestionTypeNumber         = "number"
	QuestionTypeScale          = "scale" // 1-10
)

func IsValidQuestionType(t string) bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultipleChoice,
		QuestionTypeText, QuestionTypeNumber, QuestionTypeScale:
		return true
	}
	return false
}

// QuestionModel merepresentasikan tabel `questions`.
// Satu question milik tepat satu questionnaire dan satu kategori scoring.
type QuestionModel struct {
	QuestionID              uuid.UUID `json:"question_id" gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionQuestionnaireID uuid.UUID `json:"question_questionnaire_id" gorm:"column:question_questionnaire_id;type:uuid;not null;index:idx_questions_questionnaire;uniqueIndex:uq_questions_questionnaire_order,priority:1"`
	QuestionCategoryID      uuid.UUID `json:"question_category_id" gorm:"column:question_category_id;type:uuid;not null;index:idx_questions_category"`

	QuestionText       string `json:"question_text" gorm:"column:question_text;type:text;not null"`
	QuestionType       string `json:"question_type" gorm:"column:question_type;type:varchar(20);not null"`
	QuestionIsRequired bool   `json:"question_is_required" gorm:"column:question_is_required;not null;default:true"`

	// Order unik dalam satu questionnaire (dipakai juga untuk tie-break rekomendasi)
	QuestionOrder    int     `json:"question_order" gorm:"column:question_order;not null;default:0;uniqueIndex:uq_questions_questionnaire_order,priority:2"`
	QuestionMaxScore float64 `json:"question_max_score" gorm:"column:question_max_score;type:numeric(8,2);not null;default:10"`

	// Relations
	Options []QuestionOptionModel `json:"options,omitempty" gorm:"foreignKey:QuestionOptionQuestionID;references:QuestionID"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
