// file: internals/features/assessments/questionnaires/model/question_option_model.go
package model

import (
	"github.com/google/uuid"
)

// QuestionOptionModel merepresentasikan tabel `question_options`.
type QuestionOptionModel struct {
	QuestionOptionID         uuid.UUID `json:"question_option_id" gorm:"column:question_option_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionOptionQuestionID uuid.UUID `json:"question_option_question_id" gorm:"column:question_option_question_id;type:uuid;not null;index:idx_question_options_question"`

	QuestionOptionText  string  `json:"question_option_text" gorm:"column:question_option_text;type:varchar(255);not null"`
	QuestionOptionScore float64 `json:"question_option_score" gorm:"column:question_option_score;type:numeric(8,2);not null;default:0"`
	QuestionOptionOrder int     `json:"question_option_order" gorm:"column:question_option_order;not null;default:0"`
}

func (QuestionOptionModel) TableName() string {
	return "question_options"
}
