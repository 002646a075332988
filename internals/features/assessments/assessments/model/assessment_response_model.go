// file: internals/features/assessments/assessments/model/assessment_response_model.go
package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AssessmentResponseModel merepresentasikan tabel `assessment_responses`:
// tepat satu baris per (assessment, question).
// ResponseScore selalu dihitung ulang server-side, tidak pernah dipercaya dari client.
type AssessmentResponseModel struct {
	ResponseID           uuid.UUID `json:"response_id" gorm:"column:response_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ResponseAssessmentID uuid.UUID `json:"response_assessment_id" gorm:"column:response_assessment_id;type:uuid;not null;uniqueIndex:uq_responses_assessment_question,priority:1"`
	ResponseQuestionID   uuid.UUID `json:"response_question_id" gorm:"column:response_question_id;type:uuid;not null;uniqueIndex:uq_responses_assessment_question,priority:2"`

	// Tepat satu dari tiga ini yang bermakna, tergantung question_type.
	ResponseSelectedOptions pq.StringArray `json:"response_selected_options" gorm:"column:response_selected_options;type:uuid[]"`
	ResponseText            *string        `json:"response_text" gorm:"column:response_text;type:text"`
	ResponseNumber          *float64       `json:"response_number" gorm:"column:response_number;type:numeric(15,2)"`

	// Skor hasil hitung engine (untuk text/number: nilai rubric yang di-pass-through)
	ResponseScore float64 `json:"response_score" gorm:"column:response_score;type:numeric(8,2);not null;default:0"`
}

func (AssessmentResponseModel) TableName() string {
	return "assessment_responses"
}

// SelectedOptionIDs parse kolom uuid[] menjadi uuid.UUID (entry rusak dilewati).
func (r *AssessmentResponseModel) SelectedOptionIDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(r.ResponseSelectedOptions))
	for _, s := range r.ResponseSelectedOptions {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}
