// file: internals/features/assessments/questionnaires/dto/question_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"investku_backend/internals/features/assessments/questionnaires/model"
)

func TestCreateQuestionRequest_ValidateScores(t *testing.T) {
	base := CreateQuestionRequest{
		QuestionText:     "Apakah pembukuan dipisah dari keuangan pribadi?",
		QuestionType:     model.QuestionTypeSingleChoice,
		QuestionMaxScore: 10,
	}

	t.Run("skor option di dalam plafon", func(t *testing.T) {
		req := base
		req.Options = []QuestionOptionRequest{
			{QuestionOptionText: "Tidak", QuestionOptionScore: 0},
			{QuestionOptionText: "Ya", QuestionOptionScore: 10},
		}
		assert.NoError(t, req.ValidateScores())
	})

	t.Run("skor option melebihi plafon ditolak", func(t *testing.T) {
		req := base
		req.Options = []QuestionOptionRequest{
			{QuestionOptionText: "Ya", QuestionOptionScore: 20},
		}
		err := req.ValidateScores()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "melebihi")
	})

	t.Run("tanpa options lolos", func(t *testing.T) {
		req := base
		req.QuestionType = model.QuestionTypeText
		assert.NoError(t, req.ValidateScores())
	})
}
