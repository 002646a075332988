// file: internals/features/assessments/assessments/service/scoring_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amodel "investku_backend/internals/features/assessments/assessments/model"
	qmodel "investku_backend/internals/features/assessments/questionnaires/model"
	"investku_backend/internals/helpers/errs"
)

/* ============ fixtures ============ */

func newCategory(name string, weight float64) qmodel.AssessmentCategoryModel {
	return qmodel.AssessmentCategoryModel{
		CategoryID:       uuid.New(),
		CategoryName:     name,
		CategoryWeight:   weight,
		CategoryIsActive: true,
	}
}

func newSingleChoice(categoryID uuid.UUID, order int, maxScore float64, optionScores ...float64) qmodel.QuestionModel {
	q := qmodel.QuestionModel{
		QuestionID:         uuid.New(),
		QuestionCategoryID: categoryID,
		QuestionType:       qmodel.QuestionTypeSingleChoice,
		QuestionIsRequired: true,
		QuestionOrder:      order,
		QuestionMaxScore:   maxScore,
	}
	for i, score := range optionScores {
		q.Options = append(q.Options, qmodel.QuestionOptionModel{
			QuestionOptionID:    uuid.New(),
			QuestionOptionScore: score,
			QuestionOptionOrder: i,
		})
	}
	return q
}

func newMultipleChoice(categoryID uuid.UUID, order int, maxScore float64, optionScores ...float64) qmodel.QuestionModel {
	q := newSingleChoice(categoryID, order, maxScore, optionScores...)
	q.QuestionType = qmodel.QuestionTypeMultipleChoice
	return q
}

func answerOptions(q *qmodel.QuestionModel, optionIdx ...int) amodel.AssessmentResponseModel {
	r := amodel.AssessmentResponseModel{
		ResponseID:         uuid.New(),
		ResponseQuestionID: q.QuestionID,
	}
	for _, idx := range optionIdx {
		r.ResponseSelectedOptions = append(r.ResponseSelectedOptions, q.Options[idx].QuestionOptionID.String())
	}
	return r
}

/* ============ happy paths ============ */

func TestComputeScores_PerfectSingleChoice(t *testing.T) {
	cat := newCategory("Financial Management", 1.0)
	q1 := newSingleChoice(cat.CategoryID, 1, 20, 0, 10, 20)
	q2 := newSingleChoice(cat.CategoryID, 2, 20, 0, 20)

	result, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{q1, q2},
		Responses: []amodel.AssessmentResponseModel{
			answerOptions(&q1, 2),
			answerOptions(&q2, 1),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 40.0, result.TotalScore)
	assert.Equal(t, 40.0, result.MaxPossibleScore)
	assert.Equal(t, 100.0, result.PercentageScore)

	require.Len(t, result.CategoryScores, 1)
	cs := result.CategoryScores[0]
	assert.Equal(t, cat.CategoryID, cs.CategoryID)
	assert.Equal(t, "Financial Management", cs.CategoryName)
	assert.Equal(t, 100.0, cs.Percentage)
}

func TestComputeScores_SplitAcrossCategories(t *testing.T) {
	catA := newCategory("Governance", 1.0)
	catB := newCategory("Operations", 1.0)
	qa := newSingleChoice(catA.CategoryID, 1, 20, 0, 20)
	qb := newSingleChoice(catB.CategoryID, 2, 20, 0, 20)

	result, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{catA, catB},
		Questions:  []qmodel.QuestionModel{qa, qb},
		Responses: []amodel.AssessmentResponseModel{
			answerOptions(&qa, 0), // 0/20
			answerOptions(&qb, 1), // 20/20
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 20.0, result.TotalScore)
	assert.Equal(t, 40.0, result.MaxPossibleScore)
	assert.Equal(t, 50.0, result.PercentageScore)

	require.Len(t, result.CategoryScores, 2)
	assert.Equal(t, 0.0, result.CategoryScores[0].Percentage)
	assert.Equal(t, 100.0, result.CategoryScores[1].Percentage)
}

func TestComputeScores_MultipleChoiceSumsAndCaps(t *testing.T) {
	cat := newCategory("Compliance", 1.0)
	q := newMultipleChoice(cat.CategoryID, 1, 10, 4, 4, 4)

	// Dua pilihan: 8, masih di bawah cap.
	result, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{q},
		Responses:  []amodel.AssessmentResponseModel{answerOptions(&q, 0, 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, result.TotalScore)

	// Tiga pilihan: 12 → di-cap ke 10.
	result, err = ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{q},
		Responses:  []amodel.AssessmentResponseModel{answerOptions(&q, 0, 1, 2)},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, result.TotalScore)
	assert.Equal(t, 100.0, result.PercentageScore)
}

func TestComputeScores_SingleChoiceCappedAtMax(t *testing.T) {
	cat := newCategory("Governance", 1.0)
	// Option dengan skor 20 di question ber-plafon 10 (katalog salah input).
	q := newSingleChoice(cat.CategoryID, 1, 10, 0, 20)

	result, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{q},
		Responses:  []amodel.AssessmentResponseModel{answerOptions(&q, 1)},
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, result.TotalScore)
	assert.Equal(t, 10.0, result.MaxPossibleScore)
	assert.LessOrEqual(t, result.PercentageScore, 100.0)
	assert.Equal(t, 100.0, result.PercentageScore)
}

func TestComputeScores_TextPassesThroughRubricScore(t *testing.T) {
	cat := newCategory("Strategy", 1.0)
	q := qmodel.QuestionModel{
		QuestionID:         uuid.New(),
		QuestionCategoryID: cat.CategoryID,
		QuestionType:       qmodel.QuestionTypeText,
		QuestionIsRequired: true,
		QuestionOrder:      1,
		QuestionMaxScore:   10,
	}
	text := "We have a five year growth plan."
	resp := amodel.AssessmentResponseModel{
		ResponseID:         uuid.New(),
		ResponseQuestionID: q.QuestionID,
		ResponseText:       &text,
		ResponseScore:      7,
	}

	result, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{q},
		Responses:  []amodel.AssessmentResponseModel{resp},
	})
	require.NoError(t, err)
	assert.Equal(t, 7.0, result.TotalScore)
	assert.Equal(t, 70.0, result.PercentageScore)
}

func TestComputeScores_CategoryWeightAffectsTotalsOnly(t *testing.T) {
	catA := newCategory("Financial Management", 2.0)
	catB := newCategory("Marketing", 1.0)
	qa := newSingleChoice(catA.CategoryID, 1, 10, 0, 10)
	qb := newSingleChoice(catB.CategoryID, 2, 10, 0, 10)

	result, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{catA, catB},
		Questions:  []qmodel.QuestionModel{qa, qb},
		Responses: []amodel.AssessmentResponseModel{
			answerOptions(&qa, 1), // 10/10
			answerOptions(&qb, 0), // 0/10
		},
	})
	require.NoError(t, err)

	// Total berbobot: 10*2 + 0*1 = 20 dari max 10*2 + 10*1 = 30.
	assert.Equal(t, 20.0, result.TotalScore)
	assert.Equal(t, 30.0, result.MaxPossibleScore)
	assert.InDelta(t, 66.6667, result.PercentageScore, 0.001)

	// Persentase kategori tetap tanpa bobot.
	assert.Equal(t, 100.0, result.CategoryScores[0].Percentage)
	assert.Equal(t, 2.0, result.CategoryScores[0].Weight)
	assert.Equal(t, 0.0, result.CategoryScores[1].Percentage)
}

func TestComputeScores_UnansweredQuestions(t *testing.T) {
	cat := newCategory("Operations", 1.0)
	required := newSingleChoice(cat.CategoryID, 1, 10, 0, 10)
	optional := newSingleChoice(cat.CategoryID, 2, 10, 0, 10)
	optional.QuestionIsRequired = false
	answeredQ := newSingleChoice(cat.CategoryID, 3, 10, 0, 10)

	result, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{required, optional, answeredQ},
		Responses:  []amodel.AssessmentResponseModel{answerOptions(&answeredQ, 1)},
	})
	require.NoError(t, err)

	// Required kosong nambah max (10, skor 0); optional kosong tidak dihitung.
	assert.Equal(t, 10.0, result.TotalScore)
	assert.Equal(t, 20.0, result.MaxPossibleScore)
	assert.Equal(t, 50.0, result.PercentageScore)
}

func TestComputeScores_EmptyInput(t *testing.T) {
	result, err := ComputeScores(ScoreInput{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.TotalScore)
	assert.Equal(t, 0.0, result.MaxPossibleScore)
	assert.Equal(t, 0.0, result.PercentageScore)
	assert.Empty(t, result.CategoryScores)
}

func TestComputeScores_ResponseScoresWrittenBack(t *testing.T) {
	cat := newCategory("Governance", 1.0)
	q := newSingleChoice(cat.CategoryID, 1, 20, 5, 20)
	resp := answerOptions(&q, 0)

	result, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{q},
		Responses:  []amodel.AssessmentResponseModel{resp},
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.ResponseScores[resp.ResponseID])
}

/* ============ invalid input ============ */

func TestComputeScores_ForeignQuestionRejected(t *testing.T) {
	cat := newCategory("Governance", 1.0)
	q := newSingleChoice(cat.CategoryID, 1, 10, 0, 10)
	stray := amodel.AssessmentResponseModel{
		ResponseID:         uuid.New(),
		ResponseQuestionID: uuid.New(), // bukan bagian questionnaire
	}

	_, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{q},
		Responses:  []amodel.AssessmentResponseModel{stray},
	})
	require.Error(t, err)

	var invalid *errs.InvalidResponseError
	assert.ErrorAs(t, err, &invalid)
}

func TestComputeScores_ForeignOptionRejected(t *testing.T) {
	cat := newCategory("Governance", 1.0)
	q := newSingleChoice(cat.CategoryID, 1, 10, 0, 10)
	resp := amodel.AssessmentResponseModel{
		ResponseID:              uuid.New(),
		ResponseQuestionID:      q.QuestionID,
		ResponseSelectedOptions: []string{uuid.New().String()},
	}

	_, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{q},
		Responses:  []amodel.AssessmentResponseModel{resp},
	})
	require.Error(t, err)

	var invalid *errs.InvalidResponseError
	assert.ErrorAs(t, err, &invalid)
}

func TestComputeScores_SingleChoiceMultiSelectRejected(t *testing.T) {
	cat := newCategory("Governance", 1.0)
	q := newSingleChoice(cat.CategoryID, 1, 10, 0, 5, 10)

	_, err := ComputeScores(ScoreInput{
		Categories: []qmodel.AssessmentCategoryModel{cat},
		Questions:  []qmodel.QuestionModel{q},
		Responses:  []amodel.AssessmentResponseModel{answerOptions(&q, 0, 2)},
	})
	require.Error(t, err)

	var invalid *errs.InvalidResponseError
	assert.ErrorAs(t, err, &invalid)
}

/* ============ rounding ============ */

func TestRoundPercentage(t *testing.T) {
	assert.Equal(t, 66.7, RoundPercentage(66.66666))
	assert.Equal(t, 50.0, RoundPercentage(50.0))
	assert.Equal(t, 0.1, RoundPercentage(0.05))
	assert.Equal(t, 100.0, RoundPercentage(99.99))
}
