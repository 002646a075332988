// file: internals/features/assessments/assessments/service/workflow_service_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amodel "investku_backend/internals/features/assessments/assessments/model"
	qmodel "investku_backend/internals/features/assessments/questionnaires/model"
	"investku_backend/internals/constants"
	"investku_backend/internals/helpers/errs"
)

/* ============ guard table ============ */

func TestGuardTransition(t *testing.T) {
	allStatuses := []amodel.AssessmentStatus{
		amodel.StatusDraft, amodel.StatusInProgress, amodel.StatusCompleted, amodel.StatusReviewed,
	}
	allowed := map[string][]amodel.AssessmentStatus{
		ActionStart:            {amodel.StatusDraft},
		ActionSaveResponse:     {amodel.StatusDraft, amodel.StatusInProgress},
		ActionSubmit:           {amodel.StatusInProgress},
		ActionAssignReviewer:   {amodel.StatusCompleted},
		ActionMarkReviewed:     {amodel.StatusCompleted},
		ActionRegrade:          {amodel.StatusCompleted, amodel.StatusReviewed},
		ActionGenerateInsights: {amodel.StatusCompleted, amodel.StatusReviewed},
		ActionUpdateInsights:   {amodel.StatusCompleted, amodel.StatusReviewed},
	}

	for action, okFrom := range allowed {
		okSet := make(map[amodel.AssessmentStatus]bool)
		for _, st := range okFrom {
			okSet[st] = true
		}
		for _, st := range allStatuses {
			err := GuardTransition(st, action)
			if okSet[st] {
				assert.NoError(t, err, "action=%s from=%s", action, st)
				continue
			}
			require.Error(t, err, "action=%s from=%s", action, st)

			var invalid *errs.InvalidTransitionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, st.String(), invalid.Current)
			assert.Equal(t, action, invalid.Requested)
		}
	}
}

func TestGuardTransition_UnknownAction(t *testing.T) {
	err := GuardTransition(amodel.StatusDraft, "fly_to_the_moon")
	var invalid *errs.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

/* ============ fiscal year ============ */

func TestFiscalYearFor(t *testing.T) {
	cases := []struct {
		date string
		fy   int
	}{
		{"2026-07-01", 2026}, // awal fiscal year
		{"2026-12-31", 2026},
		{"2026-06-30", 2025}, // akhir fiscal year sebelumnya
		{"2026-01-15", 2025},
		{"2025-08-09", 2025},
	}
	for _, tc := range cases {
		d, err := time.Parse("2006-01-02", tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.fy, FiscalYearFor(d), "date=%s", tc.date)
	}
}

/* ============ actor ============ */

func TestActorIsAdmin(t *testing.T) {
	assert.True(t, Actor{Role: constants.RoleAdmin}.IsAdmin())
	assert.True(t, Actor{Role: constants.RoleSuperadmin}.IsAdmin())
	assert.False(t, Actor{Role: constants.RoleEnterprise}.IsAdmin())
	assert.False(t, Actor{Role: constants.RoleInvestor}.IsAdmin())
	assert.False(t, Actor{}.IsAdmin())
}

/* ============ required check ============ */

func TestMissingRequired(t *testing.T) {
	req1 := qmodel.QuestionModel{QuestionID: uuid.New(), QuestionIsRequired: true}
	req2 := qmodel.QuestionModel{QuestionID: uuid.New(), QuestionIsRequired: true}
	opt := qmodel.QuestionModel{QuestionID: uuid.New(), QuestionIsRequired: false}
	questions := []qmodel.QuestionModel{req1, req2, opt}

	t.Run("all required answered", func(t *testing.T) {
		text := "answer"
		missing := missingRequired(questions, []amodel.AssessmentResponseModel{
			{ResponseQuestionID: req1.QuestionID, ResponseSelectedOptions: []string{uuid.New().String()}},
			{ResponseQuestionID: req2.QuestionID, ResponseText: &text},
		})
		assert.Empty(t, missing)
	})

	t.Run("one required missing", func(t *testing.T) {
		missing := missingRequired(questions, []amodel.AssessmentResponseModel{
			{ResponseQuestionID: req1.QuestionID, ResponseSelectedOptions: []string{uuid.New().String()}},
		})
		require.Len(t, missing, 1)
		assert.Equal(t, req2.QuestionID.String(), missing[0])
	})

	t.Run("blank text does not count", func(t *testing.T) {
		blank := "   "
		missing := missingRequired(questions, []amodel.AssessmentResponseModel{
			{ResponseQuestionID: req1.QuestionID, ResponseText: &blank},
		})
		assert.Len(t, missing, 2)
	})

	t.Run("zero number counts as answered", func(t *testing.T) {
		zero := 0.0
		missing := missingRequired([]qmodel.QuestionModel{req1}, []amodel.AssessmentResponseModel{
			{ResponseQuestionID: req1.QuestionID, ResponseNumber: &zero},
		})
		assert.Empty(t, missing)
	})
}

/* ============ response shape ============ */

func TestValidateResponseShape(t *testing.T) {
	optionID := uuid.New()
	single := qmodel.QuestionModel{
		QuestionID:   uuid.New(),
		QuestionType: qmodel.QuestionTypeSingleChoice,
		Options:      []qmodel.QuestionOptionModel{{QuestionOptionID: optionID}},
	}
	textQ := qmodel.QuestionModel{QuestionID: uuid.New(), QuestionType: qmodel.QuestionTypeText}
	numberQ := qmodel.QuestionModel{QuestionID: uuid.New(), QuestionType: qmodel.QuestionTypeNumber}

	text := "hi"
	num := 5.0

	t.Run("single choice valid", func(t *testing.T) {
		err := validateResponseShape(&single, SaveResponseInput{SelectedOptions: []uuid.UUID{optionID}})
		assert.NoError(t, err)
	})

	t.Run("single choice rejects text payload", func(t *testing.T) {
		err := validateResponseShape(&single, SaveResponseInput{TextResponse: &text})
		assert.Error(t, err)
	})

	t.Run("single choice rejects multiple options", func(t *testing.T) {
		err := validateResponseShape(&single, SaveResponseInput{
			SelectedOptions: []uuid.UUID{optionID, uuid.New()},
		})
		assert.Error(t, err)
	})

	t.Run("single choice rejects foreign option", func(t *testing.T) {
		err := validateResponseShape(&single, SaveResponseInput{
			SelectedOptions: []uuid.UUID{uuid.New()},
		})
		assert.Error(t, err)
	})

	t.Run("multi choice rejects duplicate option", func(t *testing.T) {
		optA, optB := uuid.New(), uuid.New()
		multi := qmodel.QuestionModel{
			QuestionID:   uuid.New(),
			QuestionType: qmodel.QuestionTypeMultipleChoice,
			Options: []qmodel.QuestionOptionModel{
				{QuestionOptionID: optA},
				{QuestionOptionID: optB},
			},
		}

		err := validateResponseShape(&multi, SaveResponseInput{
			SelectedOptions: []uuid.UUID{optA, optB, optA},
		})
		require.Error(t, err)
		var invalid *errs.InvalidResponseError
		assert.ErrorAs(t, err, &invalid)

		err = validateResponseShape(&multi, SaveResponseInput{
			SelectedOptions: []uuid.UUID{optA, optB},
		})
		assert.NoError(t, err)
	})

	t.Run("text valid", func(t *testing.T) {
		err := validateResponseShape(&textQ, SaveResponseInput{TextResponse: &text})
		assert.NoError(t, err)
	})

	t.Run("text rejects number payload", func(t *testing.T) {
		err := validateResponseShape(&textQ, SaveResponseInput{NumberResponse: &num})
		assert.Error(t, err)
	})

	t.Run("number valid", func(t *testing.T) {
		err := validateResponseShape(&numberQ, SaveResponseInput{NumberResponse: &num})
		assert.NoError(t, err)
	})

	t.Run("number rejects options payload", func(t *testing.T) {
		err := validateResponseShape(&numberQ, SaveResponseInput{
			SelectedOptions: []uuid.UUID{uuid.New()},
		})
		assert.Error(t, err)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		weird := qmodel.QuestionModel{QuestionID: uuid.New(), QuestionType: "essay"}
		err := validateResponseShape(&weird, SaveResponseInput{TextResponse: &text})
		assert.Error(t, err)
	})
}

/* ============ unique violation sniffing ============ */

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(assert.AnError))
	assert.True(t, isUniqueViolation(errors.New(
		`ERROR: duplicate key value violates unique constraint "uq_assessments_enterprise_q_fy"`)))
}
