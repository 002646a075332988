// file: internals/features/assessments/questionnaires/model/question_model_test.go
package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Index unik (questionnaire_id, question_order) harus ter-declare di kedua
// kolom member-nya, lengkap dengan priority, supaya komposit terbentuk benar.
func TestQuestionOrderUniqueIndexCoversBothColumns(t *testing.T) {
	typ := reflect.TypeOf(QuestionModel{})

	questionnaireID, ok := typ.FieldByName("QuestionQuestionnaireID")
	require.True(t, ok)
	assert.Contains(t, questionnaireID.Tag.Get("gorm"), "uniqueIndex:uq_questions_questionnaire_order,priority:1")

	order, ok := typ.FieldByName("QuestionOrder")
	require.True(t, ok)
	assert.Contains(t, order.Tag.Get("gorm"), "uniqueIndex:uq_questions_questionnaire_order,priority:2")
}
