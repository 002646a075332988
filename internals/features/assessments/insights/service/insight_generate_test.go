// file: internals/features/assessments/insights/service/insight_generate_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	asvc "investku_backend/internals/features/assessments/assessments/service"
	"investku_backend/internals/constants"
	"investku_backend/internals/helpers/errs"
)

/* ============ fixtures ============ */

type stubGenerator struct {
	result *InsightResult
	err    error
	calls  int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt InsightPrompt) (*InsightResult, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func adminActor() asvc.Actor {
	return asvc.Actor{UserID: uuid.New(), Role: constants.RoleAdmin}
}

/* ============ generate ============ */

func TestGenerateInsights_AdminOnly(t *testing.T) {
	svc := NewInsightService(nil, &stubGenerator{})

	_, err := svc.GenerateInsights(context.Background(), uuid.New(), asvc.Actor{Role: constants.RoleEnterprise})

	var invalid *errs.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestGenerateInsights_RequiresConfiguredGenerator(t *testing.T) {
	svc := NewInsightService(nil, nil)

	_, err := svc.GenerateInsights(context.Background(), uuid.New(), adminActor())

	var genErr *errs.InsightGenerationError
	require.ErrorAs(t, err, &genErr)
}

// Generator gagal → error naik sebagai InsightGenerationError dan TIDAK ADA
// write ke DB sama sekali: insight tersimpan sebelumnya dibiarkan utuh.
func TestGenerateInsights_FailureLeavesStoredInsightUntouched(t *testing.T) {
	db, mock := newMockGorm(t)
	gen := &stubGenerator{err: errors.New("model timeout")}
	svc := NewInsightService(db, gen)

	assessmentID, enterpriseID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "assessments"`).WillReturnRows(
		sqlmock.NewRows([]string{
			"assessment_id", "assessment_enterprise_id", "assessment_questionnaire_id",
			"assessment_fiscal_year", "assessment_status", "assessment_lock_version",
			"assessment_ai_strengths",
		}).AddRow(assessmentID.String(), enterpriseID.String(), uuid.New().String(),
			2025, "completed", 2, []byte(`["Pembukuan sudah rapi"]`)))

	mock.ExpectQuery(`SELECT \* FROM "enterprises"`).WillReturnRows(
		sqlmock.NewRows([]string{"enterprise_id", "enterprise_business_name", "enterprise_sector", "enterprise_district"}).
			AddRow(enterpriseID.String(), "Warung Maju", "retail", "Sleman"))
	mock.ExpectQuery(`SELECT \* FROM "assessment_category_scores"`).
		WillReturnRows(sqlmock.NewRows([]string{"category_score_id"}))
	mock.ExpectQuery(`SELECT \* FROM "assessment_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"category_id"}))
	mock.ExpectQuery(`SELECT \* FROM "questions"`).
		WillReturnRows(sqlmock.NewRows([]string{"question_id"}))
	mock.ExpectQuery(`SELECT \* FROM "assessment_responses"`).
		WillReturnRows(sqlmock.NewRows([]string{"response_id"}))

	_, err := svc.GenerateInsights(context.Background(), assessmentID, adminActor())

	var genErr *errs.InsightGenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, 1, gen.calls)
	// Tidak ada UPDATE yang di-expect: kalau service sempat menulis,
	// ExpectationsWereMet gagal di sini.
	require.NoError(t, mock.ExpectationsWereMet())
}

/* ============ update manual ============ */

func TestUpdateInsights_Idempotent(t *testing.T) {
	db, mock := newMockGorm(t)
	svc := NewInsightService(db, nil) // edit manual tidak butuh generator

	assessmentID := uuid.New()
	strengths := []string{"Tata kelola rapi"}
	weaknesses := []string{"Laporan keuangan belum rutin"}

	for _, lockVersion := range []int{0, 1} {
		mock.ExpectQuery(`SELECT \* FROM "assessments"`).WillReturnRows(
			sqlmock.NewRows([]string{"assessment_id", "assessment_status", "assessment_lock_version"}).
				AddRow(assessmentID.String(), "completed", lockVersion))
		mock.ExpectExec(`UPDATE "assessments"`).WillReturnResult(sqlmock.NewResult(0, 1))
	}

	first, err := svc.UpdateInsights(context.Background(), assessmentID, strengths, weaknesses, adminActor())
	require.NoError(t, err)
	second, err := svc.UpdateInsights(context.Background(), assessmentID, strengths, weaknesses, adminActor())
	require.NoError(t, err)

	assert.Equal(t, first.Strengths, second.Strengths)
	assert.Equal(t, first.Weaknesses, second.Weaknesses)
	require.NoError(t, mock.ExpectationsWereMet())
}
