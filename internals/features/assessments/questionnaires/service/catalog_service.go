// file: internals/features/assessments/questionnaires/service/catalog_service.go
package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "investku_backend/internals/features/assessments/questionnaires/model"
	emodel "investku_backend/internals/features/enterprises/model"
)

const minutesPerQuestion = 3

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

/* =========================================================
   Enterprise matching (pure)
========================================================= */

// MatchesEnterprise: kriteria kosong berarti match semua enterprise.
func MatchesEnterprise(q *qmodel.QuestionnaireModel, e *emodel.EnterpriseModel) bool {
	if len(q.QuestionnaireTargetSectors) == 0 &&
		len(q.QuestionnaireTargetSizes) == 0 &&
		len(q.QuestionnaireTargetDistricts) == 0 &&
		q.QuestionnaireMinEmployees == nil &&
		q.QuestionnaireMaxEmployees == nil {
		return true
	}

	if len(q.QuestionnaireTargetSectors) > 0 && !contains(q.QuestionnaireTargetSectors, e.EnterpriseSector) {
		return false
	}
	if len(q.QuestionnaireTargetSizes) > 0 && !contains(q.QuestionnaireTargetSizes, e.EnterpriseSize) {
		return false
	}
	if len(q.QuestionnaireTargetDistricts) > 0 && !contains(q.QuestionnaireTargetDistricts, e.EnterpriseDistrict) {
		return false
	}
	if q.QuestionnaireMinEmployees != nil && e.EnterpriseEmployeeCount < *q.QuestionnaireMinEmployees {
		return false
	}
	if q.QuestionnaireMaxEmployees != nil && e.EnterpriseEmployeeCount > *q.QuestionnaireMaxEmployees {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

/* =========================================================
   Catalog immutability
========================================================= */

// EnsureEditable menolak edit isi questionnaire yang sudah direferensikan
// assessment. Perubahan harus lewat versi baru; menonaktifkan
// (is_active=false) tetap boleh kapan saja.
func (s *CatalogService) EnsureEditable(ctx context.Context, questionnaireID uuid.UUID) error {
	var n int64
	if err := s.DB.WithContext(ctx).Table("assessments").
		Where("assessment_questionnaire_id = ? AND assessment_deleted_at IS NULL", questionnaireID).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusConflict,
			"questionnaire sudah dipakai assessment; buat versi baru, jangan edit in-place")
	}
	return nil
}

/* =========================================================
   Estimated time
========================================================= */

// RecalculateEstimatedTime: 3 menit per question, dipersist ke questionnaire.
func (s *CatalogService) RecalculateEstimatedTime(ctx context.Context, questionnaireID uuid.UUID) (int, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&qmodel.QuestionModel{}).
		Where("question_questionnaire_id = ?", questionnaireID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	minutes := int(count) * minutesPerQuestion
	if err := s.DB.WithContext(ctx).Model(&qmodel.QuestionnaireModel{}).
		Where("questionnaire_id = ?", questionnaireID).
		Update("questionnaire_estimated_time_minutes", minutes).Error; err != nil {
		return 0, err
	}
	return minutes, nil
}
