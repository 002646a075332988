// file: internals/features/assessments/questionnaires/model/questionnaire_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// QuestionnaireModel merepresentasikan tabel `questionnaires`.
// Sekali sudah direferensikan assessment, baris ini dianggap immutable:
// perubahan isi harus lewat versi baru, bukan edit in-place.
type QuestionnaireModel struct {
	QuestionnaireID uuid.UUID `json:"questionnaire_id" gorm:"column:questionnaire_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	QuestionnaireTitle       string  `json:"questionnaire_title" gorm:"column:questionnaire_title;type:varchar(255);not null"`
	QuestionnaireDescription string  `json:"questionnaire_description" gorm:"column:questionnaire_description;type:text"`
	QuestionnaireVersion     string  `json:"questionnaire_version" gorm:"column:questionnaire_version;type:varchar(10);not null;default:'1.0'"`
	QuestionnaireLanguage    string  `json:"questionnaire_language" gorm:"column:questionnaire_language;type:varchar(5);not null;default:'en'"`
	QuestionnaireIsActive    bool    `json:"questionnaire_is_active" gorm:"column:questionnaire_is_active;not null;default:true"`

	// =========================
	// Kriteria matching enterprise (kosong = match semua)
	// =========================
	QuestionnaireTargetSectors   pq.StringArray `json:"questionnaire_target_sectors" gorm:"column:questionnaire_target_sectors;type:text[]"`
	QuestionnaireTargetSizes     pq.StringArray `json:"questionnaire_target_sizes" gorm:"column:questionnaire_target_sizes;type:text[]"`
	QuestionnaireTargetDistricts pq.StringArray `json:"questionnaire_target_districts" gorm:"column:questionnaire_target_districts;type:text[]"`
	QuestionnaireMinEmployees    *int           `json:"questionnaire_min_employees" gorm:"column:questionnaire_min_employees"`
	QuestionnaireMaxEmployees    *int           `json:"questionnaire_max_employees" gorm:"column:questionnaire_max_employees"`

	// Estimasi waktu pengerjaan (menit), dihitung 3 menit per pertanyaan
	QuestionnaireEstimatedTimeMinutes int `json:"questionnaire_estimated_time_minutes" gorm:"column:questionnaire_estimated_time_minutes;not null;default:0"`

	QuestionnaireCreatedBy *uuid.UUID `json:"questionnaire_created_by" gorm:"column:questionnaire_created_by;type:uuid"`

	QuestionnaireCreatedAt time.Time      `json:"questionnaire_created_at" gorm:"column:questionnaire_created_at;not null;autoCreateTime"`
	QuestionnaireUpdatedAt time.Time      `json:"questionnaire_updated_at" gorm:"column:questionnaire_updated_at;not null;autoUpdateTime"`
	QuestionnaireDeletedAt gorm.DeletedAt `json:"questionnaire_deleted_at" gorm:"column:questionnaire_deleted_at;index"`

	// Relations
	Questions []QuestionModel `json:"questions,omitempty" gorm:"foreignKey:QuestionQuestionnaireID;references:QuestionnaireID"`
}

func (QuestionnaireModel) TableName() string {
	return "questionnaires"
}
