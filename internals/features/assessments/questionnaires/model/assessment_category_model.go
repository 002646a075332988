// file: internals/features/assessments/questionnaires/model/assessment_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentCategoryModel merepresentasikan tabel `assessment_categories`.
// Kategori dipakai murni untuk pengelompokan skor & target rekomendasi,
// bukan untuk workflow.
type AssessmentCategoryModel struct {
	CategoryID          uuid.UUID `json:"category_id" gorm:"column:category_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryName        string    `json:"category_name" gorm:"column:category_name;type:varchar(255);not null"`
	CategoryDescription string    `json:"category_description" gorm:"column:category_description;type:text"`

	// Bobot kategori saat agregasi total (default 1.0)
	CategoryWeight float64 `json:"category_weight" gorm:"column:category_weight;type:numeric(5,2);not null;default:1.0"`

	CategoryIsActive  bool      `json:"category_is_active" gorm:"column:category_is_active;not null;default:true"`
	CategoryCreatedAt time.Time `json:"category_created_at" gorm:"column:category_created_at;not null;autoCreateTime"`
}

func (AssessmentCategoryModel) TableName() string {
	return "assessment_categories"
}
