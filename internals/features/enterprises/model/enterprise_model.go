// file: internals/features/enterprises/model/enterprise_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnterpriseModel merepresentasikan tabel `enterprises`.
// CRUD profil enterprise dikelola service lain; di sini hanya read model
// untuk kepemilikan assessment, matching questionnaire, dan prompt insight.
type EnterpriseModel struct {
	EnterpriseID     uuid.UUID `json:"enterprise_id" gorm:"column:enterprise_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EnterpriseUserID uuid.UUID `json:"enterprise_user_id" gorm:"column:enterprise_user_id;type:uuid;not null;index:idx_enterprises_user"`

	EnterpriseBusinessName     string `json:"enterprise_business_name" gorm:"column:enterprise_business_name;type:varchar(255);not null"`
	EnterpriseSector           string `json:"enterprise_sector" gorm:"column:enterprise_sector;type:varchar(100)"`
	EnterpriseDistrict         string `json:"enterprise_district" gorm:"column:enterprise_district;type:varchar(100)"`
	EnterpriseSize             string `json:"enterprise_size" gorm:"column:enterprise_size;type:varchar(20)"` // micro|small|medium|large
	EnterpriseEmployeeCount    int    `json:"enterprise_employee_count" gorm:"column:enterprise_employee_count;not null;default:0"`
	EnterpriseYearsInOperation int    `json:"enterprise_years_in_operation" gorm:"column:enterprise_years_in_operation;not null;default:0"`
	EnterpriseDescription      string `json:"enterprise_description" gorm:"column:enterprise_description;type:text"`

	EnterpriseCreatedAt time.Time      `json:"enterprise_created_at" gorm:"column:enterprise_created_at;not null;autoCreateTime"`
	EnterpriseUpdatedAt time.Time      `json:"enterprise_updated_at" gorm:"column:enterprise_updated_at;not null;autoUpdateTime"`
	EnterpriseDeletedAt gorm.DeletedAt `json:"enterprise_deleted_at" gorm:"column:enterprise_deleted_at;index"`
}

func (EnterpriseModel) TableName() string {
	return "enterprises"
}
