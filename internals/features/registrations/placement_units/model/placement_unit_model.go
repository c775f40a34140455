// internals/features/registrations/placement_units/model/placement_unit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unit penempatan magang (mis. "Lab Kesehatan Ikan", "Kolam Pembenihan").
// Kuota pelajar dan umum dihitung terpisah terhadap pendaftaran
// berstatus approved/active/completed dengan tipe peserta yang sama.
type PlacementUnitModel struct {
	PlacementUnitID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:placement_unit_id" json:"placement_unit_id"`
	PlacementUnitName         string    `gorm:"type:varchar(255);unique;not null;column:placement_unit_name" json:"placement_unit_name"`
	PlacementUnitDescription  *string   `gorm:"type:text;column:placement_unit_description" json:"placement_unit_description,omitempty"`
	PlacementUnitStudentQuota int       `gorm:"not null;default:0;column:placement_unit_student_quota" json:"placement_unit_student_quota"`
	PlacementUnitGeneralQuota int       `gorm:"not null;default:0;column:placement_unit_general_quota" json:"placement_unit_general_quota"`
	PlacementUnitIsActive     bool      `gorm:"not null;default:true;column:placement_unit_is_active" json:"placement_unit_is_active"`

	PlacementUnitCreatedAt time.Time      `gorm:"column:placement_unit_created_at;autoCreateTime" json:"placement_unit_created_at"`
	PlacementUnitUpdatedAt *time.Time     `gorm:"column:placement_unit_updated_at;autoUpdateTime" json:"placement_unit_updated_at,omitempty"`
	PlacementUnitDeletedAt gorm.DeletedAt `gorm:"column:placement_unit_deleted_at;index" json:"placement_unit_deleted_at,omitempty"`
}

func (PlacementUnitModel) TableName() string { return "placement_units" }
