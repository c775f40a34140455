// internals/features/registrations/registrations/model/registration_period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Periode pendaftaran. Pengajuan publik hanya diterima saat ada periode terbuka.
type RegistrationPeriodModel struct {
	RegistrationPeriodID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:registration_period_id" json:"registration_period_id"`
	RegistrationPeriodName      string         `gorm:"type:varchar(100);not null;column:registration_period_name" json:"registration_period_name"`
	RegistrationPeriodStartDate datatypes.Date `gorm:"not null;column:registration_period_start_date" json:"registration_period_start_date"`
	RegistrationPeriodEndDate   datatypes.Date `gorm:"not null;column:registration_period_end_date" json:"registration_period_end_date"`
	RegistrationPeriodIsOpen    bool           `gorm:"not null;default:true;column:registration_period_is_open" json:"registration_period_is_open"`

	RegistrationPeriodCreatedAt time.Time  `gorm:"column:registration_period_created_at;autoCreateTime" json:"registration_period_created_at"`
	RegistrationPeriodUpdatedAt *time.Time `gorm:"column:registration_period_updated_at;autoUpdateTime" json:"registration_period_updated_at,omitempty"`
}

func (RegistrationPeriodModel) TableName() string { return "registration_periods" }
