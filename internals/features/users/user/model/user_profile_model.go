// internals/features/users/user/model/user_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserProfileModel struct {
	UserProfileID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_profile_id" json:"user_profile_id"`
	UserProfileUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_profile_user_id" json:"user_profile_user_id"`

	// Data pribadi
	UserProfileFullName     string          `gorm:"type:varchar(255);not null;column:user_profile_full_name" json:"user_profile_full_name"`
	UserProfileAddress      *string         `gorm:"column:user_profile_address" json:"user_profile_address,omitempty"`
	UserProfilePlaceOfBirth *string         `gorm:"type:varchar(100);column:user_profile_place_of_birth" json:"user_profile_place_of_birth,omitempty"`
	UserProfileDateOfBirth  *datatypes.Date `gorm:"column:user_profile_date_of_birth" json:"user_profile_date_of_birth,omitempty"`
	UserProfileBloodType    *string         `gorm:"type:varchar(3);column:user_profile_blood_type" json:"user_profile_blood_type,omitempty"`
	UserProfileParentName   *string         `gorm:"type:varchar(255);column:user_profile_parent_name" json:"user_profile_parent_name,omitempty"`
	UserProfileParentPhone  *string         `gorm:"type:varchar(17);column:user_profile_parent_phone" json:"user_profile_parent_phone,omitempty"`

	// Data institusi asal
	UserProfileInstitutionName    *string `gorm:"type:varchar(255);column:user_profile_institution_name" json:"user_profile_institution_name,omitempty"`
	UserProfileStudentID          *string `gorm:"type:varchar(50);column:user_profile_student_id" json:"user_profile_student_id,omitempty"`
	UserProfileInstitutionAddress *string `gorm:"column:user_profile_institution_address" json:"user_profile_institution_address,omitempty"`
	UserProfileInstitutionEmail   *string `gorm:"type:varchar(255);column:user_profile_institution_email" json:"user_profile_institution_email,omitempty"`
	UserProfileInstitutionPhone   *string `gorm:"type:varchar(17);column:user_profile_institution_phone" json:"user_profile_institution_phone,omitempty"`
	UserProfileSupervisorName     *string `gorm:"type:varchar(255);column:user_profile_supervisor_name" json:"user_profile_supervisor_name,omitempty"`
	UserProfileSupervisorPhone    *string `gorm:"type:varchar(17);column:user_profile_supervisor_phone" json:"user_profile_supervisor_phone,omitempty"`
	UserProfileSupervisorEmail    *string `gorm:"type:varchar(255);column:user_profile_supervisor_email" json:"user_profile_supervisor_email,omitempty"`

	// Rencana magang/pelatihan
	UserProfilePlannedStartDate *datatypes.Date `gorm:"column:user_profile_planned_start_date" json:"user_profile_planned_start_date,omitempty"`
	UserProfilePlannedEndDate   *datatypes.Date `gorm:"column:user_profile_planned_end_date" json:"user_profile_planned_end_date,omitempty"`
	UserProfilePlacementUnit    *string         `gorm:"type:varchar(255);column:user_profile_placement_unit" json:"user_profile_placement_unit,omitempty"`

	// Data kesehatan
	UserProfileMedicalHistory *string `gorm:"column:user_profile_medical_history" json:"user_profile_medical_history,omitempty"`
	UserProfileSpecialNeeds   *string `gorm:"column:user_profile_special_needs" json:"user_profile_special_needs,omitempty"`

	UserProfileCreatedAt time.Time  `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdatedAt *time.Time `gorm:"column:user_profile_updated_at;autoUpdateTime" json:"user_profile_updated_at,omitempty"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }
