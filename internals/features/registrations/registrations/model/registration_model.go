// internals/features/registrations/registrations/model/registration_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	uModel "magangku_backend/internals/features/users/user/model"
)

/*
Status pendaftaran:
- "pending"   → menunggu keputusan admin
- "approved"  → disetujui, kredensial terbit, kuota terpakai
- "rejected"  → ditolak (terminal)
- "active"    → peserta sedang magang
- "completed" → magang selesai
- "graduated" → lulus, sertifikat bisa terbit (terminal)
*/
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusApproved  RegistrationStatus = "approved"
	RegistrationStatusRejected  RegistrationStatus = "rejected"
	RegistrationStatusActive    RegistrationStatus = "active"
	RegistrationStatusCompleted RegistrationStatus = "completed"
	RegistrationStatusGraduated RegistrationStatus = "graduated"
)

func (s *RegistrationStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = RegistrationStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = RegistrationStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s RegistrationStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type RegistrationModel struct {
	RegistrationID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:registration_id" json:"registration_id"`
	RegistrationUserID          uuid.UUID `gorm:"type:uuid;not null;index;column:registration_user_id" json:"registration_user_id"`
	RegistrationPlacementUnitID uuid.UUID `gorm:"type:uuid;not null;index;column:registration_placement_unit_id" json:"registration_placement_unit_id"`

	RegistrationStatus RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending';index;column:registration_status" json:"registration_status"`

	// Tipe pendaftar dibekukan di sini supaya hitungan kuota per pool
	// tidak ikut berubah kalau data user dimodifikasi belakangan.
	RegistrationUserType uModel.UserType `gorm:"type:varchar(10);not null;index;column:registration_user_type" json:"registration_user_type"`

	// Data pengajuan awal (sebelum user melengkapi profil)
	RegistrationApplicantName  string  `gorm:"type:varchar(255);not null;column:registration_applicant_name" json:"registration_applicant_name"`
	RegistrationApplicantEmail *string `gorm:"type:varchar(255);column:registration_applicant_email" json:"registration_applicant_email,omitempty"`
	RegistrationApplicantPhone *string `gorm:"type:varchar(17);column:registration_applicant_phone" json:"registration_applicant_phone,omitempty"`
	RegistrationInstitution    *string `gorm:"type:varchar(255);column:registration_institution" json:"registration_institution,omitempty"`
	RegistrationNotes          *string `gorm:"type:text;column:registration_notes" json:"registration_notes,omitempty"`

	// Rencana durasi magang
	RegistrationStartDate *datatypes.Date `gorm:"column:registration_start_date" json:"registration_start_date,omitempty"`
	RegistrationEndDate   *datatypes.Date `gorm:"column:registration_end_date" json:"registration_end_date,omitempty"`

	// Jejak keputusan admin
	RegistrationDecidedBy       *uuid.UUID `gorm:"type:uuid;column:registration_decided_by" json:"registration_decided_by,omitempty"`
	RegistrationDecidedAt       *time.Time `gorm:"column:registration_decided_at" json:"registration_decided_at,omitempty"`
	RegistrationRejectionReason *string    `gorm:"type:text;column:registration_rejection_reason" json:"registration_rejection_reason,omitempty"`

	RegistrationCreatedAt time.Time      `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`
	RegistrationUpdatedAt *time.Time     `gorm:"column:registration_updated_at;autoUpdateTime" json:"registration_updated_at,omitempty"`
	RegistrationDeletedAt gorm.DeletedAt `gorm:"column:registration_deleted_at;index" json:"registration_deleted_at,omitempty"`
}

func (RegistrationModel) TableName() string { return "registrations" }

// QuotaConsumingStatuses: status yang dihitung sebagai pemakai kuota unit.
var QuotaConsumingStatuses = []RegistrationStatus{
	RegistrationStatusApproved,
	RegistrationStatusActive,
	RegistrationStatusCompleted,
}
