// internals/features/registrations/registrations/dto/registration_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	regModel "magangku_backend/internals/features/registrations/registrations/model"
)

/* ===================== REQUESTS ===================== */

// Pengajuan publik, belum punya akun.
type SubmitRegistrationRequest struct {
	ApplicantName   string  `json:"applicant_name" validate:"required,min=3,max=255"`
	ApplicantEmail  *string `json:"applicant_email" validate:"omitempty,email"`
	ApplicantPhone  *string `json:"applicant_phone" validate:"omitempty,max=17"`
	Institution     *string `json:"institution" validate:"omitempty,max=255"`
	UserType        string  `json:"user_type" validate:"required,oneof=student general"`
	PlacementUnitID string  `json:"placement_unit_id" validate:"required,uuid4"`
	Notes           *string `json:"notes" validate:"omitempty"`

	StartDate *datatypes.Date `json:"start_date" validate:"omitempty"`
	EndDate   *datatypes.Date `json:"end_date" validate:"omitempty"`
}

type DecideRegistrationRequest struct {
	Decision        string  `json:"decision" validate:"required,oneof=approve reject"`
	RejectionReason *string `json:"rejection_reason" validate:"omitempty"`
}

type AdvanceRegistrationRequest struct {
	TargetStatus string `json:"target_status" validate:"required,oneof=active completed graduated"`
}

type UpsertRegistrationPeriodRequest struct {
	RegistrationPeriodName      string         `json:"registration_period_name" validate:"required,min=3,max=100"`
	RegistrationPeriodStartDate datatypes.Date `json:"registration_period_start_date" validate:"required"`
	RegistrationPeriodEndDate   datatypes.Date `json:"registration_period_end_date" validate:"required"`
	RegistrationPeriodIsOpen    *bool          `json:"registration_period_is_open" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

type RegistrationResponse struct {
	RegistrationID              uuid.UUID                   `json:"registration_id"`
	RegistrationUserID          uuid.UUID                   `json:"registration_user_id"`
	RegistrationPlacementUnitID uuid.UUID                   `json:"registration_placement_unit_id"`
	RegistrationStatus          regModel.RegistrationStatus `json:"registration_status"`

	RegistrationApplicantName  string  `json:"registration_applicant_name"`
	RegistrationApplicantEmail *string `json:"registration_applicant_email,omitempty"`
	RegistrationApplicantPhone *string `json:"registration_applicant_phone,omitempty"`
	RegistrationInstitution    *string `json:"registration_institution,omitempty"`
	RegistrationNotes          *string `json:"registration_notes,omitempty"`

	RegistrationStartDate *datatypes.Date `json:"registration_start_date,omitempty"`
	RegistrationEndDate   *datatypes.Date `json:"registration_end_date,omitempty"`

	RegistrationDecidedBy       *uuid.UUID `json:"registration_decided_by,omitempty"`
	RegistrationDecidedAt       *time.Time `json:"registration_decided_at,omitempty"`
	RegistrationRejectionReason *string    `json:"registration_rejection_reason,omitempty"`

	RegistrationCreatedAt time.Time `json:"registration_created_at"`
}

func NewRegistrationResponse(m *regModel.RegistrationModel) *RegistrationResponse {
	if m == nil {
		return nil
	}
	return &RegistrationResponse{
		RegistrationID:              m.RegistrationID,
		RegistrationUserID:          m.RegistrationUserID,
		RegistrationPlacementUnitID: m.RegistrationPlacementUnitID,
		RegistrationStatus:          m.RegistrationStatus,
		RegistrationApplicantName:   m.RegistrationApplicantName,
		RegistrationApplicantEmail:  m.RegistrationApplicantEmail,
		RegistrationApplicantPhone:  m.RegistrationApplicantPhone,
		RegistrationInstitution:     m.RegistrationInstitution,
		RegistrationNotes:           m.RegistrationNotes,
		RegistrationStartDate:       m.RegistrationStartDate,
		RegistrationEndDate:         m.RegistrationEndDate,
		RegistrationDecidedBy:       m.RegistrationDecidedBy,
		RegistrationDecidedAt:       m.RegistrationDecidedAt,
		RegistrationRejectionReason: m.RegistrationRejectionReason,
		RegistrationCreatedAt:       m.RegistrationCreatedAt,
	}
}

// Balasan pengajuan publik: cukup nomor registrasi untuk dilacak pemohon.
type SubmitRegistrationResponse struct {
	RegistrationID         uuid.UUID `json:"registration_id"`
	UserRegistrationNumber string    `json:"user_registration_number"`
	RegistrationStatus     string    `json:"registration_status"`
}

// Kredensial hasil persetujuan, dikirim sekali di response approve.
type IssuedCredentialResponse struct {
	Username   string `json:"username"`
	AccessCode string `json:"access_code"`
}

type DecideRegistrationResponse struct {
	Registration *RegistrationResponse     `json:"registration"`
	Credential   *IssuedCredentialResponse `json:"credential,omitempty"`
}

type RegistrationStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	Graduated int64 `json:"graduated"`
}
