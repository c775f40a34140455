// internals/features/registrations/placement_units/dto/placement_unit_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	puModel "magangku_backend/internals/features/registrations/placement_units/model"
)

/* ===================== REQUESTS ===================== */

type CreatePlacementUnitRequest struct {
	PlacementUnitName         string  `json:"placement_unit_name" validate:"required,min=3,max=255"`
	PlacementUnitDescription  *string `json:"placement_unit_description" validate:"omitempty"`
	PlacementUnitStudentQuota int     `json:"placement_unit_student_quota" validate:"min=0"`
	PlacementUnitGeneralQuota int     `json:"placement_unit_general_quota" validate:"min=0"`
}

func (r *CreatePlacementUnitRequest) ToModel() *puModel.PlacementUnitModel {
	return &puModel.PlacementUnitModel{
		PlacementUnitName:         r.PlacementUnitName,
		PlacementUnitDescription:  r.PlacementUnitDescription,
		PlacementUnitStudentQuota: r.PlacementUnitStudentQuota,
		PlacementUnitGeneralQuota: r.PlacementUnitGeneralQuota,
		PlacementUnitIsActive:     true,
	}
}

type UpdatePlacementUnitRequest struct {
	PlacementUnitName         *string `json:"placement_unit_name" validate:"omitempty,min=3,max=255"`
	PlacementUnitDescription  *string `json:"placement_unit_description" validate:"omitempty"`
	PlacementUnitStudentQuota *int    `json:"placement_unit_student_quota" validate:"omitempty,min=0"`
	PlacementUnitGeneralQuota *int    `json:"placement_unit_general_quota" validate:"omitempty,min=0"`
	PlacementUnitIsActive     *bool   `json:"placement_unit_is_active" validate:"omitempty"`
}

func (r *UpdatePlacementUnitRequest) ApplyToModel(m *puModel.PlacementUnitModel) {
	if r.PlacementUnitName != nil {
		m.PlacementUnitName = *r.PlacementUnitName
	}
	if r.PlacementUnitDescription != nil {
		m.PlacementUnitDescription = r.PlacementUnitDescription
	}
	if r.PlacementUnitStudentQuota != nil {
		m.PlacementUnitStudentQuota = *r.PlacementUnitStudentQuota
	}
	if r.PlacementUnitGeneralQuota != nil {
		m.PlacementUnitGeneralQuota = *r.PlacementUnitGeneralQuota
	}
	if r.PlacementUnitIsActive != nil {
		m.PlacementUnitIsActive = *r.PlacementUnitIsActive
	}
}

/* ===================== RESPONSES ===================== */

// Pemakaian satu pool kuota (hasil hitung, bukan kolom tersimpan).
type QuotaUsage struct {
	Quota     int   `json:"quota"`
	Used      int64 `json:"used"`
	Available int64 `json:"available"`
}

// Response unit selalu membawa kedua pool kuota: pelajar dan umum.
type PlacementUnitResponse struct {
	PlacementUnitID           uuid.UUID  `json:"placement_unit_id"`
	PlacementUnitName         string     `json:"placement_unit_name"`
	PlacementUnitDescription  *string    `json:"placement_unit_description,omitempty"`
	PlacementUnitStudentQuota QuotaUsage `json:"placement_unit_student_quota"`
	PlacementUnitGeneralQuota QuotaUsage `json:"placement_unit_general_quota"`
	PlacementUnitIsActive     bool       `json:"placement_unit_is_active"`
	PlacementUnitCreatedAt    time.Time  `json:"placement_unit_created_at"`
}

func NewPlacementUnitResponse(m *puModel.PlacementUnitModel, student, general QuotaUsage) *PlacementUnitResponse {
	if m == nil {
		return nil
	}
	return &PlacementUnitResponse{
		PlacementUnitID:           m.PlacementUnitID,
		PlacementUnitName:         m.PlacementUnitName,
		PlacementUnitDescription:  m.PlacementUnitDescription,
		PlacementUnitStudentQuota: student,
		PlacementUnitGeneralQuota: general,
		PlacementUnitIsActive:     m.PlacementUnitIsActive,
		PlacementUnitCreatedAt:    m.PlacementUnitCreatedAt,
	}
}
