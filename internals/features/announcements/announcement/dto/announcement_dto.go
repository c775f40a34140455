// internals/features/announcements/announcement/dto/announcement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	annModel "magangku_backend/internals/features/announcements/announcement/model"
)

/* ===================== REQUESTS ===================== */

type CreateAnnouncementRequest struct {
	AnnouncementTitle       string     `json:"announcement_title" validate:"required,min=3,max=255"`
	AnnouncementBody        string     `json:"announcement_body" validate:"required,min=1"`
	AnnouncementPriority    *string    `json:"announcement_priority" validate:"omitempty,oneof=low medium high"`
	AnnouncementAudience    *string    `json:"announcement_audience" validate:"omitempty,oneof=all student general placement_units"`
	AnnouncementStatus      *string    `json:"announcement_status" validate:"omitempty,oneof=draft published archived"`
	AnnouncementTargetUnits []string   `json:"announcement_target_units" validate:"omitempty,dive,min=1"`
	AnnouncementExpiresAt   *time.Time `json:"announcement_expires_at" validate:"omitempty"`
}

func (r *CreateAnnouncementRequest) ToModel(createdBy uuid.UUID) *annModel.AnnouncementModel {
	m := &annModel.AnnouncementModel{
		AnnouncementTitle:       r.AnnouncementTitle,
		AnnouncementBody:        r.AnnouncementBody,
		AnnouncementPriority:    annModel.AnnouncementPriorityMedium,
		AnnouncementAudience:    annModel.AnnouncementAudienceAll,
		AnnouncementStatus:      annModel.AnnouncementStatusDraft,
		AnnouncementTargetUnits: pq.StringArray(r.AnnouncementTargetUnits),
		AnnouncementExpiresAt:   r.AnnouncementExpiresAt,
		AnnouncementCreatedBy:   createdBy,
	}
	if r.AnnouncementPriority != nil {
		m.AnnouncementPriority = annModel.AnnouncementPriority(*r.AnnouncementPriority)
	}
	if r.AnnouncementAudience != nil {
		m.AnnouncementAudience = annModel.AnnouncementAudience(*r.AnnouncementAudience)
	}
	if r.AnnouncementStatus != nil {
		m.AnnouncementStatus = annModel.AnnouncementStatus(*r.AnnouncementStatus)
	}
	return m
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle       *string    `json:"announcement_title" validate:"omitempty,min=3,max=255"`
	AnnouncementBody        *string    `json:"announcement_body" validate:"omitempty,min=1"`
	AnnouncementPriority    *string    `json:"announcement_priority" validate:"omitempty,oneof=low medium high"`
	AnnouncementAudience    *string    `json:"announcement_audience" validate:"omitempty,oneof=all student general placement_units"`
	AnnouncementStatus      *string    `json:"announcement_status" validate:"omitempty,oneof=draft published archived"`
	AnnouncementTargetUnits []string   `json:"announcement_target_units" validate:"omitempty,dive,min=1"`
	AnnouncementExpiresAt   *time.Time `json:"announcement_expires_at" validate:"omitempty"`
}

func (r *UpdateAnnouncementRequest) ApplyToModel(m *annModel.AnnouncementModel) {
	if r.AnnouncementTitle != nil {
		m.AnnouncementTitle = *r.AnnouncementTitle
	}
	if r.AnnouncementBody != nil {
		m.AnnouncementBody = *r.AnnouncementBody
	}
	if r.AnnouncementPriority != nil {
		m.AnnouncementPriority = annModel.AnnouncementPriority(*r.AnnouncementPriority)
	}
	if r.AnnouncementAudience != nil {
		m.AnnouncementAudience = annModel.AnnouncementAudience(*r.AnnouncementAudience)
	}
	if r.AnnouncementStatus != nil {
		m.AnnouncementStatus = annModel.AnnouncementStatus(*r.AnnouncementStatus)
	}
	if r.AnnouncementTargetUnits != nil {
		m.AnnouncementTargetUnits = pq.StringArray(r.AnnouncementTargetUnits)
	}
	if r.AnnouncementExpiresAt != nil {
		m.AnnouncementExpiresAt = r.AnnouncementExpiresAt
	}
}
