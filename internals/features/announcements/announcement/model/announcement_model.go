// internals/features/announcements/announcement/model/announcement_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type AnnouncementPriority string

const (
	AnnouncementPriorityLow    AnnouncementPriority = "low"
	AnnouncementPriorityMedium AnnouncementPriority = "medium"
	AnnouncementPriorityHigh   AnnouncementPriority = "high"
)

func (p *AnnouncementPriority) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*p = AnnouncementPriority(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*p = AnnouncementPriority(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*p = ""
	}
	return nil
}
func (p AnnouncementPriority) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(p))), nil
}

/*
Sasaran pengumuman:
- "all"             → semua peserta
- "student"         → hanya pelajar
- "general"         → hanya peserta umum
- "placement_units" → unit penempatan tertentu (lihat target_units)
*/
type AnnouncementAudience string

const (
	AnnouncementAudienceAll            AnnouncementAudience = "all"
	AnnouncementAudienceStudent        AnnouncementAudience = "student"
	AnnouncementAudienceGeneral        AnnouncementAudience = "general"
	AnnouncementAudiencePlacementUnits AnnouncementAudience = "placement_units"
)

func (a *AnnouncementAudience) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*a = AnnouncementAudience(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*a = AnnouncementAudience(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*a = ""
	}
	return nil
}
func (a AnnouncementAudience) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(a))), nil
}

type AnnouncementStatus string

const (
	AnnouncementStatusDraft     AnnouncementStatus = "draft"
	AnnouncementStatusPublished AnnouncementStatus = "published"
	AnnouncementStatusArchived  AnnouncementStatus = "archived"
)

func (s *AnnouncementStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = AnnouncementStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = AnnouncementStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s AnnouncementStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// Pengumuman balai. Hanya status published yang masuk feed peserta,
// dan lewat expires_at pengumuman hilang sendiri dari feed.
type AnnouncementModel struct {
	AnnouncementID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`
	AnnouncementTitle string    `gorm:"type:varchar(255);not null;column:announcement_title" json:"announcement_title"`
	AnnouncementBody  string    `gorm:"type:text;not null;column:announcement_body" json:"announcement_body"`

	AnnouncementPriority AnnouncementPriority `gorm:"type:varchar(10);not null;default:'medium';column:announcement_priority" json:"announcement_priority"`
	AnnouncementAudience AnnouncementAudience `gorm:"type:varchar(20);not null;default:'all';column:announcement_audience" json:"announcement_audience"`
	AnnouncementStatus   AnnouncementStatus   `gorm:"type:varchar(10);not null;default:'draft';index;column:announcement_status" json:"announcement_status"`

	// Daftar nama unit penempatan yang dituju (audience = placement_units)
	AnnouncementTargetUnits pq.StringArray `gorm:"type:text[];column:announcement_target_units" json:"announcement_target_units,omitempty"`

	AnnouncementPublishedAt *time.Time `gorm:"column:announcement_published_at" json:"announcement_published_at,omitempty"`
	AnnouncementExpiresAt   *time.Time `gorm:"column:announcement_expires_at" json:"announcement_expires_at,omitempty"`

	AnnouncementCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:announcement_created_by" json:"announcement_created_by"`

	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt *time.Time     `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at,omitempty"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"announcement_deleted_at,omitempty"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
