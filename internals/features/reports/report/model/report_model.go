// internals/features/reports/report/model/report_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Status laporan magang:
- "draft"             → masih ditulis peserta
- "submitted"         → diajukan, menunggu review
- "under_review"      → sedang dibaca admin
- "approved"          → diterima (terminal)
- "rejected"          → ditolak (terminal)
- "revision_required" → dikembalikan untuk diperbaiki
*/
type ReportStatus string

const (
	ReportStatusDraft            ReportStatus = "draft"
	ReportStatusSubmitted        ReportStatus = "submitted"
	ReportStatusUnderReview      ReportStatus = "under_review"
	ReportStatusApproved         ReportStatus = "approved"
	ReportStatusRejected         ReportStatus = "rejected"
	ReportStatusRevisionRequired ReportStatus = "revision_required"
)

func (s *ReportStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = ReportStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = ReportStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s ReportStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type ReportModel struct {
	ReportID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:report_id" json:"report_id"`
	ReportUserID uuid.UUID `gorm:"type:uuid;not null;index;column:report_user_id" json:"report_user_id"`

	ReportTitle       string  `gorm:"type:varchar(255);not null;column:report_title" json:"report_title"`
	ReportDescription *string `gorm:"type:text;column:report_description" json:"report_description,omitempty"`
	ReportFileURL     *string `gorm:"type:text;column:report_file_url" json:"report_file_url,omitempty"`

	ReportStatus ReportStatus `gorm:"type:varchar(20);not null;default:'draft';index;column:report_status" json:"report_status"`

	// Stempel waktu pengajuan pertama; submit ulang tidak menggesernya.
	ReportSubmittedAt *time.Time `gorm:"column:report_submitted_at" json:"report_submitted_at,omitempty"`

	// Jejak review admin
	ReportReviewedBy   *uuid.UUID `gorm:"type:uuid;column:report_reviewed_by" json:"report_reviewed_by,omitempty"`
	ReportReviewedAt   *time.Time `gorm:"column:report_reviewed_at" json:"report_reviewed_at,omitempty"`
	ReportReviewNotes  *string    `gorm:"type:text;column:report_review_notes" json:"report_review_notes,omitempty"`

	ReportCreatedAt time.Time      `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
	ReportUpdatedAt *time.Time     `gorm:"column:report_updated_at;autoUpdateTime" json:"report_updated_at,omitempty"`
	ReportDeletedAt gorm.DeletedAt `gorm:"column:report_deleted_at;index" json:"report_deleted_at,omitempty"`
}

func (ReportModel) TableName() string { return "reports" }
