// internals/features/reports/report/model/report_comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Komentar diskusi pada laporan (peserta maupun admin).
type ReportCommentModel struct {
	ReportCommentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:report_comment_id" json:"report_comment_id"`
	ReportCommentReportID uuid.UUID `gorm:"type:uuid;not null;index;column:report_comment_report_id" json:"report_comment_report_id"`
	ReportCommentUserID   uuid.UUID `gorm:"type:uuid;not null;column:report_comment_user_id" json:"report_comment_user_id"`

	ReportCommentBody string `gorm:"type:text;not null;column:report_comment_body" json:"report_comment_body"`

	ReportCommentCreatedAt time.Time `gorm:"column:report_comment_created_at;autoCreateTime" json:"report_comment_created_at"`
}

func (ReportCommentModel) TableName() string { return "report_comments" }
