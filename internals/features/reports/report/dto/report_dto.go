// internals/features/reports/report/dto/report_dto.go
package dto

import (
	"github.com/google/uuid"

	reportModel "magangku_backend/internals/features/reports/report/model"
)

/* ===================== REQUESTS ===================== */

type CreateReportRequest struct {
	ReportTitle       string  `json:"report_title" validate:"required,min=3,max=255"`
	ReportDescription *string `json:"report_description" validate:"omitempty"`
	ReportFileURL     *string `json:"report_file_url" validate:"omitempty,url"`
}

func (r *CreateReportRequest) ToModel(userID uuid.UUID) *reportModel.ReportModel {
	return &reportModel.ReportModel{
		ReportUserID:      userID,
		ReportTitle:       r.ReportTitle,
		ReportDescription: r.ReportDescription,
		ReportFileURL:     r.ReportFileURL,
		ReportStatus:      reportModel.ReportStatusDraft,
	}
}

type UpdateReportRequest struct {
	ReportTitle       *string `json:"report_title" validate:"omitempty,min=3,max=255"`
	ReportDescription *string `json:"report_description" validate:"omitempty"`
	ReportFileURL     *string `json:"report_file_url" validate:"omitempty,url"`
}

func (r *UpdateReportRequest) ApplyToModel(m *reportModel.ReportModel) {
	if r.ReportTitle != nil {
		m.ReportTitle = *r.ReportTitle
	}
	if r.ReportDescription != nil {
		m.ReportDescription = r.ReportDescription
	}
	if r.ReportFileURL != nil {
		m.ReportFileURL = r.ReportFileURL
	}
}

type ReviewReportRequest struct {
	TargetStatus string  `json:"target_status" validate:"required,oneof=under_review approved rejected revision_required"`
	Notes        *string `json:"notes" validate:"omitempty"`
}

type CreateReportCommentRequest struct {
	Body string `json:"body" validate:"required,min=1"`
}
