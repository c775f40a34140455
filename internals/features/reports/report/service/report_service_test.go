package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	reportModel "magangku_backend/internals/features/reports/report/model"
)

func TestCanSubmit(t *testing.T) {
	assert.True(t, CanSubmit(reportModel.ReportStatusDraft))
	assert.True(t, CanSubmit(reportModel.ReportStatusRevisionRequired))

	assert.False(t, CanSubmit(reportModel.ReportStatusSubmitted))
	assert.False(t, CanSubmit(reportModel.ReportStatusUnderReview))
	assert.False(t, CanSubmit(reportModel.ReportStatusApproved))
	assert.False(t, CanSubmit(reportModel.ReportStatusRejected))
}

func TestCanReview(t *testing.T) {
	tests := []struct {
		from reportModel.ReportStatus
		to   reportModel.ReportStatus
		want bool
	}{
		{reportModel.ReportStatusSubmitted, reportModel.ReportStatusUnderReview, true},
		{reportModel.ReportStatusSubmitted, reportModel.ReportStatusApproved, true},
		{reportModel.ReportStatusSubmitted, reportModel.ReportStatusRejected, true},
		{reportModel.ReportStatusSubmitted, reportModel.ReportStatusRevisionRequired, true},
		{reportModel.ReportStatusUnderReview, reportModel.ReportStatusApproved, true},
		{reportModel.ReportStatusUnderReview, reportModel.ReportStatusRevisionRequired, true},

		// draft belum bisa direview
		{reportModel.ReportStatusDraft, reportModel.ReportStatusApproved, false},
		// status terminal tidak bergerak lagi
		{reportModel.ReportStatusApproved, reportModel.ReportStatusRejected, false},
		{reportModel.ReportStatusRejected, reportModel.ReportStatusApproved, false},
		// revision_required menunggu submit ulang peserta, bukan aksi admin
		{reportModel.ReportStatusRevisionRequired, reportModel.ReportStatusApproved, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanReview(tt.from, tt.to))
		})
	}
}
