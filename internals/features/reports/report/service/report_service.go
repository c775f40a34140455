// internals/features/reports/report/service/report_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reportModel "magangku_backend/internals/features/reports/report/model"
)

/* ===================== TRANSISI STATUS (pure) ===================== */

// Tabel transisi review. approved dan rejected terminal;
// revision_required kembali ke tangan peserta (submit ulang).
var reviewTransitions = map[reportModel.ReportStatus][]reportModel.ReportStatus{
	reportModel.ReportStatusSubmitted: {
		reportModel.ReportStatusUnderReview,
		reportModel.ReportStatusApproved,
		reportModel.ReportStatusRejected,
		reportModel.ReportStatusRevisionRequired,
	},
	reportModel.ReportStatusUnderReview: {
		reportModel.ReportStatusApproved,
		reportModel.ReportStatusRejected,
		reportModel.ReportStatusRevisionRequired,
	},
}

func CanReview(from, to reportModel.ReportStatus) bool {
	for _, next := range reviewTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanSubmit: draft pertama kali, atau pengajuan ulang setelah diminta revisi.
func CanSubmit(from reportModel.ReportStatus) bool {
	return from == reportModel.ReportStatusDraft || from == reportModel.ReportStatusRevisionRequired
}

/* ===================== SERVICE ===================== */

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// Submit mengajukan laporan. Stempel submitted_at hanya diisi sekali;
// submit ulang setelah revisi mempertahankan stempel pengajuan pertama.
func (s *ReportService) Submit(reportID, userID uuid.UUID) (*reportModel.ReportModel, error) {
	var report reportModel.ReportModel
	if err := s.DB.Where("report_id = ?", reportID).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	if report.ReportUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Laporan ini bukan milik Anda")
	}
	if !CanSubmit(report.ReportStatus) {
		return nil, fiber.NewError(fiber.StatusConflict, "Laporan tidak bisa diajukan dari status "+string(report.ReportStatus))
	}

	report.ReportStatus = reportModel.ReportStatusSubmitted
	if report.ReportSubmittedAt == nil {
		now := time.Now()
		report.ReportSubmittedAt = &now
	}
	if err := s.DB.Save(&report).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan laporan")
	}
	return &report, nil
}

// Review memindahkan status oleh admin, dengan jejak reviewer.
func (s *ReportService) Review(reportID, adminID uuid.UUID, target reportModel.ReportStatus, notes *string) (*reportModel.ReportModel, error) {
	var report reportModel.ReportModel
	if err := s.DB.Where("report_id = ?", reportID).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	if !CanReview(report.ReportStatus, target) {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Transisi status dari "+string(report.ReportStatus)+" ke "+string(target)+" tidak diizinkan")
	}

	now := time.Now()
	report.ReportStatus = target
	report.ReportReviewedBy = &adminID
	report.ReportReviewedAt = &now
	report.ReportReviewNotes = notes
	if err := s.DB.Save(&report).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan review")
	}
	return &report, nil
}
