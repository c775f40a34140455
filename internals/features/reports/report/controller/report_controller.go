// internals/features/reports/report/controller/report_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reportDTO "magangku_backend/internals/features/reports/report/dto"
	reportModel "magangku_backend/internals/features/reports/report/model"
	reportService "magangku_backend/internals/features/reports/report/service"
	helper "magangku_backend/internals/helpers"
)

type ReportController struct {
	DB      *gorm.DB
	Service *reportService.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		DB:      db,
		Service: reportService.NewReportService(db),
	}
}

/* ===================== HANDLERS (PESERTA) ===================== */

// GET /api/u/reports
func (h *ReportController) MyReports(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var rows []reportModel.ReportModel
	if err := h.DB.
		Where("report_user_id = ?", userID).
		Order("report_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/u/reports (draft baru)
func (h *ReportController) Create(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req reportDTO.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	report := req.ToModel(userID)
	if err := h.DB.Create(report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan laporan")
	}
	return helper.JsonCreated(c, "Draft laporan dibuat", report)
}

// PUT /api/u/reports/:id (hanya draft / revision_required yang boleh diubah)
func (h *ReportController) Update(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req reportDTO.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var report reportModel.ReportModel
	if err := h.DB.Where("report_id = ?", reportID).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	if report.ReportUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Laporan ini bukan milik Anda")
	}
	if !reportService.CanSubmit(report.ReportStatus) {
		return helper.JsonError(c, fiber.StatusConflict, "Laporan sedang dalam proses review")
	}

	req.ApplyToModel(&report)
	if err := h.DB.Save(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan laporan")
	}
	return helper.JsonUpdated(c, "Laporan diperbarui", report)
}

// POST /api/u/reports/:id/submit
func (h *ReportController) Submit(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	report, err := h.Service.Submit(reportID, userID)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Laporan diajukan", report)
}

/* ===================== HANDLERS (ADMIN) ===================== */

// GET /api/a/reports?status=
func (h *ReportController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	orderExpr, err := p.SafeOrderClause(map[string]string{
		"created_at":   "report_created_at",
		"submitted_at": "report_submitted_at",
		"status":       "report_status",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak dikenal")
	}

	dbq := h.DB.Model(&reportModel.ReportModel{})
	if v := c.Query("status"); v != "" {
		dbq = dbq.Where("report_status = ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []reportModel.ReportModel
	if err := dbq.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPagination(total, p))
}

// POST /api/a/reports/:id/review
func (h *ReportController) Review(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req reportDTO.ReviewReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	report, err := h.Service.Review(reportID, adminID, reportModel.ReportStatus(req.TargetStatus), req.Notes)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Review tersimpan", report)
}

/* ===================== KOMENTAR ===================== */

// GET /api/u/reports/:id/comments (peserta & admin lewat route masing-masing)
func (h *ReportController) ListComments(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var rows []reportModel.ReportCommentModel
	if err := h.DB.
		Where("report_comment_report_id = ?", reportID).
		Order("report_comment_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil komentar")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/u/reports/:id/comments
func (h *ReportController) AddComment(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req reportDTO.CreateReportCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var report reportModel.ReportModel
	if err := h.DB.Where("report_id = ?", reportID).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	comment := reportModel.ReportCommentModel{
		ReportCommentReportID: report.ReportID,
		ReportCommentUserID:   userID,
		ReportCommentBody:     req.Body,
	}
	if err := h.DB.Create(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan komentar")
	}
	return helper.JsonCreated(c, "Komentar ditambahkan", comment)
}
