// internals/features/attendance/attendance/controller/attendance_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attDTO "magangku_backend/internals/features/attendance/attendance/dto"
	attModel "magangku_backend/internals/features/attendance/attendance/model"
	attService "magangku_backend/internals/features/attendance/attendance/service"
	helper "magangku_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *attService.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:      db,
		Service: attService.NewAttendanceService(db),
	}
}

/* ===================== HANDLERS (PESERTA) ===================== */

// POST /api/u/attendance/check-in
func (h *AttendanceController) CheckIn(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req attDTO.CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	record, err := h.Service.CheckIn(userID, req.Latitude, req.Longitude, time.Now())
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonCreated(c, "Check-in tercatat", record)
}

// POST /api/u/attendance/check-out
func (h *AttendanceController) CheckOut(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req attDTO.CheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	record, err := h.Service.CheckOut(userID, req.Latitude, req.Longitude, time.Now())
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Check-out tercatat", record)
}

// GET /api/u/attendance/me?year=&month=
func (h *AttendanceController) MyHistory(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return h.historyFor(c, userID)
}

// GET /api/u/attendance/me/stats?year=&month=
func (h *AttendanceController) MyMonthlyStats(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	year, month := yearMonthQuery(c)
	stats, err := h.Service.MonthlyStatsFor(userID, year, month)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", stats)
}

/* ===================== HANDLERS (ADMIN) ===================== */

// GET /api/a/attendance/users/:id?year=&month=
func (h *AttendanceController) HistoryByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	return h.historyFor(c, userID)
}

// GET /api/a/attendance/users/:id/stats?year=&month=
func (h *AttendanceController) StatsByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	year, month := yearMonthQuery(c)
	stats, err := h.Service.MonthlyStatsFor(userID, year, month)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", stats)
}

// POST /api/a/attendance/mark
func (h *AttendanceController) MarkStatus(c *fiber.Ctx) error {
	var req attDTO.MarkStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	record, err := h.Service.MarkStatus(userID, req.Date, attModel.AttendanceStatus(req.Status), req.Notes)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status presensi disimpan", record)
}

// GET /api/a/attendance/settings
func (h *AttendanceController) GetSettings(c *fiber.Ctx) error {
	var m attModel.AttendanceSettingsModel
	if err := h.DB.First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
	return helper.JsonOK(c, "ok", m)
}

// PUT /api/a/attendance/settings
// Snapshot in-memory diganti setelah commit supaya request berikutnya
// langsung memakai pengaturan baru.
func (h *AttendanceController) UpdateSettings(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req attDTO.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if err := validateClockFields(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m attModel.AttendanceSettingsModel
	if err := h.DB.First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}

	req.ApplyToModel(&m)
	m.AttendanceSettingsUpdatedBy = &adminID
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}

	attService.RefreshSettings(&m)
	return helper.JsonUpdated(c, "Pengaturan presensi diperbarui", m)
}

/* ===================== HELPERS ===================== */

func (h *AttendanceController) historyFor(c *fiber.Ctx, userID uuid.UUID) error {
	year, month := yearMonthQuery(c)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var rows []attModel.AttendanceRecordModel
	if err := h.DB.
		Where("attendance_record_user_id = ?", userID).
		Where("attendance_record_date >= ? AND attendance_record_date < ?",
			start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("attendance_record_date ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil presensi")
	}
	return helper.JsonOK(c, "ok", rows)
}

func yearMonthQuery(c *fiber.Ctx) (int, int) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v, err := strconv.Atoi(c.Query("year")); err == nil && v >= 2000 && v <= 2100 {
		year = v
	}
	if v, err := strconv.Atoi(c.Query("month")); err == nil && v >= 1 && v <= 12 {
		month = v
	}
	return year, month
}

func validateClockFields(req *attDTO.UpdateSettingsRequest) error {
	for _, v := range []*string{
		req.AttendanceSettingsCheckInStart,
		req.AttendanceSettingsCheckInEnd,
		req.AttendanceSettingsCheckOutStart,
		req.AttendanceSettingsCheckOutEnd,
	} {
		if v == nil {
			continue
		}
		if _, err := attService.ParseClock(*v); err != nil {
			return err
		}
	}
	return nil
}
