// internals/features/registrations/registrations/controller/registration_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	regDTO "magangku_backend/internals/features/registrations/registrations/dto"
	regModel "magangku_backend/internals/features/registrations/registrations/model"
	regService "magangku_backend/internals/features/registrations/registrations/service"
	helper "magangku_backend/internals/helpers"
)

type RegistrationController struct {
	DB      *gorm.DB
	Service *regService.RegistrationService
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{
		DB:      db,
		Service: regService.NewRegistrationService(db),
	}
}

/* ===================== HANDLERS (PUBLIK) ===================== */

// POST /api/registrations
func (h *RegistrationController) Submit(c *fiber.Ctx) error {
	var req regDTO.SubmitRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	resp, err := h.Service.Submit(&req)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonCreated(c, "Pendaftaran diterima. Simpan nomor registrasi Anda", resp)
}

/* ===================== HANDLERS (PESERTA) ===================== */

// GET /api/u/registrations/me
func (h *RegistrationController) MyRegistrations(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var rows []regModel.RegistrationModel
	if err := h.DB.
		Where("registration_user_id = ?", userID).
		Order("registration_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}
	items := make([]*regDTO.RegistrationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, regDTO.NewRegistrationResponse(&rows[i]))
	}
	return helper.JsonOK(c, "ok", items)
}

/* ===================== HANDLERS (ADMIN) ===================== */

// GET /api/a/registrations?status=&placement_unit_id=
func (h *RegistrationController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	orderExpr, err := p.SafeOrderClause(map[string]string{
		"created_at": "registration_created_at",
		"status":     "registration_status",
		"name":       "lower(registration_applicant_name)",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak dikenal")
	}

	dbq := h.DB.Model(&regModel.RegistrationModel{})
	if v := c.Query("status"); v != "" {
		dbq = dbq.Where("registration_status = ?", v)
	}
	if v := c.Query("placement_unit_id"); v != "" {
		unitID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "placement_unit_id tidak valid")
		}
		dbq = dbq.Where("registration_placement_unit_id = ?", unitID)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []regModel.RegistrationModel
	if err := dbq.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*regDTO.RegistrationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, regDTO.NewRegistrationResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPagination(total, p))
}

// GET /api/a/registrations/:id
func (h *RegistrationController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var reg regModel.RegistrationModel
	if err := h.DB.Where("registration_id = ?", id).First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", regDTO.NewRegistrationResponse(&reg))
}

// POST /api/a/registrations/:id/decide
func (h *RegistrationController) Decide(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	adminID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req regDTO.DecideRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	resp, err := h.Service.Decide(id, adminID, &req)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Keputusan tersimpan", resp)
}

// POST /api/a/registrations/:id/advance
func (h *RegistrationController) Advance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req regDTO.AdvanceRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	reg, err := h.Service.Advance(id, regModel.RegistrationStatus(req.TargetStatus))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status pendaftaran diperbarui", regDTO.NewRegistrationResponse(reg))
}

// GET /api/a/registrations/stats
func (h *RegistrationController) Stats(c *fiber.Ctx) error {
	stats, err := h.Service.Stats()
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", stats)
}

/* ===================== PERIODE PENDAFTARAN ===================== */

// GET /api/a/registration-periods
func (h *RegistrationController) ListPeriods(c *fiber.Ctx) error {
	var rows []regModel.RegistrationPeriodModel
	if err := h.DB.Order("registration_period_start_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil periode")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/a/registration-periods
func (h *RegistrationController) CreatePeriod(c *fiber.Ctx) error {
	var req regDTO.UpsertRegistrationPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	period := regModel.RegistrationPeriodModel{
		RegistrationPeriodName:      req.RegistrationPeriodName,
		RegistrationPeriodStartDate: req.RegistrationPeriodStartDate,
		RegistrationPeriodEndDate:   req.RegistrationPeriodEndDate,
		RegistrationPeriodIsOpen:    true,
	}
	if req.RegistrationPeriodIsOpen != nil {
		period.RegistrationPeriodIsOpen = *req.RegistrationPeriodIsOpen
	}
	if err := h.DB.Create(&period).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan periode")
	}
	return helper.JsonCreated(c, "Periode pendaftaran dibuat", period)
}

// PUT /api/a/registration-periods/:id
func (h *RegistrationController) UpdatePeriod(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req regDTO.UpsertRegistrationPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var period regModel.RegistrationPeriodModel
	if err := h.DB.Where("registration_period_id = ?", id).First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Periode tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil periode")
	}

	period.RegistrationPeriodName = req.RegistrationPeriodName
	period.RegistrationPeriodStartDate = req.RegistrationPeriodStartDate
	period.RegistrationPeriodEndDate = req.RegistrationPeriodEndDate
	if req.RegistrationPeriodIsOpen != nil {
		period.RegistrationPeriodIsOpen = *req.RegistrationPeriodIsOpen
	}
	if err := h.DB.Save(&period).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan periode")
	}
	return helper.JsonUpdated(c, "Periode pendaftaran diperbarui", period)
}
