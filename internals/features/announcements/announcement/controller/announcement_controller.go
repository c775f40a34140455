// internals/features/announcements/announcement/controller/announcement_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	annDTO "magangku_backend/internals/features/announcements/announcement/dto"
	annModel "magangku_backend/internals/features/announcements/announcement/model"
	annService "magangku_backend/internals/features/announcements/announcement/service"
	helper "magangku_backend/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

/* ===================== HANDLERS (PESERTA) ===================== */

// GET /api/u/announcements?unit=
// Feed peserta: hanya status published yang belum kedaluwarsa, dengan sasaran
// yang cocok (semua, per tipe peserta, atau unit penempatan peserta).
func (h *AnnouncementController) Feed(c *fiber.Ctx) error {
	var rows []annModel.AnnouncementModel
	if err := h.DB.Model(&annModel.AnnouncementModel{}).
		Where("announcement_status = ?", annModel.AnnouncementStatusPublished).
		Order("announcement_published_at DESC NULLS LAST").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	userType, _ := c.Locals("userRole").(string)
	unit := c.Query("unit")
	now := time.Now()

	items := make([]annModel.AnnouncementModel, 0, len(rows))
	for i := range rows {
		if annService.VisibleTo(&rows[i], userType, unit, now) {
			items = append(items, rows[i])
		}
	}
	return helper.JsonOK(c, "ok", items)
}

/* ===================== HANDLERS (ADMIN) ===================== */

// GET /api/a/announcements
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	orderExpr, err := p.SafeOrderClause(map[string]string{
		"created_at":   "announcement_created_at",
		"published_at": "announcement_published_at",
		"title":        "lower(announcement_title)",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak dikenal")
	}

	var total int64
	if err := h.DB.Model(&annModel.AnnouncementModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []annModel.AnnouncementModel
	if err := h.DB.Model(&annModel.AnnouncementModel{}).
		Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPagination(total, p))
}

// POST /api/a/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req annDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	ann := req.ToModel(adminID)
	if ann.AnnouncementStatus == annModel.AnnouncementStatusPublished {
		now := time.Now()
		ann.AnnouncementPublishedAt = &now
	}
	if err := h.DB.Create(ann).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}
	return helper.JsonCreated(c, "Pengumuman dibuat", ann)
}

// PUT /api/a/announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req annDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var ann annModel.AnnouncementModel
	if err := h.DB.Where("announcement_id = ?", id).First(&ann).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	wasPublished := ann.AnnouncementStatus == annModel.AnnouncementStatusPublished
	req.ApplyToModel(&ann)
	if ann.AnnouncementStatus == annModel.AnnouncementStatusPublished && !wasPublished {
		now := time.Now()
		ann.AnnouncementPublishedAt = &now
	}
	if err := h.DB.Save(&ann).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}
	return helper.JsonUpdated(c, "Pengumuman diperbarui", ann)
}

// DELETE /api/a/announcements/:id (soft delete)
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.Where("announcement_id = ?", id).Delete(&annModel.AnnouncementModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pengumuman dihapus", nil)
}
