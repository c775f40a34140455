// internals/features/registrations/placement_units/controller/placement_unit_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	puDTO "magangku_backend/internals/features/registrations/placement_units/dto"
	puModel "magangku_backend/internals/features/registrations/placement_units/model"
	puService "magangku_backend/internals/features/registrations/placement_units/service"
	uModel "magangku_backend/internals/features/users/user/model"
	helper "magangku_backend/internals/helpers"
)

type PlacementUnitController struct {
	DB *gorm.DB
}

func NewPlacementUnitController(db *gorm.DB) *PlacementUnitController {
	return &PlacementUnitController{DB: db}
}

// unitResponse menghitung pemakaian kedua pool kuota untuk satu unit.
func (h *PlacementUnitController) unitResponse(unit *puModel.PlacementUnitModel) (*puDTO.PlacementUnitResponse, error) {
	studentUsed, err := puService.UsedQuota(h.DB, unit.PlacementUnitID, uModel.UserTypeStudent)
	if err != nil {
		return nil, err
	}
	generalUsed, err := puService.UsedQuota(h.DB, unit.PlacementUnitID, uModel.UserTypeGeneral)
	if err != nil {
		return nil, err
	}
	return puDTO.NewPlacementUnitResponse(unit,
		puDTO.QuotaUsage{
			Quota:     unit.PlacementUnitStudentQuota,
			Used:      studentUsed,
			Available: puService.AvailableQuota(unit.PlacementUnitStudentQuota, studentUsed),
		},
		puDTO.QuotaUsage{
			Quota:     unit.PlacementUnitGeneralQuota,
			Used:      generalUsed,
			Available: puService.AvailableQuota(unit.PlacementUnitGeneralQuota, generalUsed),
		},
	), nil
}

/* ===================== HANDLERS (PUBLIK) ===================== */

// GET /api/placement-units
// Dipakai form pendaftaran publik: hanya unit aktif, lengkap dengan sisa kuota per pool.
func (h *PlacementUnitController) ListPublic(c *fiber.Ctx) error {
	var units []puModel.PlacementUnitModel
	if err := h.DB.
		Where("placement_unit_is_active = ?", true).
		Order("placement_unit_name ASC").
		Find(&units).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil unit penempatan")
	}

	items := make([]*puDTO.PlacementUnitResponse, 0, len(units))
	for i := range units {
		resp, err := h.unitResponse(&units[i])
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kuota")
		}
		items = append(items, resp)
	}
	return helper.JsonOK(c, "ok", items)
}

/* ===================== HANDLERS (ADMIN) ===================== */

// GET /api/a/placement-units (termasuk unit nonaktif)
func (h *PlacementUnitController) List(c *fiber.Ctx) error {
	var units []puModel.PlacementUnitModel
	if err := h.DB.Order("placement_unit_name ASC").Find(&units).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil unit penempatan")
	}

	items := make([]*puDTO.PlacementUnitResponse, 0, len(units))
	for i := range units {
		resp, err := h.unitResponse(&units[i])
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kuota")
		}
		items = append(items, resp)
	}
	return helper.JsonOK(c, "ok", items)
}

// POST /api/a/placement-units
func (h *PlacementUnitController) Create(c *fiber.Ctx) error {
	var req puDTO.CreatePlacementUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	unit := req.ToModel()
	if err := h.DB.Create(unit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama unit sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan unit")
	}
	return helper.JsonCreated(c, "Unit penempatan dibuat", puDTO.NewPlacementUnitResponse(unit,
		puDTO.QuotaUsage{Quota: unit.PlacementUnitStudentQuota, Available: int64(unit.PlacementUnitStudentQuota)},
		puDTO.QuotaUsage{Quota: unit.PlacementUnitGeneralQuota, Available: int64(unit.PlacementUnitGeneralQuota)},
	))
}

// PUT /api/a/placement-units/:id
// Kuota boleh diturunkan di bawah pemakaian; sisa kuota pool itu tinggal dianggap 0.
func (h *PlacementUnitController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req puDTO.UpdatePlacementUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var unit puModel.PlacementUnitModel
	if err := h.DB.Where("placement_unit_id = ?", id).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unit penempatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil unit")
	}

	req.ApplyToModel(&unit)
	if err := h.DB.Save(&unit).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan unit")
	}

	resp, err := h.unitResponse(&unit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kuota")
	}
	return helper.JsonUpdated(c, "Unit penempatan diperbarui", resp)
}

// DELETE /api/a/placement-units/:id (soft delete)
func (h *PlacementUnitController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.Where("placement_unit_id = ?", id).Delete(&puModel.PlacementUnitModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus unit")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Unit penempatan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Unit penempatan dihapus", nil)
}
