// internals/features/certificates/certificate/controller/certificate_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	certModel "magangku_backend/internals/features/certificates/certificate/model"
	certService "magangku_backend/internals/features/certificates/certificate/service"
	helper "magangku_backend/internals/helpers"
)

type CertificateController struct {
	DB      *gorm.DB
	Service *certService.CertificateService
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{
		DB:      db,
		Service: certService.NewCertificateService(db),
	}
}

/* ===================== HANDLERS (PUBLIK) ===================== */

// GET /api/certificates/verify/:code
// Pemeriksaan keaslian sertifikat tanpa login.
func (h *CertificateController) Verify(c *fiber.Ctx) error {
	cert, err := h.Service.Verify(c.Params("code"))
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonOK(c, "Sertifikat valid", cert)
}

/* ===================== HANDLERS (PESERTA) ===================== */

// GET /api/u/certificates/me
func (h *CertificateController) MyCertificate(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var cert certModel.CertificateModel
	if err := h.DB.Where("certificate_user_id = ?", userID).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat belum terbit")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}
	return helper.JsonOK(c, "ok", cert)
}

/* ===================== HANDLERS (ADMIN) ===================== */

// GET /api/a/certificates
func (h *CertificateController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "issued_at", "desc", helper.AdminOpts)
	orderExpr, err := p.SafeOrderClause(map[string]string{
		"issued_at": "certificate_issued_at",
		"number":    "certificate_number",
	}, "issued_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak dikenal")
	}

	var total int64
	if err := h.DB.Model(&certModel.CertificateModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []certModel.CertificateModel
	if err := h.DB.Model(&certModel.CertificateModel{}).
		Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPagination(total, p))
}

// POST /api/a/registrations/:id/certificate
func (h *CertificateController) Issue(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	adminID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	cert, err := h.Service.Issue(registrationID, adminID)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonCreated(c, "Sertifikat diterbitkan", cert)
}
