// internals/features/users/user/controller/document_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	uDTO "magangku_backend/internals/features/users/user/dto"
	uModel "magangku_backend/internals/features/users/user/model"
	uService "magangku_backend/internals/features/users/user/service"
	helper "magangku_backend/internals/helpers"
)

type DocumentController struct {
	DB           *gorm.DB
	Completeness *uService.CompletenessService
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{
		DB:           db,
		Completeness: uService.NewCompletenessService(db),
	}
}

/* ===================== HANDLERS (PESERTA) ===================== */

// GET /api/u/documents
func (h *DocumentController) MyDocuments(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var rows []uModel.DocumentModel
	if err := h.DB.
		Where("document_user_id = ?", userID).
		Order("document_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dokumen")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/u/documents
// Upload ulang jenis yang sama menimpa baris lama dan mereset status verifikasi.
func (h *DocumentController) Upsert(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req uDTO.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.DocumentType = strings.ToLower(strings.TrimSpace(req.DocumentType))
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	doc := req.ToModel(userID)
	if err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "document_user_id"}, {Name: "document_type"}},
		DoUpdates: clause.Assignments(map[string]any{
			"document_file_url":          doc.DocumentFileURL,
			"document_original_filename": doc.DocumentOriginalFilename,
			"document_file_size":         doc.DocumentFileSize,
			"document_is_verified":       false,
			"document_verified_by":       nil,
			"document_verified_at":       nil,
		}),
	}).Create(doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan dokumen")
	}

	if err := h.Completeness.Refresh(h.DB, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status kelengkapan")
	}
	return helper.JsonCreated(c, "Dokumen disimpan", doc)
}

/* ===================== HANDLERS (ADMIN) ===================== */

// GET /api/a/users/:id/documents
func (h *DocumentController) ListByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var rows []uModel.DocumentModel
	if err := h.DB.
		Where("document_user_id = ?", userID).
		Order("document_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dokumen")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/a/documents/:id/verify
func (h *DocumentController) Verify(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	adminID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var doc uModel.DocumentModel
	if err := h.DB.Where("document_id = ?", docID).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Dokumen tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dokumen")
	}

	now := time.Now()
	doc.DocumentIsVerified = true
	doc.DocumentVerifiedBy = &adminID
	doc.DocumentVerifiedAt = &now
	if err := h.DB.Save(&doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui dokumen")
	}
	return helper.JsonUpdated(c, "Dokumen diverifikasi", doc)
}
