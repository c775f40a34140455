// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	uDTO "magangku_backend/internals/features/users/user/dto"
	uModel "magangku_backend/internals/features/users/user/model"
	uService "magangku_backend/internals/features/users/user/service"
	helper "magangku_backend/internals/helpers"
)

type UserController struct {
	DB           *gorm.DB
	Completeness *uService.CompletenessService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:           db,
		Completeness: uService.NewCompletenessService(db),
	}
}

/* ===================== HANDLERS (PESERTA) ===================== */

// GET /api/u/users/me
func (h *UserController) Me(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user uModel.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.JsonOK(c, "ok", uDTO.NewUserResponse(&user))
}

// GET /api/u/users/me/profile
func (h *UserController) MyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var profile uModel.UserProfileModel
	if err := h.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil belum diisi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "ok", profile)
}

// PUT /api/u/users/me/profile, upsert profil lalu hitung ulang kelengkapan
func (h *UserController) UpsertMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req uDTO.UpsertUserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var profile uModel.UserProfileModel
	err = h.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = uModel.UserProfileModel{UserProfileUserID: userID}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	req.ApplyToModel(&profile)
	if err := h.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	if err := h.Completeness.Refresh(h.DB, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status kelengkapan")
	}
	return helper.JsonUpdated(c, "Profil disimpan", profile)
}

// GET /api/u/users/me/completeness, checklist kelengkapan profil & dokumen
func (h *UserController) MyCompleteness(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user uModel.UserModel
	if err := h.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var profile uModel.UserProfileModel
	var profilePtr *uModel.UserProfileModel
	if err := h.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error; err == nil {
		profilePtr = &profile
	}

	var docTypes []string
	if err := h.DB.Model(&uModel.DocumentModel{}).
		Where("document_user_id = ?", userID).
		Pluck("document_type", &docTypes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil dokumen")
	}

	missingProfile := uService.MissingProfileKeys(user.UserType, profilePtr)
	missingDocs := uService.MissingDocumentTypes(user.UserType, docTypes)

	return helper.JsonOK(c, "ok", uDTO.CompletenessResponse{
		ProfileComplete:     len(missingProfile) == 0,
		DocumentsComplete:   len(missingDocs) == 0,
		MissingProfileKeys:  missingProfile,
		MissingDocumentKeys: missingDocs,
	})
}

/* ===================== HANDLERS (ADMIN) ===================== */

// GET /api/a/users
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	orderExpr, err := p.SafeOrderClause(map[string]string{
		"created_at": "user_created_at",
		"username":   "lower(user_username)",
		"full_name":  "lower(user_full_name)",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak dikenal")
	}

	dbq := h.DB.Model(&uModel.UserModel{})
	if v := c.Query("user_type"); v != "" {
		dbq = dbq.Where("user_type = ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []uModel.UserModel
	if err := dbq.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := make([]*uDTO.UserResponse, 0, len(rows))
	for i := range rows {
		items = append(items, uDTO.NewUserResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPagination(total, p))
}

// GET /api/a/users/:id
func (h *UserController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var user uModel.UserModel
	if err := h.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", uDTO.NewUserResponse(&user))
}

/* ===================== HELPERS ===================== */

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, _ := c.Locals("user_id").(string)
	return uuid.Parse(v)
}
