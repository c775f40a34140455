// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "magangku_backend/internals/features/users/auth/dto"
	authService "magangku_backend/internals/features/users/auth/service"
	uDTO "magangku_backend/internals/features/users/user/dto"
	helper "magangku_backend/internals/helpers"
)

type AuthController struct {
	Service *authService.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: authService.NewAuthService(db)}
}

/* ===================== HANDLERS ===================== */

// POST /api/auth/login/admin
func (h *AuthController) LoginAdmin(c *fiber.Ctx) error {
	var req authDTO.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	user, token, err := h.Service.LoginAdmin(req.Username, req.Password)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	authService.SetAuthCookie(c, token)
	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        uDTO.NewUserResponse(user),
	})
}

// POST /api/auth/login
func (h *AuthController) LoginParticipant(c *fiber.Ctx) error {
	var req authDTO.ParticipantLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	user, token, err := h.Service.LoginParticipant(req.Username, req.AccessCode)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	authService.SetAuthCookie(c, token)
	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        uDTO.NewUserResponse(user),
	})
}

// POST /api/auth/logout (di belakang auth middleware)
func (h *AuthController) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}
	if err := h.Service.Logout(token); err != nil {
		return helper.JsonFiberError(c, err)
	}
	authService.ClearAuthCookie(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return c.Cookies("access_token")
}
