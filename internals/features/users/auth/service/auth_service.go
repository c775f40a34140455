// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "magangku_backend/internals/features/users/auth/model"
	uModel "magangku_backend/internals/features/users/user/model"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

/* ===================== LOGIN ===================== */

// LoginAdmin memverifikasi username + password (bcrypt) untuk akun admin.
func (s *AuthService) LoginAdmin(username, password string) (*uModel.UserModel, string, error) {
	user, err := s.findActiveByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if user.UserType != uModel.UserTypeAdmin {
		return nil, "", fiber.NewError(fiber.StatusForbidden, "Akun ini bukan akun admin")
	}
	if user.UserPasswordHash == nil || !CheckSecret(*user.UserPasswordHash, password) {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginParticipant memverifikasi username + kode akses untuk peserta (student/general).
// Kode akses baru ada setelah pendaftaran disetujui.
func (s *AuthService) LoginParticipant(username, accessCode string) (*uModel.UserModel, string, error) {
	user, err := s.findActiveByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if user.UserType == uModel.UserTypeAdmin {
		return nil, "", fiber.NewError(fiber.StatusForbidden, "Gunakan login admin")
	}
	if !user.HasAccessCredential() {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Akun belum memiliki kode akses. Tunggu persetujuan pendaftaran")
	}
	if !CheckSecret(*user.UserAccessCodeHash, accessCode) {
		return nil, "", fiber.NewError(fiber.StatusUnauthorized, "Username atau kode akses salah")
	}

	token, err := GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

/* ===================== LOGOUT ===================== */

// Logout memasukkan token ke blacklist sampai kadaluarsa. Token ganda tidak dianggap error.
func (s *AuthService) Logout(tokenString string) error {
	entry := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     tokenString,
		TokenBlacklistExpiredAt: TokenExpiry(tokenString),
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}
	return nil
}

/* ===================== HELPERS ===================== */

func (s *AuthService) findActiveByUsername(username string) (*uModel.UserModel, error) {
	var user uModel.UserModel
	err := s.DB.Where("user_username = ?", strings.ToLower(strings.TrimSpace(username))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Username atau kredensial salah")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	return &user, nil
}
