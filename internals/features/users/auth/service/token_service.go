// internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"magangku_backend/internals/configs"
	uModel "magangku_backend/internals/features/users/user/model"
)

const tokenLifetime = 24 * time.Hour

// GenerateToken membuat JWT HS256 berisi identitas user untuk auth middleware.
func GenerateToken(user *uModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT secret belum dikonfigurasi")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.UserID.String(),
		"user_id":   user.UserID.String(),
		"user_name": user.UserFullName,
		"role":      string(user.UserType),
		"iat":       now.Unix(),
		"exp":       now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return signed, nil
}

// TokenExpiry membaca klaim exp tanpa memvalidasi ulang; dipakai saat blacklist logout.
func TokenExpiry(tokenString string) time.Time {
	parser := jwt.Parser{SkipClaimsValidation: true}
	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Now().Add(tokenLifetime)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(tokenLifetime)
}

// SetAuthCookie menulis access_token sebagai cookie httpOnly (fallback selain header).
func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(tokenLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
