// internals/features/users/auth/dto/auth_dto.go
package dto

import uDTO "magangku_backend/internals/features/users/user/dto"

/* ===================== REQUESTS ===================== */

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type ParticipantLoginRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=50"`
	AccessCode string `json:"access_code" validate:"required,min=4"`
}

/* ===================== RESPONSES ===================== */

type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	User        *uDTO.UserResponse `json:"user"`
}
