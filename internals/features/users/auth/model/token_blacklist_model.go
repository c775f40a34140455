// internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Token yang sudah di-logout disimpan di sini sampai kadaluarsa.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"type:text;not null;uniqueIndex;column:token_blacklist_token" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time `gorm:"not null;column:token_blacklist_expired_at" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;autoCreateTime" json:"token_blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklists" }
