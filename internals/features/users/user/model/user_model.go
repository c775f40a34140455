// internals/features/users/user/model/user_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Tipe user (sesuai ENUM di DB):
- "student" → pelajar/mahasiswa
- "general" → masyarakat umum/dinas
- "admin"   → administrator balai
*/
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeGeneral UserType = "general"
	UserTypeAdmin   UserType = "admin"
)

// Pastikan selalu lower-case saat scan/save
func (t *UserType) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*t = UserType(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*t = UserType(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*t = ""
	}
	return nil
}
func (t UserType) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(t))), nil
}

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserType     UserType `gorm:"type:varchar(20);not null;default:'student';column:user_type" json:"user_type"`
	UserUsername string   `gorm:"type:varchar(50);unique;not null;column:user_username" json:"user_username"`

	// Kredensial: admin pakai password, peserta pakai access code bersama.
	// Keduanya disimpan sebagai hash bcrypt.
	UserPasswordHash   *string `gorm:"column:user_password_hash" json:"-"`
	UserAccessCodeHash *string `gorm:"column:user_access_code_hash" json:"-"`

	// Kontak & identitas dasar
	UserEmail       *string `gorm:"type:varchar(255);column:user_email" json:"user_email,omitempty"`
	UserFullName    string  `gorm:"type:varchar(255);not null;column:user_full_name" json:"user_full_name"`
	UserPhoneNumber *string `gorm:"type:varchar(17);column:user_phone_number" json:"user_phone_number,omitempty"`
	UserInstitution *string `gorm:"type:varchar(255);column:user_institution" json:"user_institution,omitempty"`

	// Nomor registrasi: PREFIX-<tahun>-<urut 6 digit>, diisi saat pembuatan user
	UserRegistrationNumber *string `gorm:"type:varchar(50);unique;column:user_registration_number" json:"user_registration_number,omitempty"`

	// Flag kelengkapan (diturunkan dari checklist, bukan diisi manual)
	UserIsProfileComplete   bool `gorm:"not null;default:false;column:user_is_profile_complete" json:"user_is_profile_complete"`
	UserIsDocumentsComplete bool `gorm:"not null;default:false;column:user_is_documents_complete" json:"user_is_documents_complete"`
	UserIsPaymentComplete   bool `gorm:"not null;default:false;column:user_is_payment_complete" json:"user_is_payment_complete"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	// Audit
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// HasAccessCredential: peserta dianggap sudah punya kredensial kalau access code sudah pernah diterbitkan.
func (u *UserModel) HasAccessCredential() bool {
	return u.UserAccessCodeHash != nil && *u.UserAccessCodeHash != ""
}
