// internals/features/certificates/certificate/model/certificate_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sertifikat kelulusan. Baris bersifat final: tidak ada endpoint ubah/hapus,
// nomor dan kode verifikasi tidak pernah diganti setelah terbit.
type CertificateModel struct {
	CertificateID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:certificate_id" json:"certificate_id"`
	CertificateUserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:certificate_user_id" json:"certificate_user_id"`
	CertificateRegistrationID uuid.UUID `gorm:"type:uuid;not null;column:certificate_registration_id" json:"certificate_registration_id"`

	// BBPBAT/CERT/2025/0001
	CertificateNumber string `gorm:"type:varchar(50);unique;not null;column:certificate_number" json:"certificate_number"`
	// 12 hex huruf besar untuk verifikasi publik
	CertificateVerificationCode string `gorm:"type:varchar(12);unique;not null;column:certificate_verification_code" json:"certificate_verification_code"`

	CertificateAttendancePercentage float64 `gorm:"type:double precision;not null;default:0;column:certificate_attendance_percentage" json:"certificate_attendance_percentage"`
	CertificateFileURL              *string `gorm:"type:text;column:certificate_file_url" json:"certificate_file_url,omitempty"`

	CertificateIssuedBy uuid.UUID `gorm:"type:uuid;not null;column:certificate_issued_by" json:"certificate_issued_by"`
	CertificateIssuedAt time.Time `gorm:"not null;column:certificate_issued_at" json:"certificate_issued_at"`

	CertificateCreatedAt time.Time `gorm:"column:certificate_created_at;autoCreateTime" json:"certificate_created_at"`
}

func (CertificateModel) TableName() string { return "certificates" }

var ErrCertificateImmutable = errors.New("sertifikat tidak bisa diubah setelah terbit")

// Hook GORM: menolak update lewat jalur mana pun, bukan sekadar
// mengandalkan tidak adanya endpoint ubah.
func (CertificateModel) BeforeUpdate(tx *gorm.DB) error {
	return ErrCertificateImmutable
}
