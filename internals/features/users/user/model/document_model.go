// internals/features/users/user/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/*
Jenis dokumen peserta:
- "ktp", "ktm", "kk", "photo", "proposal", "transcript",
  "certificate_format", "statement_letter", "payment_proof"
*/
const (
	DocumentTypeKTP               = "ktp"
	DocumentTypeKTM               = "ktm"
	DocumentTypeKK                = "kk"
	DocumentTypePhoto             = "photo"
	DocumentTypeProposal          = "proposal"
	DocumentTypeTranscript        = "transcript"
	DocumentTypeCertificateFormat = "certificate_format"
	DocumentTypeStatementLetter   = "statement_letter"
	DocumentTypePaymentProof      = "payment_proof"
)

type DocumentModel struct {
	DocumentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:document_id" json:"document_id"`
	DocumentUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_documents_user_type;column:document_user_id" json:"document_user_id"`
	DocumentType   string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_documents_user_type;column:document_type" json:"document_type"`

	// Referensi file opak (storage eksternal); isi file tidak pernah dibaca backend
	DocumentFileURL          string `gorm:"type:text;not null;column:document_file_url" json:"document_file_url"`
	DocumentOriginalFilename string `gorm:"type:varchar(255);not null;column:document_original_filename" json:"document_original_filename"`
	DocumentFileSize         int64  `gorm:"not null;default:0;column:document_file_size" json:"document_file_size"`

	// Verifikasi admin
	DocumentIsVerified bool       `gorm:"not null;default:false;column:document_is_verified" json:"document_is_verified"`
	DocumentVerifiedBy *uuid.UUID `gorm:"type:uuid;column:document_verified_by" json:"document_verified_by,omitempty"`
	DocumentVerifiedAt *time.Time `gorm:"column:document_verified_at" json:"document_verified_at,omitempty"`

	DocumentCreatedAt time.Time  `gorm:"column:document_created_at;autoCreateTime" json:"document_created_at"`
	DocumentUpdatedAt *time.Time `gorm:"column:document_updated_at;autoUpdateTime" json:"document_updated_at,omitempty"`
}

func (DocumentModel) TableName() string { return "documents" }
