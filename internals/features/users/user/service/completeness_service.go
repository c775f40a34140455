// internals/features/users/user/service/completeness_service.go
package service

import (
	"magangku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== CHECKLIST ===================== */

// Field profil wajib dievaluasi secara deklaratif: satu set key per tipe user,
// bukan rantai kondisi per field.
type profileField struct {
	Key    string
	Filled func(p *model.UserProfileModel) bool
}

func strFilled(v *string) bool { return v != nil && *v != "" }

var profileFieldIndex = map[string]profileField{
	"full_name":           {"full_name", func(p *model.UserProfileModel) bool { return p.UserProfileFullName != "" }},
	"address":             {"address", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfileAddress) }},
	"place_of_birth":      {"place_of_birth", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfilePlaceOfBirth) }},
	"date_of_birth":       {"date_of_birth", func(p *model.UserProfileModel) bool { return p.UserProfileDateOfBirth != nil }},
	"institution_name":    {"institution_name", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfileInstitutionName) }},
	"student_id":          {"student_id", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfileStudentID) }},
	"institution_address": {"institution_address", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfileInstitutionAddress) }},
	"institution_email":   {"institution_email", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfileInstitutionEmail) }},
	"supervisor_name":     {"supervisor_name", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfileSupervisorName) }},
	"supervisor_phone":    {"supervisor_phone", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfileSupervisorPhone) }},
	"placement_unit":      {"placement_unit", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfilePlacementUnit) }},
	"parent_name":         {"parent_name", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfileParentName) }},
	"medical_history":     {"medical_history", func(p *model.UserProfileModel) bool { return strFilled(p.UserProfileMedicalHistory) }},
}

// Key profil wajib per tipe user
var RequiredProfileKeys = map[model.UserType][]string{
	model.UserTypeStudent: {
		"full_name", "address", "place_of_birth", "date_of_birth",
		"institution_name", "student_id", "institution_address", "institution_email",
		"supervisor_name", "supervisor_phone", "placement_unit", "parent_name",
	},
	model.UserTypeGeneral: {
		"full_name", "address", "place_of_birth", "date_of_birth",
		"institution_name", "institution_address", "institution_email",
		"placement_unit", "medical_history",
	},
}

// Jenis dokumen wajib per tipe user
var RequiredDocumentTypes = map[model.UserType][]string{
	model.UserTypeStudent: {
		model.DocumentTypeKTP,
		model.DocumentTypeKTM,
		model.DocumentTypePhoto,
		model.DocumentTypeProposal,
		model.DocumentTypeTranscript,
		model.DocumentTypeStatementLetter,
	},
	model.UserTypeGeneral: {
		model.DocumentTypeKTP,
		model.DocumentTypeKK,
		model.DocumentTypePhoto,
		model.DocumentTypeStatementLetter,
		model.DocumentTypePaymentProof,
	},
}

/* ===================== EVALUASI (pure) ===================== */

// MissingProfileKeys mengembalikan key wajib yang belum terisi. Profil nil → semua key.
func MissingProfileKeys(userType model.UserType, p *model.UserProfileModel) []string {
	required := RequiredProfileKeys[userType]
	if p == nil {
		return append([]string(nil), required...)
	}
	var missing []string
	for _, key := range required {
		f, ok := profileFieldIndex[key]
		if !ok || !f.Filled(p) {
			missing = append(missing, key)
		}
	}
	return missing
}

// MissingDocumentTypes mengembalikan jenis dokumen wajib yang belum diupload.
func MissingDocumentTypes(userType model.UserType, uploaded []string) []string {
	have := make(map[string]struct{}, len(uploaded))
	for _, t := range uploaded {
		have[t] = struct{}{}
	}
	var missing []string
	for _, t := range RequiredDocumentTypes[userType] {
		if _, ok := have[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

/* ===================== SERVICE ===================== */

type CompletenessService struct {
	DB *gorm.DB
}

func NewCompletenessService(db *gorm.DB) *CompletenessService {
	return &CompletenessService{DB: db}
}

// Refresh menghitung ulang flag kelengkapan profil & dokumen lalu menyimpannya ke users.
// Dipanggil setiap kali profil atau dokumen berubah.
func (s *CompletenessService) Refresh(db *gorm.DB, userID uuid.UUID) error {
	if db == nil {
		db = s.DB
	}

	var user model.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return err
	}

	var profile model.UserProfileModel
	var profilePtr *model.UserProfileModel
	if err := db.Where("user_profile_user_id = ?", userID).First(&profile).Error; err == nil {
		profilePtr = &profile
	}

	var docTypes []string
	if err := db.Model(&model.DocumentModel{}).
		Where("document_user_id = ?", userID).
		Pluck("document_type", &docTypes).Error; err != nil {
		return err
	}

	profileComplete := len(MissingProfileKeys(user.UserType, profilePtr)) == 0
	documentsComplete := len(MissingDocumentTypes(user.UserType, docTypes)) == 0

	return db.Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"user_is_profile_complete":   profileComplete,
			"user_is_documents_complete": documentsComplete,
		}).Error
}
