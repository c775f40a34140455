package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"magangku_backend/internals/features/users/user/model"
)

func strPtr(s string) *string { return &s }

func fullStudentProfile() *model.UserProfileModel {
	dob := datatypes.Date{}
	return &model.UserProfileModel{
		UserProfileFullName:           "Budi Santoso",
		UserProfileAddress:            strPtr("Jl. Sukapura No. 1"),
		UserProfilePlaceOfBirth:       strPtr("Bandung"),
		UserProfileDateOfBirth:        &dob,
		UserProfileInstitutionName:    strPtr("Universitas Padjadjaran"),
		UserProfileStudentID:          strPtr("140810200001"),
		UserProfileInstitutionAddress: strPtr("Jatinangor"),
		UserProfileInstitutionEmail:   strPtr("info@unpad.ac.id"),
		UserProfileSupervisorName:     strPtr("Dr. Siti"),
		UserProfileSupervisorPhone:    strPtr("081234567890"),
		UserProfilePlacementUnit:      strPtr("Lab Kesehatan Ikan"),
		UserProfileParentName:         strPtr("Bapak Santoso"),
		UserProfileMedicalHistory:     strPtr("-"),
	}
}

func TestMissingProfileKeys(t *testing.T) {
	t.Run("profil nil mengembalikan semua key", func(t *testing.T) {
		missing := MissingProfileKeys(model.UserTypeStudent, nil)
		assert.ElementsMatch(t, RequiredProfileKeys[model.UserTypeStudent], missing)
	})

	t.Run("profil lengkap student tidak ada yang kurang", func(t *testing.T) {
		assert.Empty(t, MissingProfileKeys(model.UserTypeStudent, fullStudentProfile()))
	})

	t.Run("satu field kosong terdeteksi", func(t *testing.T) {
		p := fullStudentProfile()
		p.UserProfileStudentID = nil
		missing := MissingProfileKeys(model.UserTypeStudent, p)
		assert.Equal(t, []string{"student_id"}, missing)
	})

	t.Run("string kosong dihitung belum terisi", func(t *testing.T) {
		p := fullStudentProfile()
		p.UserProfileSupervisorPhone = strPtr("")
		missing := MissingProfileKeys(model.UserTypeStudent, p)
		assert.Contains(t, missing, "supervisor_phone")
	})

	t.Run("general tidak butuh student_id tapi butuh medical_history", func(t *testing.T) {
		p := fullStudentProfile()
		p.UserProfileStudentID = nil
		p.UserProfileMedicalHistory = nil
		missing := MissingProfileKeys(model.UserTypeGeneral, p)
		assert.NotContains(t, missing, "student_id")
		assert.Contains(t, missing, "medical_history")
	})
}

func TestMissingDocumentTypes(t *testing.T) {
	tests := []struct {
		name     string
		userType model.UserType
		uploaded []string
		want     []string
	}{
		{
			name:     "student tanpa dokumen",
			userType: model.UserTypeStudent,
			uploaded: nil,
			want:     RequiredDocumentTypes[model.UserTypeStudent],
		},
		{
			name:     "student lengkap",
			userType: model.UserTypeStudent,
			uploaded: []string{"ktp", "ktm", "photo", "proposal", "transcript", "statement_letter"},
			want:     nil,
		},
		{
			name:     "general kurang bukti bayar",
			userType: model.UserTypeGeneral,
			uploaded: []string{"ktp", "kk", "photo", "statement_letter"},
			want:     []string{"payment_proof"},
		},
		{
			name:     "dokumen ekstra tidak mengganggu",
			userType: model.UserTypeGeneral,
			uploaded: []string{"ktp", "kk", "photo", "statement_letter", "payment_proof", "proposal"},
			want:     nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingDocumentTypes(tt.userType, tt.uploaded)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}
