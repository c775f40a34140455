// internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	uModel "magangku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== REQUESTS ===================== */

type UpsertUserProfileRequest struct {
	UserProfileFullName     string          `json:"user_profile_full_name" validate:"required,min=3,max=255"`
	UserProfileAddress      *string         `json:"user_profile_address" validate:"omitempty"`
	UserProfilePlaceOfBirth *string         `json:"user_profile_place_of_birth" validate:"omitempty,max=100"`
	UserProfileDateOfBirth  *datatypes.Date `json:"user_profile_date_of_birth" validate:"omitempty"`
	UserProfileBloodType    *string         `json:"user_profile_blood_type" validate:"omitempty,oneof=A B AB O"`
	UserProfileParentName   *string         `json:"user_profile_parent_name" validate:"omitempty,max=255"`
	UserProfileParentPhone  *string         `json:"user_profile_parent_phone" validate:"omitempty,max=17"`

	UserProfileInstitutionName    *string `json:"user_profile_institution_name" validate:"omitempty,max=255"`
	UserProfileStudentID          *string `json:"user_profile_student_id" validate:"omitempty,max=50"`
	UserProfileInstitutionAddress *string `json:"user_profile_institution_address" validate:"omitempty"`
	UserProfileInstitutionEmail   *string `json:"user_profile_institution_email" validate:"omitempty,email"`
	UserProfileInstitutionPhone   *string `json:"user_profile_institution_phone" validate:"omitempty,max=17"`
	UserProfileSupervisorName     *string `json:"user_profile_supervisor_name" validate:"omitempty,max=255"`
	UserProfileSupervisorPhone    *string `json:"user_profile_supervisor_phone" validate:"omitempty,max=17"`
	UserProfileSupervisorEmail    *string `json:"user_profile_supervisor_email" validate:"omitempty,email"`

	UserProfilePlannedStartDate *datatypes.Date `json:"user_profile_planned_start_date" validate:"omitempty"`
	UserProfilePlannedEndDate   *datatypes.Date `json:"user_profile_planned_end_date" validate:"omitempty"`
	UserProfilePlacementUnit    *string         `json:"user_profile_placement_unit" validate:"omitempty,max=255"`

	UserProfileMedicalHistory *string `json:"user_profile_medical_history" validate:"omitempty"`
	UserProfileSpecialNeeds   *string `json:"user_profile_special_needs" validate:"omitempty"`
}

func (r *UpsertUserProfileRequest) ApplyToModel(m *uModel.UserProfileModel) {
	m.UserProfileFullName = r.UserProfileFullName
	m.UserProfileAddress = r.UserProfileAddress
	m.UserProfilePlaceOfBirth = r.UserProfilePlaceOfBirth
	m.UserProfileDateOfBirth = r.UserProfileDateOfBirth
	m.UserProfileBloodType = r.UserProfileBloodType
	m.UserProfileParentName = r.UserProfileParentName
	m.UserProfileParentPhone = r.UserProfileParentPhone

	m.UserProfileInstitutionName = r.UserProfileInstitutionName
	m.UserProfileStudentID = r.UserProfileStudentID
	m.UserProfileInstitutionAddress = r.UserProfileInstitutionAddress
	m.UserProfileInstitutionEmail = r.UserProfileInstitutionEmail
	m.UserProfileInstitutionPhone = r.UserProfileInstitutionPhone
	m.UserProfileSupervisorName = r.UserProfileSupervisorName
	m.UserProfileSupervisorPhone = r.UserProfileSupervisorPhone
	m.UserProfileSupervisorEmail = r.UserProfileSupervisorEmail

	m.UserProfilePlannedStartDate = r.UserProfilePlannedStartDate
	m.UserProfilePlannedEndDate = r.UserProfilePlannedEndDate
	m.UserProfilePlacementUnit = r.UserProfilePlacementUnit

	m.UserProfileMedicalHistory = r.UserProfileMedicalHistory
	m.UserProfileSpecialNeeds = r.UserProfileSpecialNeeds
}

type CreateDocumentRequest struct {
	DocumentType             string `json:"document_type" validate:"required,oneof=ktp ktm kk photo proposal transcript certificate_format statement_letter payment_proof"`
	DocumentFileURL          string `json:"document_file_url" validate:"required,url"`
	DocumentOriginalFilename string `json:"document_original_filename" validate:"required,max=255"`
	DocumentFileSize         int64  `json:"document_file_size" validate:"omitempty,min=0"`
}

func (r *CreateDocumentRequest) ToModel(userID uuid.UUID) *uModel.DocumentModel {
	return &uModel.DocumentModel{
		DocumentUserID:           userID,
		DocumentType:             r.DocumentType,
		DocumentFileURL:          r.DocumentFileURL,
		DocumentOriginalFilename: r.DocumentOriginalFilename,
		DocumentFileSize:         r.DocumentFileSize,
	}
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID                 uuid.UUID       `json:"user_id"`
	UserType               uModel.UserType `json:"user_type"`
	UserUsername           string          `json:"user_username"`
	UserFullName           string          `json:"user_full_name"`
	UserEmail              *string         `json:"user_email,omitempty"`
	UserPhoneNumber        *string         `json:"user_phone_number,omitempty"`
	UserInstitution        *string         `json:"user_institution,omitempty"`
	UserRegistrationNumber *string         `json:"user_registration_number,omitempty"`

	UserIsProfileComplete   bool `json:"user_is_profile_complete"`
	UserIsDocumentsComplete bool `json:"user_is_documents_complete"`
	UserIsPaymentComplete   bool `json:"user_is_payment_complete"`
	UserIsActive            bool `json:"user_is_active"`

	UserCreatedAt time.Time `json:"user_created_at"`
}

func NewUserResponse(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:                  m.UserID,
		UserType:                m.UserType,
		UserUsername:            m.UserUsername,
		UserFullName:            m.UserFullName,
		UserEmail:               m.UserEmail,
		UserPhoneNumber:         m.UserPhoneNumber,
		UserInstitution:         m.UserInstitution,
		UserRegistrationNumber:  m.UserRegistrationNumber,
		UserIsProfileComplete:   m.UserIsProfileComplete,
		UserIsDocumentsComplete: m.UserIsDocumentsComplete,
		UserIsPaymentComplete:   m.UserIsPaymentComplete,
		UserIsActive:            m.UserIsActive,
		UserCreatedAt:           m.UserCreatedAt,
	}
}

type CompletenessResponse struct {
	ProfileComplete     bool     `json:"profile_complete"`
	DocumentsComplete   bool     `json:"documents_complete"`
	MissingProfileKeys  []string `json:"missing_profile_keys"`
	MissingDocumentKeys []string `json:"missing_document_keys"`
}
