package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	regModel "magangku_backend/internals/features/registrations/registrations/model"
	uModel "magangku_backend/internals/features/users/user/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from regModel.RegistrationStatus
		to   regModel.RegistrationStatus
		want bool
	}{
		{regModel.RegistrationStatusPending, regModel.RegistrationStatusApproved, true},
		{regModel.RegistrationStatusPending, regModel.RegistrationStatusRejected, true},
		{regModel.RegistrationStatusApproved, regModel.RegistrationStatusActive, true},
		{regModel.RegistrationStatusActive, regModel.RegistrationStatusCompleted, true},
		{regModel.RegistrationStatusCompleted, regModel.RegistrationStatusGraduated, true},

		// lompat tahap tidak boleh
		{regModel.RegistrationStatusPending, regModel.RegistrationStatusActive, false},
		{regModel.RegistrationStatusApproved, regModel.RegistrationStatusGraduated, false},

		// status terminal
		{regModel.RegistrationStatusRejected, regModel.RegistrationStatusApproved, false},
		{regModel.RegistrationStatusGraduated, regModel.RegistrationStatusActive, false},

		// mundur tidak boleh
		{regModel.RegistrationStatusActive, regModel.RegistrationStatusApproved, false},
		{regModel.RegistrationStatusCompleted, regModel.RegistrationStatusActive, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestFormatUsername(t *testing.T) {
	assert.Equal(t, "pelajar001", FormatUsername(uModel.UserTypeStudent, 1))
	assert.Equal(t, "pelajar042", FormatUsername(uModel.UserTypeStudent, 42))
	assert.Equal(t, "umum007", FormatUsername(uModel.UserTypeGeneral, 7))
	assert.Equal(t, "umum999", FormatUsername(uModel.UserTypeGeneral, 999))
	// di atas 999 angka tetap utuh, tidak dipotong
	assert.Equal(t, "pelajar1000", FormatUsername(uModel.UserTypeStudent, 1000))
}

func TestFormatRegistrationNumber(t *testing.T) {
	assert.Equal(t, "BBPBAT-2025-000001", FormatRegistrationNumber("BBPBAT", 2025, 1))
	assert.Equal(t, "BBPBAT-2025-001234", FormatRegistrationNumber("BBPBAT", 2025, 1234))
}

func TestSequenceScopes(t *testing.T) {
	assert.Equal(t, "username:student", UsernameScope(uModel.UserTypeStudent))
	assert.Equal(t, "username:general", UsernameScope(uModel.UserTypeGeneral))
	assert.Equal(t, "registration:2025", RegistrationNumberScope(2025))
	assert.Equal(t, "certificate:2025", CertificateScope(2025))
}
