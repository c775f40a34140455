package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	certModel "magangku_backend/internals/features/certificates/certificate/model"
	regModel "magangku_backend/internals/features/registrations/registrations/model"
)

func TestFormatCertificateNumber(t *testing.T) {
	assert.Equal(t, "BBPBAT/CERT/2025/0001", FormatCertificateNumber("BBPBAT", 2025, 1))
	assert.Equal(t, "BBPBAT/CERT/2025/0042", FormatCertificateNumber("BBPBAT", 2025, 42))
	// di atas 9999 angka tetap utuh
	assert.Equal(t, "BBPBAT/CERT/2026/10000", FormatCertificateNumber("BBPBAT", 2026, 10000))
}

func TestNewVerificationCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{12}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := NewVerificationCode()
		assert.Regexp(t, pattern, code)
		seen[code] = struct{}{}
	}
	// 100 kode acak tidak boleh banyak yang tabrakan
	assert.Greater(t, len(seen), 95)
}

func TestCanIssue(t *testing.T) {
	t.Run("hanya graduated yang bisa terbit", func(t *testing.T) {
		assert.True(t, CanIssue(regModel.RegistrationStatusGraduated, false))
		assert.False(t, CanIssue(regModel.RegistrationStatusCompleted, false))
		assert.False(t, CanIssue(regModel.RegistrationStatusActive, false))
		assert.False(t, CanIssue(regModel.RegistrationStatusPending, false))
	})

	t.Run("penerbitan kedua ditolak", func(t *testing.T) {
		assert.False(t, CanIssue(regModel.RegistrationStatusGraduated, true))
	})
}

// Baris sertifikat final: hook update selalu menolak, nomor dan kode
// verifikasi tidak pernah berubah setelah terbit.
func TestCertificateImmutable(t *testing.T) {
	err := certModel.CertificateModel{}.BeforeUpdate(nil)
	assert.ErrorIs(t, err, certModel.ErrCertificateImmutable)
}
