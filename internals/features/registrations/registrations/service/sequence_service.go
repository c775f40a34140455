// internals/features/registrations/registrations/service/sequence_service.go
package service

import (
	"fmt"

	"gorm.io/gorm"

	uModel "magangku_backend/internals/features/users/user/model"
)

/* ===================== ALLOCATOR ===================== */

// NextSequence menaikkan counter untuk scope tertentu secara atomik.
// Satu statement upsert + RETURNING supaya dua request paralel tidak pernah
// mendapat nilai yang sama.
func NextSequence(tx *gorm.DB, scope string) (int64, error) {
	var next int64
	err := tx.Raw(`
		INSERT INTO sequence_counters (sequence_counter_scope, sequence_counter_last_value, sequence_counter_updated_at)
		VALUES (?, 1, NOW())
		ON CONFLICT (sequence_counter_scope)
		DO UPDATE SET
			sequence_counter_last_value = sequence_counters.sequence_counter_last_value + 1,
			sequence_counter_updated_at = NOW()
		RETURNING sequence_counter_last_value
	`, scope).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

/* ===================== SCOPES & FORMAT (pure) ===================== */

func UsernameScope(userType uModel.UserType) string {
	return "username:" + string(userType)
}

func RegistrationNumberScope(year int) string {
	return fmt.Sprintf("registration:%d", year)
}

func CertificateScope(year int) string {
	return fmt.Sprintf("certificate:%d", year)
}

// FormatUsername: pelajar001, umum012, dst. Seq di atas 999 tetap utuh (pelajar1000).
func FormatUsername(userType uModel.UserType, seq int64) string {
	prefix := "umum"
	if userType == uModel.UserTypeStudent {
		prefix = "pelajar"
	}
	return fmt.Sprintf("%s%03d", prefix, seq)
}

// FormatRegistrationNumber: PREFIX-2025-000001
func FormatRegistrationNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%06d", prefix, year, seq)
}
