// internals/features/registrations/placement_units/service/quota_service.go
package service

import (
	"gorm.io/gorm"

	"github.com/google/uuid"

	puModel "magangku_backend/internals/features/registrations/placement_units/model"
	regModel "magangku_backend/internals/features/registrations/registrations/model"
	uModel "magangku_backend/internals/features/users/user/model"
)

/* ===================== ARITMATIKA KUOTA (pure) ===================== */

// QuotaFor memilih kapasitas unit sesuai tipe peserta.
// Pelajar dan umum punya pool kuota masing-masing; satu pool penuh
// tidak menutup pool yang lain.
func QuotaFor(unit *puModel.PlacementUnitModel, userType uModel.UserType) int {
	if userType == uModel.UserTypeStudent {
		return unit.PlacementUnitStudentQuota
	}
	return unit.PlacementUnitGeneralQuota
}

// AvailableQuota tidak pernah negatif walau kuota diturunkan di bawah pemakaian.
func AvailableQuota(quota int, used int64) int64 {
	available := int64(quota) - used
	if available < 0 {
		return 0
	}
	return available
}

// CanApprove: satu slot masih tersedia untuk persetujuan baru.
func CanApprove(quota int, used int64) bool {
	return used < int64(quota)
}

/* ===================== QUERY ===================== */

// UsedQuota menghitung pendaftaran pemakai kuota pada unit tersebut,
// hanya untuk tipe peserta yang diminta. Saat dipanggil di dalam transaksi
// persetujuan, tx harus sudah memegang lock FOR UPDATE pada baris unit
// agar hitungan tidak balapan.
func UsedQuota(tx *gorm.DB, unitID uuid.UUID, userType uModel.UserType) (int64, error) {
	var used int64
	err := tx.Model(&regModel.RegistrationModel{}).
		Where("registration_placement_unit_id = ?", unitID).
		Where("registration_user_type = ?", userType).
		Where("registration_status IN ?", regModel.QuotaConsumingStatuses).
		Count(&used).Error
	return used, err
}
