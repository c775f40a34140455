package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	puModel "magangku_backend/internals/features/registrations/placement_units/model"
	uModel "magangku_backend/internals/features/users/user/model"
)

func TestAvailableQuota(t *testing.T) {
	tests := []struct {
		name  string
		quota int
		used  int64
		want  int64
	}{
		{"kosong", 10, 0, 10},
		{"sebagian terpakai", 10, 4, 6},
		{"penuh", 10, 10, 0},
		{"kuota diturunkan di bawah pemakaian", 5, 8, 0},
		{"kuota nol", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableQuota(tt.quota, tt.used))
		})
	}
}

func TestCanApprove(t *testing.T) {
	assert.True(t, CanApprove(10, 9))
	assert.False(t, CanApprove(10, 10))
	assert.False(t, CanApprove(10, 11))
	assert.False(t, CanApprove(0, 0))
}

func TestQuotaFor(t *testing.T) {
	unit := &puModel.PlacementUnitModel{
		PlacementUnitStudentQuota: 2,
		PlacementUnitGeneralQuota: 5,
	}
	assert.Equal(t, 2, QuotaFor(unit, uModel.UserTypeStudent))
	assert.Equal(t, 5, QuotaFor(unit, uModel.UserTypeGeneral))
}

// Pool pelajar dan umum dihitung terpisah: pool pelajar penuh tidak
// menutup slot umum, dan sebaliknya.
func TestQuotaPoolsIndependent(t *testing.T) {
	unit := &puModel.PlacementUnitModel{
		PlacementUnitStudentQuota: 2,
		PlacementUnitGeneralQuota: 5,
	}

	t.Run("pelajar ketiga ditolak saat dua pelajar sudah disetujui", func(t *testing.T) {
		assert.False(t, CanApprove(QuotaFor(unit, uModel.UserTypeStudent), 2))
	})

	t.Run("peserta umum tetap bisa masuk walau pool pelajar penuh", func(t *testing.T) {
		assert.True(t, CanApprove(QuotaFor(unit, uModel.UserTypeGeneral), 0))
	})

	t.Run("pool umum penuh tidak menutup pool pelajar", func(t *testing.T) {
		assert.False(t, CanApprove(QuotaFor(unit, uModel.UserTypeGeneral), 5))
		assert.True(t, CanApprove(QuotaFor(unit, uModel.UserTypeStudent), 1))
	})
}
