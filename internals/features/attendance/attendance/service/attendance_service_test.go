package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	attModel "magangku_backend/internals/features/attendance/attendance/model"
)

func TestEvaluatePoint(t *testing.T) {
	s := &SettingsSnapshot{
		Latitude:     -6.9175,
		Longitude:    107.6191,
		RadiusMeters: 100,
	}

	t.Run("titik kantor di dalam radius", func(t *testing.T) {
		ev := EvaluatePoint(s, -6.9175, 107.6191)
		assert.True(t, ev.InRadius)
		assert.Equal(t, 0, ev.DistanceMeters)
	})

	t.Run("sekitar 50 meter masih di dalam", func(t *testing.T) {
		// geser ~0.00045 derajat lintang (~50 m)
		ev := EvaluatePoint(s, -6.91795, 107.6191)
		assert.True(t, ev.InRadius)
		assert.InDelta(t, 50, ev.DistanceMeters, 5)
	})

	t.Run("satu kilometer di luar radius", func(t *testing.T) {
		ev := EvaluatePoint(s, -6.9265, 107.6191)
		assert.False(t, ev.InRadius)
		assert.Greater(t, ev.DistanceMeters, 900)
	})

	t.Run("jarak tersimpan meter bulat", func(t *testing.T) {
		ev := EvaluatePoint(s, -6.91795, 107.6192)
		assert.IsType(t, 0, ev.DistanceMeters)
	})
}

func TestMonthlyPercentage(t *testing.T) {
	tests := []struct {
		name    string
		present int64
		total   int64
		want    float64
	}{
		{"tanpa data", 0, 0, 0},
		{"hadir penuh", 20, 20, 100},
		{"separuh", 10, 20, 50},
		{"pembulatan dua desimal", 9, 11, 81.82},
		{"sepertiga", 1, 3, 33.33},
		{"dua pertiga", 2, 3, 66.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthlyPercentage(tt.present, tt.total))
		})
	}
}

func TestCanCheckIn(t *testing.T) {
	now := time.Now()

	t.Run("belum ada baris hari ini", func(t *testing.T) {
		assert.True(t, CanCheckIn(nil))
	})

	t.Run("baris penandaan admin tanpa check-in masih boleh", func(t *testing.T) {
		rec := &attModel.AttendanceRecordModel{
			AttendanceRecordStatus: attModel.AttendanceStatusSick,
		}
		assert.True(t, CanCheckIn(rec))
	})

	t.Run("sudah check-in ditolak", func(t *testing.T) {
		rec := &attModel.AttendanceRecordModel{
			AttendanceRecordCheckInAt: &now,
		}
		assert.False(t, CanCheckIn(rec))
	})
}

func TestCanCheckOut(t *testing.T) {
	now := time.Now()

	t.Run("tanpa baris hari ini ditolak", func(t *testing.T) {
		assert.False(t, CanCheckOut(nil))
	})

	t.Run("baris tanpa check-in ditolak", func(t *testing.T) {
		// admin menandai izin/sakit: baris ada tapi belum pernah check-in
		rec := &attModel.AttendanceRecordModel{
			AttendanceRecordStatus: attModel.AttendanceStatusExcused,
		}
		assert.False(t, CanCheckOut(rec))
	})

	t.Run("sudah check-in dan belum check-out boleh", func(t *testing.T) {
		rec := &attModel.AttendanceRecordModel{
			AttendanceRecordCheckInAt: &now,
		}
		assert.True(t, CanCheckOut(rec))
	})

	t.Run("check-out kedua ditolak", func(t *testing.T) {
		rec := &attModel.AttendanceRecordModel{
			AttendanceRecordCheckInAt:  &now,
			AttendanceRecordCheckOutAt: &now,
		}
		assert.False(t, CanCheckOut(rec))
	})
}
