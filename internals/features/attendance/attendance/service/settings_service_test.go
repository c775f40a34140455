package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	attModel "magangku_backend/internals/features/attendance/attendance/model"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"07:00", 420, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"7:30", 450, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"1200", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func clockAt(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.Local)
}

func TestWithinWindow(t *testing.T) {
	assert.True(t, WithinWindow(clockAt(7, 0), "07:00", "09:00"))
	assert.True(t, WithinWindow(clockAt(8, 30), "07:00", "09:00"))
	assert.True(t, WithinWindow(clockAt(8, 59), "07:00", "09:00"))
	// batas akhir eksklusif: tepat 09:00 sudah di luar jendela
	assert.False(t, WithinWindow(clockAt(9, 0), "07:00", "09:00"))
	assert.False(t, WithinWindow(clockAt(6, 59), "07:00", "09:00"))
	assert.False(t, WithinWindow(clockAt(9, 1), "07:00", "09:00"))
	// jam rusak dianggap di luar jendela
	assert.False(t, WithinWindow(clockAt(8, 0), "xx:yy", "09:00"))
}

func TestSettingsSnapshotRefresh(t *testing.T) {
	m := &attModel.AttendanceSettingsModel{
		AttendanceSettingsLatitude:        -6.9175,
		AttendanceSettingsLongitude:       107.6191,
		AttendanceSettingsRadiusMeters:    150,
		AttendanceSettingsCheckInStart:    "06:30",
		AttendanceSettingsCheckInEnd:      "08:30",
		AttendanceSettingsCheckOutStart:   "15:00",
		AttendanceSettingsCheckOutEnd:     "17:00",
		AttendanceSettingsEnforceGeofence: true,
	}
	RefreshSettings(m)

	s := CurrentSettings()
	assert.Equal(t, 150.0, s.RadiusMeters)
	assert.Equal(t, "06:30", s.CheckInStart)
	assert.True(t, s.EnforceGeofence)
	assert.False(t, s.EnforceSchedule)

	// perubahan model setelah refresh tidak bocor ke snapshot lama
	m.AttendanceSettingsRadiusMeters = 999
	assert.Equal(t, 150.0, CurrentSettings().RadiusMeters)
}
