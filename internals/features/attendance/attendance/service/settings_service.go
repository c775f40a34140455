// internals/features/attendance/attendance/service/settings_service.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	attModel "magangku_backend/internals/features/attendance/attendance/model"
)

/* ===================== SNAPSHOT ===================== */

// SettingsSnapshot: salinan immutable dari baris attendance_settings.
// Handler presensi membaca snapshot ini, bukan query DB per request.
// Snapshot diganti utuh setiap admin mengubah pengaturan.
type SettingsSnapshot struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64

	CheckInStart  string
	CheckInEnd    string
	CheckOutStart string
	CheckOutEnd   string

	EnforceGeofence bool
	EnforceSchedule bool
}

var currentSettings atomic.Pointer[SettingsSnapshot]

func snapshotFromModel(m *attModel.AttendanceSettingsModel) *SettingsSnapshot {
	return &SettingsSnapshot{
		Latitude:        m.AttendanceSettingsLatitude,
		Longitude:       m.AttendanceSettingsLongitude,
		RadiusMeters:    m.AttendanceSettingsRadiusMeters,
		CheckInStart:    m.AttendanceSettingsCheckInStart,
		CheckInEnd:      m.AttendanceSettingsCheckInEnd,
		CheckOutStart:   m.AttendanceSettingsCheckOutStart,
		CheckOutEnd:     m.AttendanceSettingsCheckOutEnd,
		EnforceGeofence: m.AttendanceSettingsEnforceGeofence,
		EnforceSchedule: m.AttendanceSettingsEnforceSchedule,
	}
}

// LoadSettings memuat baris pengaturan (atau membuat default) lalu mengisi snapshot.
// Dipanggil sekali saat startup.
func LoadSettings(db *gorm.DB) error {
	var m attModel.AttendanceSettingsModel
	err := db.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = attModel.AttendanceSettingsModel{
			AttendanceSettingsLatitude:      -6.9175,
			AttendanceSettingsLongitude:     107.6191,
			AttendanceSettingsRadiusMeters:  100,
			AttendanceSettingsCheckInStart:  "07:00",
			AttendanceSettingsCheckInEnd:    "09:00",
			AttendanceSettingsCheckOutStart: "15:00",
			AttendanceSettingsCheckOutEnd:   "17:00",
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	currentSettings.Store(snapshotFromModel(&m))
	return nil
}

// CurrentSettings tidak pernah nil setelah LoadSettings; fallback default
// dipakai kalau handler jalan sebelum startup selesai (mis. di test).
func CurrentSettings() *SettingsSnapshot {
	if s := currentSettings.Load(); s != nil {
		return s
	}
	return &SettingsSnapshot{
		Latitude: -6.9175, Longitude: 107.6191, RadiusMeters: 100,
		CheckInStart: "07:00", CheckInEnd: "09:00",
		CheckOutStart: "15:00", CheckOutEnd: "17:00",
	}
}

// RefreshSettings mengganti snapshot setelah admin menyimpan perubahan.
func RefreshSettings(m *attModel.AttendanceSettingsModel) {
	currentSettings.Store(snapshotFromModel(m))
}

/* ===================== JENDELA WAKTU (pure) ===================== */

// ParseClock membaca "HH:MM" menjadi menit sejak tengah malam.
func ParseClock(v string) (int, error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("format jam tidak valid: %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("jam tidak valid: %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("menit tidak valid: %q", v)
	}
	return h*60 + m, nil
}

// WithinWindow: t berada pada [start, end), batas akhir eksklusif.
// Jam tak valid dianggap di luar jendela.
func WithinWindow(t time.Time, start, end string) bool {
	s, err := ParseClock(start)
	if err != nil {
		return false
	}
	e, err := ParseClock(end)
	if err != nil {
		return false
	}
	now := t.Hour()*60 + t.Minute()
	return now >= s && now < e
}
