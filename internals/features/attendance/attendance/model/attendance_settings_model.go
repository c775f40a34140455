// internals/features/attendance/attendance/model/attendance_settings_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Konfigurasi presensi (baris tunggal). Default mengikuti lokasi balai di Bandung.
type AttendanceSettingsModel struct {
	AttendanceSettingsID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_settings_id" json:"attendance_settings_id"`

	// Geofence kantor
	AttendanceSettingsLatitude     float64 `gorm:"type:double precision;not null;default:-6.9175;column:attendance_settings_latitude" json:"attendance_settings_latitude"`
	AttendanceSettingsLongitude    float64 `gorm:"type:double precision;not null;default:107.6191;column:attendance_settings_longitude" json:"attendance_settings_longitude"`
	AttendanceSettingsRadiusMeters float64 `gorm:"type:double precision;not null;default:100;column:attendance_settings_radius_meters" json:"attendance_settings_radius_meters"`

	// Jendela waktu presensi, format HH:MM
	AttendanceSettingsCheckInStart  string `gorm:"type:varchar(5);not null;default:'07:00';column:attendance_settings_check_in_start" json:"attendance_settings_check_in_start"`
	AttendanceSettingsCheckInEnd    string `gorm:"type:varchar(5);not null;default:'09:00';column:attendance_settings_check_in_end" json:"attendance_settings_check_in_end"`
	AttendanceSettingsCheckOutStart string `gorm:"type:varchar(5);not null;default:'15:00';column:attendance_settings_check_out_start" json:"attendance_settings_check_out_start"`
	AttendanceSettingsCheckOutEnd   string `gorm:"type:varchar(5);not null;default:'17:00';column:attendance_settings_check_out_end" json:"attendance_settings_check_out_end"`

	// Mode ketat: tolak presensi di luar radius / di luar jendela.
	// false berarti presensi tetap dicatat dengan anotasi jarak.
	AttendanceSettingsEnforceGeofence bool `gorm:"not null;default:false;column:attendance_settings_enforce_geofence" json:"attendance_settings_enforce_geofence"`
	AttendanceSettingsEnforceSchedule bool `gorm:"not null;default:false;column:attendance_settings_enforce_schedule" json:"attendance_settings_enforce_schedule"`

	AttendanceSettingsUpdatedBy *uuid.UUID `gorm:"type:uuid;column:attendance_settings_updated_by" json:"attendance_settings_updated_by,omitempty"`
	AttendanceSettingsCreatedAt time.Time  `gorm:"column:attendance_settings_created_at;autoCreateTime" json:"attendance_settings_created_at"`
	AttendanceSettingsUpdatedAt *time.Time `gorm:"column:attendance_settings_updated_at;autoUpdateTime" json:"attendance_settings_updated_at,omitempty"`
}

func (AttendanceSettingsModel) TableName() string { return "attendance_settings" }
