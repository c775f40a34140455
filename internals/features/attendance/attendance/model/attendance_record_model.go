// internals/features/attendance/attendance/model/attendance_record_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
Status presensi harian:
- "present" → hadir (check-in tercatat)
- "excused" → izin
- "sick"    → sakit
- "absent"  → alpa
*/
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusExcused AttendanceStatus = "excused"
	AttendanceStatusSick    AttendanceStatus = "sick"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
)

func (s *AttendanceStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = AttendanceStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = AttendanceStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s AttendanceStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// Satu baris per user per tanggal (unique index komposit).
type AttendanceRecordModel struct {
	AttendanceRecordID     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordUserID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_user_date;column:attendance_record_user_id" json:"attendance_record_user_id"`
	AttendanceRecordDate   datatypes.Date `gorm:"not null;uniqueIndex:idx_attendance_user_date;column:attendance_record_date" json:"attendance_record_date"`

	AttendanceRecordStatus AttendanceStatus `gorm:"type:varchar(10);not null;default:'present';column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordNotes  *string          `gorm:"type:text;column:attendance_record_notes" json:"attendance_record_notes,omitempty"`

	// Check-in
	AttendanceRecordCheckInAt       *time.Time `gorm:"column:attendance_record_check_in_at" json:"attendance_record_check_in_at,omitempty"`
	AttendanceRecordCheckInLat      *float64   `gorm:"type:double precision;column:attendance_record_check_in_lat" json:"attendance_record_check_in_lat,omitempty"`
	AttendanceRecordCheckInLon      *float64   `gorm:"type:double precision;column:attendance_record_check_in_lon" json:"attendance_record_check_in_lon,omitempty"`
	AttendanceRecordCheckInDistance *int       `gorm:"column:attendance_record_check_in_distance" json:"attendance_record_check_in_distance,omitempty"`
	AttendanceRecordCheckInInRadius *bool      `gorm:"column:attendance_record_check_in_in_radius" json:"attendance_record_check_in_in_radius,omitempty"`
	AttendanceRecordCheckInOnTime   *bool      `gorm:"column:attendance_record_check_in_on_time" json:"attendance_record_check_in_on_time,omitempty"`

	// Check-out
	AttendanceRecordCheckOutAt       *time.Time `gorm:"column:attendance_record_check_out_at" json:"attendance_record_check_out_at,omitempty"`
	AttendanceRecordCheckOutLat      *float64   `gorm:"type:double precision;column:attendance_record_check_out_lat" json:"attendance_record_check_out_lat,omitempty"`
	AttendanceRecordCheckOutLon      *float64   `gorm:"type:double precision;column:attendance_record_check_out_lon" json:"attendance_record_check_out_lon,omitempty"`
	AttendanceRecordCheckOutDistance *int       `gorm:"column:attendance_record_check_out_distance" json:"attendance_record_check_out_distance,omitempty"`
	AttendanceRecordCheckOutInRadius *bool      `gorm:"column:attendance_record_check_out_in_radius" json:"attendance_record_check_out_in_radius,omitempty"`
	AttendanceRecordCheckOutOnTime   *bool      `gorm:"column:attendance_record_check_out_on_time" json:"attendance_record_check_out_on_time,omitempty"`

	AttendanceRecordCreatedAt time.Time  `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
