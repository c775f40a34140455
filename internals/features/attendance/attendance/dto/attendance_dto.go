// internals/features/attendance/attendance/dto/attendance_dto.go
package dto

import (
	attModel "magangku_backend/internals/features/attendance/attendance/model"

	"gorm.io/datatypes"
)

/* ===================== REQUESTS ===================== */

type CheckRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

type MarkStatusRequest struct {
	UserID string         `json:"user_id" validate:"required,uuid4"`
	Date   datatypes.Date `json:"date" validate:"required"`
	Status string         `json:"status" validate:"required,oneof=present excused sick absent"`
	Notes  *string        `json:"notes" validate:"omitempty"`
}

type UpdateSettingsRequest struct {
	AttendanceSettingsLatitude     *float64 `json:"attendance_settings_latitude" validate:"omitempty,min=-90,max=90"`
	AttendanceSettingsLongitude    *float64 `json:"attendance_settings_longitude" validate:"omitempty,min=-180,max=180"`
	AttendanceSettingsRadiusMeters *float64 `json:"attendance_settings_radius_meters" validate:"omitempty,gt=0"`

	AttendanceSettingsCheckInStart  *string `json:"attendance_settings_check_in_start" validate:"omitempty,len=5"`
	AttendanceSettingsCheckInEnd    *string `json:"attendance_settings_check_in_end" validate:"omitempty,len=5"`
	AttendanceSettingsCheckOutStart *string `json:"attendance_settings_check_out_start" validate:"omitempty,len=5"`
	AttendanceSettingsCheckOutEnd   *string `json:"attendance_settings_check_out_end" validate:"omitempty,len=5"`

	AttendanceSettingsEnforceGeofence *bool `json:"attendance_settings_enforce_geofence" validate:"omitempty"`
	AttendanceSettingsEnforceSchedule *bool `json:"attendance_settings_enforce_schedule" validate:"omitempty"`
}

func (r *UpdateSettingsRequest) ApplyToModel(m *attModel.AttendanceSettingsModel) {
	if r.AttendanceSettingsLatitude != nil {
		m.AttendanceSettingsLatitude = *r.AttendanceSettingsLatitude
	}
	if r.AttendanceSettingsLongitude != nil {
		m.AttendanceSettingsLongitude = *r.AttendanceSettingsLongitude
	}
	if r.AttendanceSettingsRadiusMeters != nil {
		m.AttendanceSettingsRadiusMeters = *r.AttendanceSettingsRadiusMeters
	}
	if r.AttendanceSettingsCheckInStart != nil {
		m.AttendanceSettingsCheckInStart = *r.AttendanceSettingsCheckInStart
	}
	if r.AttendanceSettingsCheckInEnd != nil {
		m.AttendanceSettingsCheckInEnd = *r.AttendanceSettingsCheckInEnd
	}
	if r.AttendanceSettingsCheckOutStart != nil {
		m.AttendanceSettingsCheckOutStart = *r.AttendanceSettingsCheckOutStart
	}
	if r.AttendanceSettingsCheckOutEnd != nil {
		m.AttendanceSettingsCheckOutEnd = *r.AttendanceSettingsCheckOutEnd
	}
	if r.AttendanceSettingsEnforceGeofence != nil {
		m.AttendanceSettingsEnforceGeofence = *r.AttendanceSettingsEnforceGeofence
	}
	if r.AttendanceSettingsEnforceSchedule != nil {
		m.AttendanceSettingsEnforceSchedule = *r.AttendanceSettingsEnforceSchedule
	}
}
