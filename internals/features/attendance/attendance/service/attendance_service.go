// internals/features/attendance/attendance/service/attendance_service.go
package service

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attModel "magangku_backend/internals/features/attendance/attendance/model"
)

/* ===================== EVALUASI TITIK (pure) ===================== */

type PointEvaluation struct {
	// Jarak tersimpan dalam meter bulat; in_radius dihitung dari jarak
	// mentah supaya pembulatan tidak menggeser titik di tepi radius.
	DistanceMeters int
	InRadius       bool
}

// EvaluatePoint menghitung jarak titik presensi ke kantor terhadap snapshot pengaturan.
func EvaluatePoint(s *SettingsSnapshot, lat, lon float64) PointEvaluation {
	d := HaversineMeters(s.Latitude, s.Longitude, lat, lon)
	return PointEvaluation{
		DistanceMeters: int(math.Round(d)),
		InRadius:       d <= s.RadiusMeters,
	}
}

/* ===================== GERBANG CHECK-IN/OUT (pure) ===================== */

// CanCheckIn: belum ada check-in pada tanggal itu. Baris tanpa check-in
// (mis. admin sudah menandai izin/sakit) masih boleh diisi.
func CanCheckIn(rec *attModel.AttendanceRecordModel) bool {
	return rec == nil || rec.AttendanceRecordCheckInAt == nil
}

// CanCheckOut: baris tanggal itu sudah punya check-in dan belum check-out.
// Baris hasil penandaan admin tanpa check-in tidak bisa langsung check-out.
func CanCheckOut(rec *attModel.AttendanceRecordModel) bool {
	return rec != nil &&
		rec.AttendanceRecordCheckInAt != nil &&
		rec.AttendanceRecordCheckOutAt == nil
}

// MonthlyPercentage: persen kehadiran dibulatkan 2 desimal. Tanpa data → 0.
func MonthlyPercentage(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

/* ===================== SERVICE ===================== */

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// CheckIn mencatat kehadiran hari ini. Duplikat pada tanggal yang sama ditolak 409.
// Mode ketat (enforce flags) menolak di luar radius/jendela; mode longgar tetap
// mencatat dengan anotasi jarak dan ketepatan waktu.
func (s *AttendanceService) CheckIn(userID uuid.UUID, lat, lon float64, now time.Time) (*attModel.AttendanceRecordModel, error) {
	if !ValidCoordinate(lat, lon) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Koordinat tidak valid")
	}

	settings := CurrentSettings()
	eval := EvaluatePoint(settings, lat, lon)
	onTime := WithinWindow(now, settings.CheckInStart, settings.CheckInEnd)

	if settings.EnforceGeofence && !eval.InRadius {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Anda berada di luar area presensi")
	}
	if settings.EnforceSchedule && !onTime {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Di luar jam check-in")
	}

	today := datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()))

	record := attModel.AttendanceRecordModel{
		AttendanceRecordUserID: userID,
		AttendanceRecordDate:   today,
	}
	var existing attModel.AttendanceRecordModel
	err := s.DB.Where("attendance_record_user_id = ? AND attendance_record_date = ?", userID, today).
		First(&existing).Error
	switch {
	case err == nil:
		if !CanCheckIn(&existing) {
			return nil, fiber.NewError(fiber.StatusConflict, "Sudah check-in hari ini")
		}
		// Baris penandaan admin tanpa check-in: diisi, status jadi present.
		record = existing
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa presensi")
	}

	record.AttendanceRecordStatus = attModel.AttendanceStatusPresent
	record.AttendanceRecordCheckInAt = &now
	record.AttendanceRecordCheckInLat = &lat
	record.AttendanceRecordCheckInLon = &lon
	record.AttendanceRecordCheckInDistance = &eval.DistanceMeters
	record.AttendanceRecordCheckInInRadius = &eval.InRadius
	record.AttendanceRecordCheckInOnTime = &onTime

	if err := s.DB.Save(&record).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan presensi")
	}
	return &record, nil
}

// CheckOut melengkapi baris hari ini. Tanpa check-in terlebih dahulu → 409.
func (s *AttendanceService) CheckOut(userID uuid.UUID, lat, lon float64, now time.Time) (*attModel.AttendanceRecordModel, error) {
	if !ValidCoordinate(lat, lon) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Koordinat tidak valid")
	}

	settings := CurrentSettings()
	eval := EvaluatePoint(settings, lat, lon)
	onTime := WithinWindow(now, settings.CheckOutStart, settings.CheckOutEnd)

	if settings.EnforceGeofence && !eval.InRadius {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Anda berada di luar area presensi")
	}
	if settings.EnforceSchedule && !onTime {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Di luar jam check-out")
	}

	today := datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()))

	var record attModel.AttendanceRecordModel
	err := s.DB.Where("attendance_record_user_id = ? AND attendance_record_date = ?", userID, today).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusConflict, "Belum check-in hari ini")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa presensi")
	}
	if !CanCheckOut(&record) {
		if record.AttendanceRecordCheckOutAt != nil {
			return nil, fiber.NewError(fiber.StatusConflict, "Sudah check-out hari ini")
		}
		return nil, fiber.NewError(fiber.StatusConflict, "Belum check-in hari ini")
	}

	record.AttendanceRecordCheckOutAt = &now
	record.AttendanceRecordCheckOutLat = &lat
	record.AttendanceRecordCheckOutLon = &lon
	record.AttendanceRecordCheckOutDistance = &eval.DistanceMeters
	record.AttendanceRecordCheckOutInRadius = &eval.InRadius
	record.AttendanceRecordCheckOutOnTime = &onTime

	if err := s.DB.Save(&record).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan presensi")
	}
	return &record, nil
}

// MarkStatus: admin mencatat izin/sakit/alpa untuk tanggal tertentu (upsert per user+tanggal).
func (s *AttendanceService) MarkStatus(userID uuid.UUID, date datatypes.Date, status attModel.AttendanceStatus, notes *string) (*attModel.AttendanceRecordModel, error) {
	var record attModel.AttendanceRecordModel
	err := s.DB.Where("attendance_record_user_id = ? AND attendance_record_date = ?", userID, date).
		First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = attModel.AttendanceRecordModel{
			AttendanceRecordUserID: userID,
			AttendanceRecordDate:   date,
		}
	case err != nil:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa presensi")
	}

	record.AttendanceRecordStatus = status
	record.AttendanceRecordNotes = notes
	if err := s.DB.Save(&record).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan presensi")
	}
	return &record, nil
}

/* ===================== REKAP BULANAN ===================== */

type MonthlyStats struct {
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Total      int64   `json:"total"`
	Present    int64   `json:"present"`
	Excused    int64   `json:"excused"`
	Sick       int64   `json:"sick"`
	Absent     int64   `json:"absent"`
	Percentage float64 `json:"percentage"`
}

func (s *AttendanceService) MonthlyStatsFor(userID uuid.UUID, year, month int) (*MonthlyStats, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := s.DB.Model(&attModel.AttendanceRecordModel{}).
		Select("attendance_record_status AS status, COUNT(*) AS total").
		Where("attendance_record_user_id = ?", userID).
		Where("attendance_record_date >= ? AND attendance_record_date < ?",
			start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("attendance_record_status").
		Scan(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung rekap")
	}

	stats := MonthlyStats{Year: year, Month: month}
	for _, r := range rows {
		stats.Total += r.Total
		switch attModel.AttendanceStatus(r.Status) {
		case attModel.AttendanceStatusPresent:
			stats.Present = r.Total
		case attModel.AttendanceStatusExcused:
			stats.Excused = r.Total
		case attModel.AttendanceStatusSick:
			stats.Sick = r.Total
		case attModel.AttendanceStatusAbsent:
			stats.Absent = r.Total
		}
	}
	stats.Percentage = MonthlyPercentage(stats.Present, stats.Total)
	return &stats, nil
}
