// internals/features/certificates/certificate/service/certificate_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/configs"
	attService "magangku_backend/internals/features/attendance/attendance/service"
	certModel "magangku_backend/internals/features/certificates/certificate/model"
	regModel "magangku_backend/internals/features/registrations/registrations/model"
	regService "magangku_backend/internals/features/registrations/registrations/service"
)

/* ===================== FORMAT (pure) ===================== */

// FormatCertificateNumber: BBPBAT/CERT/2025/0001
func FormatCertificateNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s/CERT/%d/%04d", prefix, year, seq)
}

// NewVerificationCode: 12 hex huruf besar dari UUID acak.
func NewVerificationCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:12])
}

// CanIssue: sertifikat hanya terbit untuk pendaftaran graduated,
// dan satu user maksimal satu sertifikat.
func CanIssue(status regModel.RegistrationStatus, alreadyIssued bool) bool {
	return status == regModel.RegistrationStatusGraduated && !alreadyIssued
}

/* ===================== SERVICE ===================== */

type CertificateService struct {
	DB         *gorm.DB
	Attendance *attService.AttendanceService
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{
		DB:         db,
		Attendance: attService.NewAttendanceService(db),
	}
}

// Issue menerbitkan sertifikat untuk pendaftaran yang sudah graduated.
// Satu user satu sertifikat; penerbitan kedua ditolak 409.
// Nomor urut tahunan dialokasikan lewat counter atomik di dalam transaksi
// yang sama dengan insert, jadi nomor tidak pernah dobel maupun bolong
// karena rollback parsial.
func (s *CertificateService) Issue(registrationID, adminID uuid.UUID) (*certModel.CertificateModel, error) {
	var cert certModel.CertificateModel

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var reg regModel.RegistrationModel
		if err := tx.Where("registration_id = ?", registrationID).First(&reg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
		}
		var existing certModel.CertificateModel
		err := tx.Where("certificate_user_id = ?", reg.RegistrationUserID).First(&existing).Error
		alreadyIssued := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa sertifikat")
		}
		if !CanIssue(reg.RegistrationStatus, alreadyIssued) {
			if alreadyIssued {
				return fiber.NewError(fiber.StatusConflict, "Sertifikat untuk peserta ini sudah terbit")
			}
			return fiber.NewError(fiber.StatusConflict, "Sertifikat hanya untuk peserta berstatus graduated")
		}

		now := time.Now()
		seq, err := regService.NextSequence(tx, regService.CertificateScope(now.Year()))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengalokasikan nomor sertifikat")
		}

		percentage, err := s.attendancePercentage(tx, reg.RegistrationUserID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
		}

		cert = certModel.CertificateModel{
			CertificateUserID:               reg.RegistrationUserID,
			CertificateRegistrationID:       reg.RegistrationID,
			CertificateNumber:               FormatCertificateNumber(configs.CertificateNumberPrefix, now.Year(), seq),
			CertificateVerificationCode:     NewVerificationCode(),
			CertificateAttendancePercentage: percentage,
			CertificateIssuedBy:             adminID,
			CertificateIssuedAt:             now,
		}
		if err := tx.Create(&cert).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan sertifikat")
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &cert, nil
}

// Verify mencari sertifikat berdasarkan kode verifikasi publik (case-insensitive).
func (s *CertificateService) Verify(code string) (*certModel.CertificateModel, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	var cert certModel.CertificateModel
	if err := s.DB.Where("certificate_verification_code = ?", code).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa sertifikat")
	}
	return &cert, nil
}

// attendancePercentage: persen kehadiran seluruh riwayat presensi peserta.
func (s *CertificateService) attendancePercentage(tx *gorm.DB, userID uuid.UUID) (float64, error) {
	var total, present int64
	if err := tx.Table("attendance_records").
		Where("attendance_record_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	if err := tx.Table("attendance_records").
		Where("attendance_record_user_id = ?", userID).
		Where("attendance_record_status = ?", "present").
		Count(&present).Error; err != nil {
		return 0, err
	}
	return attService.MonthlyPercentage(present, total), nil
}
