// internals/features/registrations/registrations/service/registration_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"magangku_backend/internals/configs"
	puModel "magangku_backend/internals/features/registrations/placement_units/model"
	puService "magangku_backend/internals/features/registrations/placement_units/service"
	regDTO "magangku_backend/internals/features/registrations/registrations/dto"
	regModel "magangku_backend/internals/features/registrations/registrations/model"
	authService "magangku_backend/internals/features/users/auth/service"
	uModel "magangku_backend/internals/features/users/user/model"
)

/* ===================== TRANSISI STATUS (pure) ===================== */

// Tabel transisi status pendaftaran. rejected dan graduated terminal.
var allowedTransitions = map[regModel.RegistrationStatus][]regModel.RegistrationStatus{
	regModel.RegistrationStatusPending:   {regModel.RegistrationStatusApproved, regModel.RegistrationStatusRejected},
	regModel.RegistrationStatusApproved:  {regModel.RegistrationStatusActive},
	regModel.RegistrationStatusActive:    {regModel.RegistrationStatusCompleted},
	regModel.RegistrationStatusCompleted: {regModel.RegistrationStatusGraduated},
}

func CanTransition(from, to regModel.RegistrationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

/* ===================== SERVICE ===================== */

type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

/* ===================== PENGAJUAN PUBLIK ===================== */

// Submit membuat user placeholder + pendaftaran pending dalam satu transaksi.
// Username sementara (temp_xxxxxxxx) diganti username resmi saat disetujui.
func (s *RegistrationService) Submit(req *regDTO.SubmitRegistrationRequest) (*regDTO.SubmitRegistrationResponse, error) {
	unitID, err := uuid.Parse(req.PlacementUnitID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "placement_unit_id tidak valid")
	}
	userType := uModel.UserType(req.UserType)

	var resp regDTO.SubmitRegistrationResponse
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		open, err := s.hasOpenPeriod(tx, time.Now())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa periode pendaftaran")
		}
		if !open {
			return fiber.NewError(fiber.StatusConflict, "Pendaftaran sedang ditutup")
		}

		var unit puModel.PlacementUnitModel
		if err := tx.Where("placement_unit_id = ?", unitID).First(&unit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Unit penempatan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil unit penempatan")
		}
		if !unit.PlacementUnitIsActive {
			return fiber.NewError(fiber.StatusBadRequest, "Unit penempatan sedang tidak menerima pendaftaran")
		}

		year := time.Now().Year()
		regSeq, err := NextSequence(tx, RegistrationNumberScope(year))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengalokasikan nomor registrasi")
		}
		regNumber := FormatRegistrationNumber(configs.RegistrationNumberPrefix, year, regSeq)

		tempUsername := "temp_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		user := uModel.UserModel{
			UserType:               userType,
			UserUsername:           tempUsername,
			UserEmail:              req.ApplicantEmail,
			UserFullName:           req.ApplicantName,
			UserPhoneNumber:        req.ApplicantPhone,
			UserInstitution:        req.Institution,
			UserRegistrationNumber: &regNumber,
			UserIsActive:           true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun pendaftar")
		}

		reg := regModel.RegistrationModel{
			RegistrationUserID:          user.UserID,
			RegistrationPlacementUnitID: unit.PlacementUnitID,
			RegistrationStatus:          regModel.RegistrationStatusPending,
			RegistrationUserType:        userType,
			RegistrationApplicantName:   req.ApplicantName,
			RegistrationApplicantEmail:  req.ApplicantEmail,
			RegistrationApplicantPhone:  req.ApplicantPhone,
			RegistrationInstitution:     req.Institution,
			RegistrationNotes:           req.Notes,
			RegistrationStartDate:       req.StartDate,
			RegistrationEndDate:         req.EndDate,
		}
		if err := tx.Create(&reg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
		}

		resp = regDTO.SubmitRegistrationResponse{
			RegistrationID:         reg.RegistrationID,
			UserRegistrationNumber: regNumber,
			RegistrationStatus:     string(reg.RegistrationStatus),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &resp, nil
}

/* ===================== KEPUTUSAN ADMIN ===================== */

// Decide menyetujui atau menolak pendaftaran pending.
// Approve berjalan dalam transaksi dengan lock FOR UPDATE pada baris unit:
// kuota dihitung ulang di dalam lock sehingga dua approve paralel tidak bisa
// sama-sama lolos slot terakhir. Kredensial hanya terbit kalau user belum punya.
func (s *RegistrationService) Decide(registrationID, adminID uuid.UUID, req *regDTO.DecideRegistrationRequest) (*regDTO.DecideRegistrationResponse, error) {
	var (
		reg        regModel.RegistrationModel
		credential *regDTO.IssuedCredentialResponse
	)

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("registration_id = ?", registrationID).First(&reg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
		}
		if reg.RegistrationStatus != regModel.RegistrationStatusPending {
			return fiber.NewError(fiber.StatusConflict, "Pendaftaran sudah diputuskan")
		}

		now := time.Now()
		reg.RegistrationDecidedBy = &adminID
		reg.RegistrationDecidedAt = &now

		if req.Decision == "reject" {
			reg.RegistrationStatus = regModel.RegistrationStatusRejected
			reg.RegistrationRejectionReason = req.RejectionReason
			if err := tx.Save(&reg).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keputusan")
			}
			return nil
		}

		// Lock baris unit dulu, baru hitung kuota pool tipe pendaftar.
		var unit puModel.PlacementUnitModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("placement_unit_id = ?", reg.RegistrationPlacementUnitID).
			First(&unit).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengunci unit penempatan")
		}
		used, err := puService.UsedQuota(tx, unit.PlacementUnitID, reg.RegistrationUserType)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung kuota")
		}
		if !puService.CanApprove(puService.QuotaFor(&unit, reg.RegistrationUserType), used) {
			return fiber.NewError(fiber.StatusConflict, "Kuota unit penempatan untuk tipe peserta ini sudah penuh")
		}

		reg.RegistrationStatus = regModel.RegistrationStatusApproved
		if err := tx.Save(&reg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan keputusan")
		}

		credential, err = s.issueCredential(tx, reg.RegistrationUserID)
		if err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &regDTO.DecideRegistrationResponse{
		Registration: regDTO.NewRegistrationResponse(&reg),
		Credential:   credential,
	}, nil
}

// issueCredential menerbitkan username resmi + kode akses bersama, sekali saja.
// User yang sudah punya kode akses (mis. pendaftaran kedua) tidak diterbitkan ulang.
func (s *RegistrationService) issueCredential(tx *gorm.DB, userID uuid.UUID) (*regDTO.IssuedCredentialResponse, error) {
	var user uModel.UserModel
	if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data pendaftar")
	}
	if user.HasAccessCredential() {
		return nil, nil
	}

	seq, err := NextSequence(tx, UsernameScope(user.UserType))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengalokasikan username")
	}
	username := FormatUsername(user.UserType, seq)

	accessCode := configs.SharedAccessCode
	hash, err := authService.HashSecret(accessCode)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kode akses")
	}

	if err := tx.Model(&uModel.UserModel{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]any{
			"user_username":         username,
			"user_access_code_hash": hash,
			"user_is_active":        true,
		}).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan kredensial")
	}

	return &regDTO.IssuedCredentialResponse{Username: username, AccessCode: accessCode}, nil
}

/* ===================== PERJALANAN STATUS ===================== */

// Advance memindahkan status sesuai tabel transisi (approved→active→completed→graduated).
func (s *RegistrationService) Advance(registrationID uuid.UUID, target regModel.RegistrationStatus) (*regModel.RegistrationModel, error) {
	var reg regModel.RegistrationModel
	if err := s.DB.Where("registration_id = ?", registrationID).First(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	if !CanTransition(reg.RegistrationStatus, target) {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Transisi status dari "+string(reg.RegistrationStatus)+" ke "+string(target)+" tidak diizinkan")
	}

	reg.RegistrationStatus = target
	if err := s.DB.Save(&reg).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan status")
	}
	return &reg, nil
}

/* ===================== STATISTIK ===================== */

func (s *RegistrationService) Stats() (*regDTO.RegistrationStatsResponse, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := s.DB.Model(&regModel.RegistrationModel{}).
		Select("registration_status AS status, COUNT(*) AS total").
		Group("registration_status").
		Scan(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	var stats regDTO.RegistrationStatsResponse
	for _, r := range rows {
		stats.Total += r.Total
		switch regModel.RegistrationStatus(r.Status) {
		case regModel.RegistrationStatusPending:
			stats.Pending = r.Total
		case regModel.RegistrationStatusApproved:
			stats.Approved = r.Total
		case regModel.RegistrationStatusRejected:
			stats.Rejected = r.Total
		case regModel.RegistrationStatusActive:
			stats.Active = r.Total
		case regModel.RegistrationStatusCompleted:
			stats.Completed = r.Total
		case regModel.RegistrationStatusGraduated:
			stats.Graduated = r.Total
		}
	}
	return &stats, nil
}

/* ===================== HELPERS ===================== */

func (s *RegistrationService) hasOpenPeriod(tx *gorm.DB, at time.Time) (bool, error) {
	var count int64
	err := tx.Model(&regModel.RegistrationPeriodModel{}).
		Where("registration_period_is_open = ?", true).
		Where("registration_period_start_date <= ? AND registration_period_end_date >= ?",
			at.Format("2006-01-02"), at.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}
