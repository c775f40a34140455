package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	announcementModel "magangku_backend/internals/features/announcements/announcement/model"
	attendanceModel "magangku_backend/internals/features/attendance/attendance/model"
	certificateModel "magangku_backend/internals/features/certificates/certificate/model"
	paymentModel "magangku_backend/internals/features/payments/payment/model"
	placementModel "magangku_backend/internals/features/registrations/placement_units/model"
	registrationModel "magangku_backend/internals/features/registrations/registrations/model"
	reportModel "magangku_backend/internals/features/reports/report/model"
	authModel "magangku_backend/internals/features/users/auth/model"
	userModel "magangku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=magangku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// Migrasi skema seluruh fitur. Urutan penting untuk FK.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.UserProfileModel{},
		&userModel.DocumentModel{},
		&authModel.TokenBlacklistModel{},
		&placementModel.PlacementUnitModel{},
		&registrationModel.RegistrationModel{},
		&registrationModel.RegistrationPeriodModel{},
		&registrationModel.SequenceCounterModel{},
		&attendanceModel.AttendanceSettingsModel{},
		&attendanceModel.AttendanceRecordModel{},
		&reportModel.ReportModel{},
		&reportModel.ReportCommentModel{},
		&certificateModel.CertificateModel{},
		&announcementModel.AnnouncementModel{},
		&paymentModel.PaymentModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
