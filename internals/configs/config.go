package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// Kredensial bersama peserta: dibagikan saat pendaftaran disetujui
	SharedAccessCode string

	// Prefix penomoran (sertifikat & nomor registrasi)
	CertificateNumberPrefix  string
	RegistrationNumberPrefix string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SharedAccessCode = GetEnv("SHARED_ACCESS_CODE", "BBPBAT2025")
	CertificateNumberPrefix = GetEnv("CERT_NUMBER_PREFIX", "BBPBAT")
	RegistrationNumberPrefix = GetEnv("REG_NUMBER_PREFIX", "BBPBAT")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
