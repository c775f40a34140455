// internals/features/users/auth/service/password_service.go
package service

import "golang.org/x/crypto/bcrypt"

// HashSecret dipakai untuk password admin maupun kode akses peserta.
func HashSecret(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckSecret(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
