package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student" // pelajar/mahasiswa
	RoleGeneral = "general" // masyarakat umum/dinas
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess       = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyParticipantsCanAccess = "❌ Hanya peserta yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorParticipant(feature string) string {
	return fmt.Sprintf(ErrOnlyParticipantsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleStudent,
		RoleGeneral,
	}

	ParticipantRoles = []string{
		RoleStudent,
		RoleGeneral,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
