// internals/features/announcements/announcement/service/announcement_service.go
package service

import (
	"time"

	annModel "magangku_backend/internals/features/announcements/announcement/model"
)

/* ===================== VISIBILITAS FEED (pure) ===================== */

// VisibleTo memutuskan apakah satu pengumuman tampil di feed peserta:
// hanya status published, belum lewat expires_at, dan sasarannya cocok
// dengan tipe peserta atau unit penempatannya.
func VisibleTo(a *annModel.AnnouncementModel, userType, unitName string, now time.Time) bool {
	if a == nil || a.AnnouncementStatus != annModel.AnnouncementStatusPublished {
		return false
	}
	if a.AnnouncementExpiresAt != nil && !now.Before(*a.AnnouncementExpiresAt) {
		return false
	}

	switch a.AnnouncementAudience {
	case annModel.AnnouncementAudienceAll, "":
		return true
	case annModel.AnnouncementAudienceStudent:
		return userType == "student"
	case annModel.AnnouncementAudienceGeneral:
		return userType == "general"
	case annModel.AnnouncementAudiencePlacementUnits:
		// Tanpa daftar unit dianggap berlaku untuk semua unit.
		if len(a.AnnouncementTargetUnits) == 0 {
			return true
		}
		for _, u := range a.AnnouncementTargetUnits {
			if u == unitName {
				return true
			}
		}
		return false
	}
	return false
}
