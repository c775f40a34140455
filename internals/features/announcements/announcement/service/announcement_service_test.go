package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	annModel "magangku_backend/internals/features/announcements/announcement/model"
)

func publishedAnn(aud annModel.AnnouncementAudience) *annModel.AnnouncementModel {
	return &annModel.AnnouncementModel{
		AnnouncementStatus:   annModel.AnnouncementStatusPublished,
		AnnouncementAudience: aud,
	}
}

func TestVisibleTo(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)

	t.Run("draft dan archived tidak pernah tampil", func(t *testing.T) {
		draft := publishedAnn(annModel.AnnouncementAudienceAll)
		draft.AnnouncementStatus = annModel.AnnouncementStatusDraft
		assert.False(t, VisibleTo(draft, "student", "", now))

		archived := publishedAnn(annModel.AnnouncementAudienceAll)
		archived.AnnouncementStatus = annModel.AnnouncementStatusArchived
		assert.False(t, VisibleTo(archived, "student", "", now))
	})

	t.Run("kedaluwarsa hilang dari feed", func(t *testing.T) {
		a := publishedAnn(annModel.AnnouncementAudienceAll)
		past := now.Add(-time.Hour)
		a.AnnouncementExpiresAt = &past
		assert.False(t, VisibleTo(a, "student", "", now))

		future := now.Add(time.Hour)
		a.AnnouncementExpiresAt = &future
		assert.True(t, VisibleTo(a, "student", "", now))
	})

	t.Run("audience all tampil untuk semua tipe", func(t *testing.T) {
		a := publishedAnn(annModel.AnnouncementAudienceAll)
		assert.True(t, VisibleTo(a, "student", "", now))
		assert.True(t, VisibleTo(a, "general", "", now))
	})

	t.Run("audience per tipe peserta", func(t *testing.T) {
		forStudents := publishedAnn(annModel.AnnouncementAudienceStudent)
		assert.True(t, VisibleTo(forStudents, "student", "", now))
		assert.False(t, VisibleTo(forStudents, "general", "", now))

		forGeneral := publishedAnn(annModel.AnnouncementAudienceGeneral)
		assert.False(t, VisibleTo(forGeneral, "student", "", now))
		assert.True(t, VisibleTo(forGeneral, "general", "", now))
	})

	t.Run("audience unit penempatan", func(t *testing.T) {
		a := publishedAnn(annModel.AnnouncementAudiencePlacementUnits)
		a.AnnouncementTargetUnits = []string{"Lab Kesehatan Ikan", "Kolam Pembenihan"}
		assert.True(t, VisibleTo(a, "student", "Kolam Pembenihan", now))
		assert.False(t, VisibleTo(a, "student", "Lab Pakan", now))

		// daftar unit kosong berlaku untuk semua unit
		a.AnnouncementTargetUnits = nil
		assert.True(t, VisibleTo(a, "student", "Lab Pakan", now))
	})
}
