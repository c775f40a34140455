// internals/features/users/auth/scheduler/blacklist_cleanup_scheduler.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "magangku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah
// kadaluarsa tiap jam supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("token_blacklist_expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] cleanup blacklist: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] cleanup blacklist: %d token dihapus", res.RowsAffected)
			}
		}
	}()
}
