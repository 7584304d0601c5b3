// services/sync_service.go
package services

import (
	"context"
	"log"
	"os"

	"laundrypos-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SyncService re-pushes local orders to the remote mirror. A failed
// background sync is otherwise lost, so this is the recovery path: run it
// by hand from the admin screen or on the cron schedule.
type SyncService struct {
	db     *gorm.DB
	syncer OrderSyncer
}

func NewSyncService(db *gorm.DB, syncer OrderSyncer) *SyncService {
	return &SyncService{db: db, syncer: syncer}
}

// ResyncAll pushes every local order to the mirror and reports how many
// made it. Individual failures are counted, not propagated.
func (s *SyncService) ResyncAll(ctx context.Context) (synced, failed int, err error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Preload("Items").Find(&orders).Error; err != nil {
		return 0, 0, err
	}

	for _, order := range orders {
		if s.syncer.SyncOrder(order) {
			synced++
		} else {
			failed++
		}
	}
	log.Printf("Resync done: %d synced, %d failed", synced, failed)
	return synced, failed, nil
}

// StartScheduler runs ResyncAll on RESYNC_CRON. Unset means no schedule;
// the manual endpoint still works.
func (s *SyncService) StartScheduler() {
	spec := os.Getenv("RESYNC_CRON")
	if spec == "" {
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if _, _, err := s.ResyncAll(context.Background()); err != nil {
			log.Printf("Scheduled resync failed: %v", err)
		}
	}); err != nil {
		log.Printf("Invalid RESYNC_CRON %q: %v", spec, err)
		return
	}

	c.Start()
	log.Println("Resync scheduler started")
}
