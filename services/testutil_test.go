package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"laundrypos-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.Service{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// stubSyncer records sync attempts and answers with a fixed result.
type stubSyncer struct {
	mu     sync.Mutex
	ok     bool
	orders []models.Order
	synced chan models.Order
}

func newStubSyncer(ok bool) *stubSyncer {
	return &stubSyncer{ok: ok, synced: make(chan models.Order, 16)}
}

func (s *stubSyncer) SyncOrder(order models.Order) bool {
	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()
	s.synced <- order
	return s.ok
}

func (s *stubSyncer) waitForSync(t *testing.T) models.Order {
	t.Helper()
	select {
	case order := <-s.synced:
		return order
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for sync call")
		return models.Order{}
	}
}

func mustCreateOrder(t *testing.T, db *gorm.DB, order models.Order) models.Order {
	t.Helper()
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create fixture order: %v", err)
	}
	return order
}
