package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"laundrypos-backend/models"
)

// flakySyncer fails for one receipt number and accepts the rest.
type flakySyncer struct {
	mu     sync.Mutex
	reject string
	pushed []string
}

func (s *flakySyncer) SyncOrder(order models.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushed = append(s.pushed, order.ReceiptNumber)
	return order.ReceiptNumber != s.reject
}

func TestResyncAllCountsOutcomes(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	mustCreateOrder(t, db, models.Order{ReceiptNumber: "ORD-X1", CustomerName: "A", Status: models.StatusReceived, CreatedAt: now})
	mustCreateOrder(t, db, models.Order{ReceiptNumber: "ORD-X2", CustomerName: "B", Status: models.StatusWashing, CreatedAt: now})
	mustCreateOrder(t, db, models.Order{ReceiptNumber: "ORD-X3", CustomerName: "C", Status: models.StatusReleased, CreatedAt: now})

	syncer := &flakySyncer{reject: "ORD-X2"}
	svc := NewSyncService(db, syncer)

	synced, failed, err := svc.ResyncAll(context.Background())
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if synced != 2 || failed != 1 {
		t.Errorf("got %d synced / %d failed, want 2 / 1", synced, failed)
	}
	if len(syncer.pushed) != 3 {
		t.Errorf("expected every order pushed, got %d", len(syncer.pushed))
	}
}

func TestResyncAllEmptyStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db, &flakySyncer{})

	synced, failed, err := svc.ResyncAll(context.Background())
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if synced != 0 || failed != 0 {
		t.Errorf("got %d/%d, want 0/0", synced, failed)
	}
}
