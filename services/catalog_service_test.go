package services

import (
	"context"
	"sync"
	"testing"

	"laundrypos-backend/models"
)

func TestInitializeSeedsEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	if err := catalog.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	services, err := catalog.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(services) != len(models.DefaultCatalog) {
		t.Fatalf("expected %d services, got %d", len(models.DefaultCatalog), len(services))
	}
	for i, svc := range services {
		want := models.DefaultCatalog[i]
		if svc.Name != want.Name || svc.Price != want.Price {
			t.Errorf("service %d: got %q/%v, want %q/%v", i, svc.Name, svc.Price, want.Name, want.Price)
		}
	}
}

func TestInitializeLeavesHealthyCatalogAlone(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	ctx := context.Background()

	if err := catalog.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	// A price edit keeps the count and names valid; a second pass must not
	// wipe it.
	if err := db.Model(&models.Service{}).Where("name = ?", "Iron").
		Update("price", 75.0).Error; err != nil {
		t.Fatalf("edit price: %v", err)
	}

	if err := catalog.Initialize(ctx); err != nil {
		t.Fatalf("re-initialize: %v", err)
	}

	var iron models.Service
	if err := db.Where("name = ?", "Iron").First(&iron).Error; err != nil {
		t.Fatalf("find iron: %v", err)
	}
	if iron.Price != 75.0 {
		t.Errorf("expected edited price 75, got %v", iron.Price)
	}
}

func TestInitializeReseedsCorruptCatalog(t *testing.T) {
	tests := []struct {
		name    string
		corrupt []models.Service
	}{
		{
			name: "duplicate names",
			corrupt: []models.Service{
				{Name: "Wash Only", Price: 100, Status: models.ServiceActive},
				{Name: "Wash Only", Price: 100, Status: models.ServiceActive},
				{Name: "Dry Only", Price: 100, Status: models.ServiceActive},
				{Name: "Wash, Dry & Fold", Price: 180, Status: models.ServiceActive},
				{Name: "Iron", Price: 50, Status: models.ServiceActive},
				{Name: "Downy", Price: 15, Status: models.ServiceActive},
				{Name: "Zonrox", Price: 15, Status: models.ServiceActive},
			},
		},
		{
			name: "wrong count",
			corrupt: []models.Service{
				{Name: "Wash Only", Price: 100, Status: models.ServiceActive},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			if err := db.Create(&tt.corrupt).Error; err != nil {
				t.Fatalf("seed corrupt state: %v", err)
			}

			catalog := NewCatalogService(db)
			if err := catalog.Initialize(context.Background()); err != nil {
				t.Fatalf("initialize: %v", err)
			}

			var all []models.Service
			if err := db.Find(&all).Error; err != nil {
				t.Fatalf("load services: %v", err)
			}
			if len(all) != len(models.DefaultCatalog) {
				t.Fatalf("expected %d services after reseed, got %d", len(models.DefaultCatalog), len(all))
			}
			seen := map[string]bool{}
			for _, svc := range all {
				if seen[svc.Name] {
					t.Errorf("duplicate name %q survived reseed", svc.Name)
				}
				seen[svc.Name] = true
			}
		})
	}
}

func TestInitializeConcurrentSeedsOnce(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = catalog.Initialize(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent initialize %d: %v", i, err)
		}
	}

	var all []models.Service
	if err := db.Find(&all).Error; err != nil {
		t.Fatalf("load services: %v", err)
	}
	if len(all) != len(models.DefaultCatalog) {
		t.Fatalf("expected exactly %d services after concurrent init, got %d", len(models.DefaultCatalog), len(all))
	}
	seen := map[string]bool{}
	for _, svc := range all {
		if seen[svc.Name] {
			t.Fatalf("duplicate name %q: catalog seeded twice", svc.Name)
		}
		seen[svc.Name] = true
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	ctx := context.Background()

	if err := catalog.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if _, err := catalog.Add(ctx, "Express Wash", 250); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := catalog.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	services, err := catalog.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(services) != len(models.DefaultCatalog) {
		t.Fatalf("expected %d services after reset, got %d", len(models.DefaultCatalog), len(services))
	}
	for _, svc := range services {
		if svc.Name == "Express Wash" {
			t.Error("custom service survived reset")
		}
	}
}

func TestSoftDeleteHidesServiceFromList(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	ctx := context.Background()

	if err := catalog.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	services, _ := catalog.List(ctx)
	target := services[0]

	if err := catalog.SoftDelete(ctx, target.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	after, err := catalog.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(services)-1 {
		t.Fatalf("expected %d active services, got %d", len(services)-1, len(after))
	}
	for _, svc := range after {
		if svc.ID == target.ID {
			t.Error("retired service still listed")
		}
	}

	// Record is retained, just retired
	var retired models.Service
	if err := db.First(&retired, target.ID).Error; err != nil {
		t.Fatalf("retired record gone: %v", err)
	}
	if retired.Status != models.ServiceRetired {
		t.Errorf("expected status %q, got %q", models.ServiceRetired, retired.Status)
	}
}

func TestUpdateService(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	ctx := context.Background()

	svc, err := catalog.Add(ctx, "Comforter Wash", 200)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	newPrice := 220.0
	updated, err := catalog.Update(ctx, svc.ID, ServiceUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 220 {
		t.Errorf("expected price 220, got %v", updated.Price)
	}
	if updated.Name != "Comforter Wash" {
		t.Errorf("name changed unexpectedly: %q", updated.Name)
	}
}
