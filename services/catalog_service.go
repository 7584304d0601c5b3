// services/catalog_service.go
package services

import (
	"context"
	"log"

	"laundrypos-backend/models"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// CatalogService owns the service catalog: seeding, soft deletes and resets.
type CatalogService struct {
	db    *gorm.DB
	group singleflight.Group
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Initialize seeds the default catalog when the stored set is empty,
// contains duplicate names, or differs in count from the default list.
// Concurrent callers share one in-flight seeding pass; the check-then-write
// sequence below is not atomic against the store, so racing it would seed
// the catalog twice.
func (s *CatalogService) Initialize(ctx context.Context) error {
	_, err, _ := s.group.Do("initialize", func() (interface{}, error) {
		var existing []models.Service
		if err := s.db.WithContext(ctx).Find(&existing).Error; err != nil {
			return nil, err
		}

		seen := make(map[string]bool, len(existing))
		hasDuplicates := false
		for _, svc := range existing {
			if seen[svc.Name] {
				hasDuplicates = true
				break
			}
			seen[svc.Name] = true
		}
		wrongCount := len(existing) != len(models.DefaultCatalog)

		if len(existing) == 0 || hasDuplicates || wrongCount {
			if err := s.reseed(ctx); err != nil {
				return nil, err
			}
			log.Println("Default services initialized (cleaned)")
		}
		return nil, nil
	})
	return err
}

// Reset clears the catalog and re-seeds the default list unconditionally.
// Callers serialize this themselves (it sits behind a user confirmation).
func (s *CatalogService) Reset(ctx context.Context) error {
	if err := s.reseed(ctx); err != nil {
		return err
	}
	log.Println("Services reset to default")
	return nil
}

func (s *CatalogService) reseed(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Service{}).Error; err != nil {
			return err
		}
		defaults := make([]models.Service, len(models.DefaultCatalog))
		copy(defaults, models.DefaultCatalog)
		return tx.Create(&defaults).Error
	})
}

// List returns active services in store order.
func (s *CatalogService) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).
		Where("status = ?", models.ServiceActive).
		Find(&services).Error
	return services, err
}

func (s *CatalogService) Add(ctx context.Context, name string, price float64) (models.Service, error) {
	service := models.Service{Name: name, Price: price, Status: models.ServiceActive}
	err := s.db.WithContext(ctx).Create(&service).Error
	return service, err
}

// ServiceUpdate carries the optional fields of an Update call.
type ServiceUpdate struct {
	Name  *string
	Price *float64
}

func (s *CatalogService) Update(ctx context.Context, id uint, fields ServiceUpdate) (models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return service, err
	}
	if fields.Name != nil {
		service.Name = *fields.Name
	}
	if fields.Price != nil {
		service.Price = *fields.Price
	}
	err := s.db.WithContext(ctx).Save(&service).Error
	return service, err
}

// SoftDelete retires a service. The row stays for old orders' sake.
func (s *CatalogService) SoftDelete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Model(&models.Service{}).
		Where("id = ?", id).
		Update("status", models.ServiceRetired)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
