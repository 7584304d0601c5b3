// services/order_service.go
package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"laundrypos-backend/models"
	"laundrypos-backend/utils"

	"gorm.io/gorm"
)

// OrderSyncer pushes an order to the remote mirror. Implementations report
// success with a bool and never propagate failures; a durable outbox can be
// substituted here without touching the repository.
type OrderSyncer interface {
	SyncOrder(order models.Order) bool
}

// ReadyNotifier tells the customer their laundry can be picked up.
// Best-effort, same posture as the syncer.
type ReadyNotifier interface {
	NotifyReady(order models.Order)
}

// OrderService is the repository for orders. The local store is the source
// of truth; the remote mirror is updated after local writes without being
// awaited, so a remote outage never blocks the counter.
type OrderService struct {
	db       *gorm.DB
	syncer   OrderSyncer
	notifier ReadyNotifier
}

func NewOrderService(db *gorm.DB, syncer OrderSyncer, notifier ReadyNotifier) *OrderService {
	return &OrderService{db: db, syncer: syncer, notifier: notifier}
}

// DraftItem is one line of an order as entered at the counter.
type DraftItem struct {
	ServiceID uint    `json:"serviceId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Loads     int     `json:"loads"`
}

// OrderDraft is the order-entry payload before pricing and numbering.
type OrderDraft struct {
	CustomerName  string      `json:"customer"`
	Phone         string      `json:"phone"`
	PaymentMethod string      `json:"method"`
	Items         []DraftItem `json:"items"`
}

// Create prices the draft, assigns the next receipt number for today,
// stores the order as Received and mirrors it remotely in the background.
// Zero-load lines are dropped rather than stored.
func (s *OrderService) Create(ctx context.Context, draft OrderDraft) (models.Order, error) {
	now := time.Now()

	var items []models.OrderItem
	var total float64
	for _, line := range draft.Items {
		if line.Loads < 1 {
			continue
		}
		lineTotal := line.UnitPrice * float64(line.Loads)
		total += lineTotal
		items = append(items, models.OrderItem{
			ServiceID: line.ServiceID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Loads:     line.Loads,
			LineTotal: lineTotal,
		})
	}

	seq, err := s.countToday(ctx, now)
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ReceiptNumber: utils.ReceiptNumber(now, seq+1),
		CustomerName:  draft.CustomerName,
		Phone:         draft.Phone,
		Items:         items,
		Total:         total,
		PaymentMethod: draft.PaymentMethod,
		Status:        models.StatusReceived,
		CreatedAt:     now,
	}

	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return models.Order{}, err
	}

	s.pushRemote(order)
	return order, nil
}

// countToday counts orders created on the same local calendar day. Two
// near-simultaneous creates can observe the same count; a single counter
// writes orders in practice, so the race is accepted.
func (s *OrderService) countToday(ctx context.Context, now time.Time) (int, error) {
	start := utils.BeginningOfDay(now)
	end := start.AddDate(0, 0, 1)

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return int(count), err
}

// ListAll returns every order, most recent first.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) ListByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("status = ?", status).
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) Get(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	return order, err
}

// UpdateStatus writes the new status locally, then re-reads the record and
// mirrors it in the background. A Ready order also triggers a pickup
// notification. Neither side effect can fail the update.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (models.Order, error) {
	result := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return models.Order{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Order{}, gorm.ErrRecordNotFound
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	s.pushRemote(order)
	if status == models.StatusReady && s.notifier != nil {
		go s.notifier.NotifyReady(order)
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *OrderService) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return session.Delete(&models.Order{}).Error
	})
}

// Track resolves a user-typed token to an order: exact receipt number
// first, then a case-insensitive scan, then the raw numeric id. Receipt
// numbers are typed by hand and may be mis-cased; records predating
// receipt numbers are only reachable by id.
func (s *OrderService) Track(ctx context.Context, token string) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Items").
		Where("receipt_number = ?", token).
		First(&order).Error
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, err
	}

	var all []models.Order
	if err := s.db.WithContext(ctx).Preload("Items").Find(&all).Error; err != nil {
		return models.Order{}, err
	}
	for _, o := range all {
		if strings.EqualFold(o.ReceiptNumber, token) {
			return o, nil
		}
	}

	if id, convErr := strconv.Atoi(token); convErr == nil {
		return s.Get(ctx, uint(id))
	}
	return models.Order{}, gorm.ErrRecordNotFound
}

func (s *OrderService) pushRemote(order models.Order) {
	if s.syncer == nil {
		return
	}
	go func() {
		if !s.syncer.SyncOrder(order) {
			log.Printf("Remote mirror dropped order %s", order.ReceiptNumber)
		}
	}()
}
