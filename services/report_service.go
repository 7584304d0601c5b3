// services/report_service.go
package services

import (
	"context"
	"strings"
	"time"

	"laundrypos-backend/models"
	"laundrypos-backend/utils"

	"gorm.io/gorm"
)

// ReportService derives the daily cash-count and export sets by scanning
// the order collection in memory. Fine at single-shop volume; the board
// polls these every few seconds.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// PaymentBreakdown is one row of the end-of-day cash count.
type PaymentBreakdown struct {
	Method string  `json:"method"`
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
}

// OrderStats counts today's orders per board column.
type OrderStats struct {
	Total    int `json:"total"`
	Received int `json:"received"`
	Washing  int `json:"washing"`
	Drying   int `json:"drying"`
	Ready    int `json:"ready"`
	Released int `json:"released"`
}

// DailyBreakdown groups today's Released orders by payment method.
// Orders with no recorded method count as Cash. Groups keep first-seen
// order so the report reads stably across refreshes.
func (s *ReportService) DailyBreakdown(ctx context.Context) ([]PaymentBreakdown, error) {
	orders, err := s.allOrders(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	groups := make(map[string]*PaymentBreakdown)
	var ordered []*PaymentBreakdown

	for _, order := range orders {
		if !utils.SameDay(order.CreatedAt, now) || order.Status != models.StatusReleased {
			continue
		}
		method := order.PaymentMethod
		if method == "" {
			method = "Cash"
		}
		group, ok := groups[method]
		if !ok {
			group = &PaymentBreakdown{Method: method}
			groups[method] = group
			ordered = append(ordered, group)
		}
		group.Total += order.Total
		group.Count++
	}

	report := make([]PaymentBreakdown, 0, len(ordered))
	for _, group := range ordered {
		report = append(report, *group)
	}
	return report, nil
}

// StatsToday counts today's orders in total and per status. Status values
// match the five board columns case-insensitively; anything else still
// counts toward the total.
func (s *ReportService) StatsToday(ctx context.Context) (OrderStats, error) {
	orders, err := s.allOrders(ctx)
	if err != nil {
		return OrderStats{}, err
	}

	now := time.Now()
	var stats OrderStats
	for _, order := range orders {
		if !utils.SameDay(order.CreatedAt, now) {
			continue
		}
		stats.Total++
		switch strings.ToLower(string(order.Status)) {
		case "received":
			stats.Received++
		case "washing":
			stats.Washing++
		case "drying":
			stats.Drying++
		case "ready":
			stats.Ready++
		case "released":
			stats.Released++
		}
	}
	return stats, nil
}

// ExportForRange returns Released orders whose creation time falls in
// [start, end).
func (s *ReportService) ExportForRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	orders, err := s.allOrders(ctx)
	if err != nil {
		return nil, err
	}

	exported := []models.Order{}
	for _, order := range orders {
		if order.Status != models.StatusReleased {
			continue
		}
		if order.CreatedAt.Before(start) || !order.CreatedAt.Before(end) {
			continue
		}
		exported = append(exported, order)
	}
	return exported, nil
}

// ExportToday covers midnight to the next midnight.
func (s *ReportService) ExportToday(ctx context.Context) ([]models.Order, error) {
	start := utils.BeginningOfDay(time.Now())
	return s.ExportForRange(ctx, start, start.AddDate(0, 0, 1))
}

// ExportThisMonth covers the 1st through the last day at 23:59:59.
func (s *ReportService) ExportThisMonth(ctx context.Context) ([]models.Order, error) {
	start, end := utils.MonthRange(time.Now())
	return s.ExportForRange(ctx, start, end)
}

func (s *ReportService) allOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Preload("Items").Find(&orders).Error
	return orders, err
}
