package models

import "time"

// OrderStatus values form the board columns. The data layer accepts any of
// the five; the board is expected to only move orders forward.
type OrderStatus string

const (
	StatusReceived OrderStatus = "Received"
	StatusWashing  OrderStatus = "Washing"
	StatusDrying   OrderStatus = "Drying"
	StatusReady    OrderStatus = "Ready"
	StatusReleased OrderStatus = "Released"
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ReceiptNumber string      `gorm:"uniqueIndex" json:"receiptNumber"`
	CustomerName  string      `gorm:"index;not null" json:"customerName"`
	Phone         string      `gorm:"index" json:"phone"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total         float64     `gorm:"index;type:decimal(10,2);not null" json:"total"`
	PaymentMethod string      `gorm:"index" json:"paymentMethod"`
	Status        OrderStatus `gorm:"index;type:varchar(20);not null" json:"status"`
	CreatedAt     time.Time   `gorm:"index" json:"createdAt"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ServiceID uint    `json:"serviceId"`
	Name      string  `gorm:"not null" json:"name"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Loads     int     `gorm:"default:1" json:"loads"`
	LineTotal float64 `gorm:"type:decimal(10,2);not null" json:"lineTotal"`
}
