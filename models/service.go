package models

// ServiceStatus tags whether a catalog entry is offered at order entry.
// Retired services stay on record; they are never physically removed.
type ServiceStatus string

const (
	ServiceActive  ServiceStatus = "active"
	ServiceRetired ServiceStatus = "retired"
)

type Service struct {
	ID     uint          `gorm:"primaryKey" json:"id"`
	Name   string        `gorm:"index;not null" json:"name"`
	Price  float64       `gorm:"index;type:decimal(10,2);not null" json:"price"`
	Status ServiceStatus `gorm:"index;type:varchar(10);not null;default:'active'" json:"status"`
}

// DefaultCatalog is the fixed service list seeded on first run.
var DefaultCatalog = []Service{
	{Name: "Wash Only", Price: 100, Status: ServiceActive},
	{Name: "Dry Only", Price: 100, Status: ServiceActive},
	{Name: "Wash, Dry & Fold", Price: 180, Status: ServiceActive},
	{Name: "Iron", Price: 50, Status: ServiceActive},
	{Name: "Downy", Price: 15, Status: ServiceActive},
	{Name: "Liquid Detergent", Price: 15, Status: ServiceActive},
	{Name: "Zonrox", Price: 15, Status: ServiceActive},
}
