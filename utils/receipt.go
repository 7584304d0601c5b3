// utils/receipt.go
package utils

import (
	"fmt"
	"time"
)

// ReceiptNumber builds the customer-facing order identifier, e.g.
// ORD-20240101-001. seq is 1-based within the calendar day.
func ReceiptNumber(day time.Time, seq int) string {
	return fmt.Sprintf("ORD-%s-%03d", day.Format("20060102"), seq)
}
