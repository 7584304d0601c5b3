// services/remote_client.go
package services

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"laundrypos-backend/models"
)

// remoteOrder is the wire shape of the mirror table. Items travel as a
// JSON array inside the row.
type remoteOrder struct {
	ID            uint               `json:"id,omitempty"`
	ReceiptNumber string             `json:"receipt_number"`
	CustomerName  string             `json:"customer_name"`
	Phone         string             `json:"phone"`
	Total         float64            `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Items         []models.OrderItem `json:"items"`
	CreatedAt     string             `json:"created_at"`
}

func toRemote(order models.Order) remoteOrder {
	return remoteOrder{
		ReceiptNumber: order.ReceiptNumber,
		CustomerName:  order.CustomerName,
		Phone:         order.Phone,
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentMethod: order.PaymentMethod,
		Items:         order.Items,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
}

func (r remoteOrder) toOrder() models.Order {
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedAt)
	return models.Order{
		ID:            r.ID,
		ReceiptNumber: r.ReceiptNumber,
		CustomerName:  r.CustomerName,
		Phone:         r.Phone,
		Items:         r.Items,
		Total:         r.Total,
		PaymentMethod: r.PaymentMethod,
		Status:        models.OrderStatus(r.Status),
		CreatedAt:     createdAt,
	}
}

// RemoteClient mirrors orders to the hosted store customers use for
// tracking. Every method absorbs its own failures: the counter keeps
// working when the shop's connection doesn't.
type RemoteClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRemoteClient reads SUPABASE_URL and SUPABASE_ANON_KEY. With no URL
// configured the client stays disabled and every call reports failure.
func NewRemoteClient() *RemoteClient {
	return NewRemoteClientWith(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_ANON_KEY"))
}

func NewRemoteClientWith(baseURL, apiKey string) *RemoteClient {
	return &RemoteClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SyncOrder upserts the order into the mirror, keyed on receipt number.
func (r *RemoteClient) SyncOrder(order models.Order) bool {
	if r.baseURL == "" {
		return false
	}

	body, err := json.Marshal(toRemote(order))
	if err != nil {
		log.Printf("Sync marshal error: %v", err)
		return false
	}

	req, err := http.NewRequest(http.MethodPost,
		r.baseURL+"/rest/v1/orders?on_conflict=receipt_number",
		bytes.NewReader(body))
	if err != nil {
		log.Printf("Sync request error: %v", err)
		return false
	}
	r.setHeaders(req)
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	if !r.do(req) {
		log.Printf("Sync failed for order %s", order.ReceiptNumber)
		return false
	}
	return true
}

// UpdateStatus patches just the status column of the mirrored row.
func (r *RemoteClient) UpdateStatus(receiptNumber string, status models.OrderStatus) bool {
	if r.baseURL == "" {
		return false
	}

	body, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return false
	}

	req, err := http.NewRequest(http.MethodPatch,
		r.baseURL+"/rest/v1/orders?receipt_number=eq."+url.QueryEscape(receiptNumber),
		bytes.NewReader(body))
	if err != nil {
		return false
	}
	r.setHeaders(req)

	if !r.do(req) {
		log.Printf("Status update failed for %s", receiptNumber)
		return false
	}
	return true
}

// TrackOrder looks the token up by receipt number, then by numeric id for
// records that predate receipt numbers. Returns nil on any miss or failure.
func (r *RemoteClient) TrackOrder(token string) *models.Order {
	if r.baseURL == "" {
		return nil
	}

	rows := r.query("receipt_number=eq." + url.QueryEscape(token))
	if len(rows) == 0 {
		if id, err := strconv.Atoi(token); err == nil {
			rows = r.query("id=eq." + strconv.Itoa(id))
		}
	}
	if len(rows) == 0 {
		return nil
	}

	order := rows[0].toOrder()
	return &order
}

// ListOrders fetches every mirrored order, newest first. Empty on failure.
func (r *RemoteClient) ListOrders() []models.Order {
	if r.baseURL == "" {
		return nil
	}

	rows := r.query("order=created_at.desc")
	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toOrder())
	}
	return orders
}

func (r *RemoteClient) query(filter string) []remoteOrder {
	req, err := http.NewRequest(http.MethodGet,
		r.baseURL+"/rest/v1/orders?select=*&"+filter, nil)
	if err != nil {
		return nil
	}
	r.setHeaders(req)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("Remote query error: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Remote query status %d", resp.StatusCode)
		return nil
	}

	var rows []remoteOrder
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		log.Printf("Remote decode error: %v", err)
		return nil
	}
	return rows
}

func (r *RemoteClient) setHeaders(req *http.Request) {
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

func (r *RemoteClient) do(req *http.Request) bool {
	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("Remote request error: %v", err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
