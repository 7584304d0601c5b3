// services/notify_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"laundrypos-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService texts customers when their laundry is ready for pickup.
// Best-effort: a failed send is logged and forgotten, never surfaced to
// the status update that triggered it.
type NotifyService struct {
	client  *twilio.RestClient
	enabled bool
}

func NewNotifyService() *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotifyService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		enabled: accountSid != "" && authToken != "",
	}
}

// NotifyReady sends the pickup message for an order. WhatsApp for E.164
// numbers, SMS otherwise.
func (s *NotifyService) NotifyReady(order models.Order) {
	if !s.enabled || order.Phone == "" {
		return
	}

	message := fmt.Sprintf(
		"Hi %s! Your laundry (receipt %s) is ready for pickup. Total: %.2f",
		order.CustomerName, order.ReceiptNumber, order.Total)

	channel := "sms"
	to := order.Phone
	if strings.HasPrefix(order.Phone, "+") {
		to = "whatsapp:" + order.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to notify %s: %v", order.Phone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Pickup notice sent to %s, SID: %s", order.Phone, *resp.Sid)
	} else {
		log.Printf("Pickup notice sent to %s, but no SID returned", order.Phone)
	}
}
