package service

import (
	"context"
	"fmt"

	"parnika-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendGridEmailService notifies the boutique inbox when a rental request
// arrives. Callers treat every send as best-effort.
type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	adminTo   string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName, adminTo string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		adminTo:   adminTo,
	}
}

func (s *sendGridEmailService) SendRequestNotification(ctx context.Context, req *domain.RentalRequest) error {
	item := req.ProductName
	if item == "" {
		item = req.OutfitType
	}
	subject := fmt.Sprintf("New rental request from %s", req.CustomerName)
	plain := fmt.Sprintf(
		"New rental request received.\n\nItem: %s\nCustomer: %s\nPhone: %s\nEvent date: %s\nDays required: %d\n",
		item, req.CustomerName, req.Phone, req.EventDate, req.DaysRequired)
	if req.Message != "" {
		plain += fmt.Sprintf("Message: %s\n", req.Message)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", s.adminTo)
	message := mail.NewSingleEmail(from, subject, to, plain, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("send request notification: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// noopEmailService is used when no SendGrid key is configured.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendRequestNotification(ctx context.Context, req *domain.RentalRequest) error {
	return nil
}
